package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seller-desk/internal/core/auth"
	"seller-desk/internal/transport/http/ez"
	resp "seller-desk/internal/transport/http/response"
)

const KeyClaims = "claims"

func bearer(c *gin.Context) (string, bool) {
	ah := c.GetHeader("Authorization")
	if !strings.HasPrefix(ah, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(ah, "Bearer "), true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(KeyClaims, claims)
	c.Set(ez.KeyUserID, claims.UID)
	c.Set(ez.KeyRole, claims.Role)
}

// AuthJWT 必须携带合法 token；requireRole 为空则不限角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// ParseJWT 有 token 就解析，不拦截；是否必须登录由 ez.Action.Auth 决定
func ParseJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := bearer(c); ok {
			if claims, err := j.Parse(tok); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}
