package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "seller-desk/internal/transport/http/response"
)

// MaxBodyBytes 表单请求体很小，超限直接拒绝
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
