// Package handler 把 gui 控制器接到 HTTP：每个请求构造一次视图记录器，
// 控制器照常驱动它，记录结果就是响应。
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seller-desk/internal/core/auth"
	"seller-desk/internal/core/config"
	"seller-desk/internal/domain"
	"seller-desk/internal/gui"
	"seller-desk/internal/service"
	"seller-desk/internal/transport/http/ez"
	"seller-desk/internal/validation"
	"seller-desk/pkg/utils"
)

type Desk struct {
	Main        *gui.MainView
	Departments *service.DepartmentService
	Sellers     *service.SellerService
	Engine      *validation.Engine
	JWT         *auth.JWTer
	Operator    config.Operator
	AppName     string
	Log         *zap.Logger
}

func NewDesk(departments *service.DepartmentService, sellers *service.SellerService, jwter *auth.JWTer, op config.Operator, appName string, l *zap.Logger) *Desk {
	engine := validation.New()
	return &Desk{
		Main:        gui.NewMainView(departments, sellers, engine, l),
		Departments: departments,
		Sellers:     sellers,
		Engine:      engine,
		JWT:         jwter,
		Operator:    op,
		AppName:     appName,
		Log:         l,
	}
}

// Mount 挂到 /api/v1
func (h *Desk) Mount(g *gin.RouterGroup) {
	e := ez.New(g)
	h.mountAuth(e)
	h.mountNav(e)
	h.mountDepartments(e)
	h.mountSellers(e)
}

// needAuth 写操作是否要求登录
func (h *Desk) needAuth() bool { return h.Operator.AuthEnabled }

type navOut struct {
	Scene string `json:"scene"`
	Items any    `json:"items,omitempty"`
	About gin.H  `json:"about,omitempty"`
}

func (h *Desk) mountNav(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, navOut]{
		Method: http.MethodGet,
		Path:   "/nav/:menu",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (navOut, error) {
			switch strings.ToLower(c.Param("menu")) {
			case "department", gui.SceneDepartments:
				v := &listView[*domain.Department]{}
				if _, err := h.Main.OnMenuItemDepartment(c.Request.Context(), v); err != nil {
					return navOut{}, h.fail(err)
				}
				return navOut{Scene: gui.SceneDepartments, Items: v.Items}, nil
			case "seller", gui.SceneSellers:
				v := &listView[*domain.Seller]{}
				if _, err := h.Main.OnMenuItemSeller(c.Request.Context(), v); err != nil {
					return navOut{}, h.fail(err)
				}
				return navOut{Scene: gui.SceneSellers, Items: v.Items}, nil
			case gui.SceneAbout:
				s := h.Main.OnMenuItemAbout()
				return navOut{Scene: s.Name, About: gin.H{"name": h.AppName}}, nil
			}
			return navOut{}, ez.NotFound("unknown menu item")
		},
	})
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (h *Desk) mountAuth(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			if strings.TrimSpace(in.Username) != h.Operator.Username ||
				!utils.CheckPassword(in.Password, h.Operator.PasswordHash) {
				return loginOut{}, ez.Unauthorized("invalid credentials")
			}
			tok, err := h.JWT.Issue(h.Operator.Username, h.Operator.Role)
			if err != nil {
				return loginOut{}, ez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, Role: h.Operator.Role}, nil
		},
	})
}

// fail IllegalState 属于程序缺陷：记日志并按 500 返回
func (h *Desk) fail(err error) error {
	if errors.Is(err, domain.ErrIllegalState) {
		h.Log.Error("illegal state", zap.Error(err))
		return ez.Internal("illegal state", err)
	}
	return err
}

func paramID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, ez.BadRequest("invalid id")
	}
	return id, nil
}

func queryID(c *gin.Context) (*int, error) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		return nil, nil
	}
	id := utils.TryParseInt(raw)
	if id == nil {
		return nil, ez.BadRequest("invalid id")
	}
	return id, nil
}
