package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"seller-desk/internal/core/auth"
	"seller-desk/internal/core/config"
	"seller-desk/internal/core/database"
	"seller-desk/internal/repo"
	"seller-desk/internal/service"
	"seller-desk/internal/transport/http/handler"
	"seller-desk/pkg/utils"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type formResp struct {
	State string `json:"state"`
	Form  struct {
		Fields      map[string]string `json:"fields"`
		Errors      map[string]string `json:"errors"`
		Alerts      []map[string]any  `json:"alerts"`
		Closed      bool              `json:"closed"`
		Departments []map[string]any  `json:"departments"`
		Selected    map[string]any    `json:"selected"`
	} `json:"form"`
	Items []map[string]any `json:"items"`
}

type listResp struct {
	Items  []map[string]any `json:"items"`
	Alerts []struct {
		Title string `json:"title"`
		Type  string `json:"type"`
	} `json:"alerts"`
}

func init() { gin.SetMode(gin.TestMode) }

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

var testJWT = &auth.JWTer{Secret: []byte("test"), Issuer: "seller-desk", TTL: time.Hour}

func newDesk(t *testing.T, op config.Operator) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newDB(t)
	l := zap.NewNop()
	deps := service.NewDepartmentService(repo.NewDepartmentRepo(db), l)
	sellers := service.NewSellerService(repo.NewSellerRepo(db), l)
	h := handler.NewDesk(deps, sellers, testJWT, op, "seller-desk", l)
	return NewDeskEngine(l, h), db
}

func do(t *testing.T, r http.Handler, method, path string, body any, token string) envelope {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	require.Equal(t, 0, env.Code, env.Msg)
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestDepartmentFormFlow(t *testing.T) {
	r, _ := newDesk(t, config.Operator{})

	saved := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "Books"}, ""))
	require.Equal(t, "saved", saved.State)
	require.True(t, saved.Form.Closed)
	require.Len(t, saved.Items, 1)
	require.Equal(t, "Books", saved.Items[0]["name"])

	invalid := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "   "}, ""))
	require.Equal(t, "validation_error", invalid.State)
	require.Equal(t, "Field can't be empty", invalid.Form.Errors["name"])
	require.False(t, invalid.Form.Closed)
	require.Empty(t, invalid.Items)

	opened := decode[formResp](t, do(t, r, http.MethodGet, "/api/v1/departments/form?id=1", nil, ""))
	require.Equal(t, "bound", opened.State)
	require.Equal(t, "1", opened.Form.Fields["id"])
	require.Equal(t, "Books", opened.Form.Fields["name"])

	updated := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"id": "1", "name": "Books & Comics"}, ""))
	require.Equal(t, "saved", updated.State)
	require.Len(t, updated.Items, 1)
	require.Equal(t, "Books & Comics", updated.Items[0]["name"])

	missing := do(t, r, http.MethodGet, "/api/v1/departments/form?id=99", nil, "")
	require.Equal(t, 404, missing.Code)

	cancelled := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form/cancel", nil, ""))
	require.Equal(t, "cancelled", cancelled.State)
	require.True(t, cancelled.Form.Closed)
}

func TestSellerFormAndRemove(t *testing.T) {
	r, _ := newDesk(t, config.Operator{})
	decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "Books"}, ""))

	opened := decode[formResp](t, do(t, r, http.MethodGet, "/api/v1/sellers/form", nil, ""))
	require.Len(t, opened.Form.Departments, 1)
	require.Equal(t, "Books", opened.Form.Selected["name"])

	bad := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/sellers/form", gin.H{
		"name": "Maria", "birthDate": "1990-04-21",
	}, ""))
	require.Equal(t, "validation_error", bad.State)
	require.Equal(t, "Invalid date", bad.Form.Errors["birthDate"])
	require.Equal(t, "Field can't be empty", bad.Form.Errors["department"])

	saved := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/sellers/form", gin.H{
		"name": "Maria", "email": "maria@x.com", "birthDate": "21/04/1990", "baseSalary": "3000", "departmentId": 1,
	}, ""))
	require.Equal(t, "saved", saved.State)
	require.Len(t, saved.Items, 1)

	edit := decode[formResp](t, do(t, r, http.MethodGet, "/api/v1/sellers/form?id=1", nil, ""))
	require.Equal(t, "3000.00", edit.Form.Fields["baseSalary"])
	require.Equal(t, "21/04/1990", edit.Form.Fields["birthDate"])

	// 部门仍被引用，删除失败只弹窗
	blocked := decode[listResp](t, do(t, r, http.MethodDelete, "/api/v1/departments/1?confirm=true", nil, ""))
	require.Len(t, blocked.Alerts, 1)
	require.Equal(t, "Error removing object", blocked.Alerts[0].Title)

	ask := decode[listResp](t, do(t, r, http.MethodDelete, "/api/v1/sellers/1", nil, ""))
	require.Equal(t, "confirmation", ask.Alerts[0].Type)

	removed := decode[listResp](t, do(t, r, http.MethodDelete, "/api/v1/sellers/1?confirm=true", nil, ""))
	require.Empty(t, removed.Alerts)
	require.Empty(t, removed.Items)

	gone := decode[listResp](t, do(t, r, http.MethodDelete, "/api/v1/departments/1?confirm=true", nil, ""))
	require.Empty(t, gone.Alerts)
	require.Empty(t, gone.Items)
}

func TestNavigation(t *testing.T) {
	r, _ := newDesk(t, config.Operator{})

	type navResp struct {
		Scene string         `json:"scene"`
		About map[string]any `json:"about"`
	}
	nav := decode[navResp](t, do(t, r, http.MethodGet, "/api/v1/nav/about", nil, ""))
	require.Equal(t, "about", nav.Scene)
	require.Equal(t, "seller-desk", nav.About["name"])

	nav = decode[navResp](t, do(t, r, http.MethodGet, "/api/v1/nav/seller", nil, ""))
	require.Equal(t, "sellers", nav.Scene)

	require.Equal(t, 404, do(t, r, http.MethodGet, "/api/v1/nav/reports", nil, "").Code)
}

func TestOperatorAuth(t *testing.T) {
	hash, err := utils.HashPassword("pa55")
	require.NoError(t, err)
	r, _ := newDesk(t, config.Operator{AuthEnabled: true, Username: "op", PasswordHash: hash, Role: auth.RoleAdmin})

	require.Equal(t, 401, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "Books"}, "").Code)
	require.Equal(t, 401, do(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "op", "password": "nope"}, "").Code)

	type loginResp struct {
		Token string `json:"token"`
	}
	login := decode[loginResp](t, do(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "op", "password": "pa55"}, ""))
	require.NotEmpty(t, login.Token)

	saved := decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "Books"}, login.Token))
	require.Equal(t, "saved", saved.State)

	// 只读接口不需要登录
	list := decode[listResp](t, do(t, r, http.MethodGet, "/api/v1/departments", nil, ""))
	require.Len(t, list.Items, 1)
}

func TestSellerExport(t *testing.T) {
	r, _ := newDesk(t, config.Operator{})
	decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/departments/form", gin.H{"name": "Books"}, ""))
	decode[formResp](t, do(t, r, http.MethodPost, "/api/v1/sellers/form", gin.H{"name": "Ann", "departmentId": 1}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sellers/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="sellers_`))
	require.NotZero(t, w.Body.Len())
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newDesk(t, config.Operator{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	decode[listResp](t, do(t, r, http.MethodGet, "/api/v1/departments", nil, ""))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, w.Body.String(), "storage_operations_total")
}
