package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"seller-desk/internal/core/server"
	"seller-desk/internal/transport/http/handler"
	mdw "seller-desk/internal/transport/http/middleware"
)

// NewDeskEngine 桌面外壳；/api/v1 串行处理，相当于唯一的界面线程
func NewDeskEngine(l *zap.Logger, h *handler.Desk) *gin.Engine {
	r := server.NewRouter(l)
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(mdw.ParseJWT(h.JWT), mdw.ConcurrencyLimit(1))
	h.Mount(api)

	return r
}
