package main

import (
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"seller-desk/internal/core/auth"
	"seller-desk/internal/core/cache"
	"seller-desk/internal/core/config"
	"seller-desk/internal/core/database"
	"seller-desk/internal/core/logger"
	"seller-desk/internal/core/server"
	"seller-desk/internal/repo"
	"seller-desk/internal/service"
	"seller-desk/internal/transport/http/handler"
	"seller-desk/internal/transport/http/router"
	"seller-desk/pkg/utils"
)

func main() {
	// seller-desk hash-password <pw>：生成 operator.passwordHash
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		h, err := utils.HashPassword(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	restore := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer restore()
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("schema bootstrap failed", zap.Error(err))
		}
		log.Info("schema ready")
	}

	departments := service.NewDepartmentService(repo.NewDepartmentRepo(db), log)
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		departments.WithCache(c, time.Duration(cfg.Redis.TTLSec)*time.Second)
		log.Info("department cache enabled", zap.String("redis", cfg.Redis.Addr))
	}
	sellers := service.NewSellerService(repo.NewSellerRepo(db), log)

	h := handler.NewDesk(departments, sellers, auth.FromConfig(cfg.JWT), cfg.Operator, cfg.App.Name, log)
	r := router.NewDeskEngine(log, h)

	srv := server.BuildServer(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port), r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	baseURL := server.BaseURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	log.Info("seller desk starting",
		zap.String("open", baseURL+"/api/v1/nav/seller"),
		zap.String("health", baseURL+"/health"),
		zap.Bool("operator_auth", cfg.Operator.AuthEnabled),
	)

	if err := server.Serve(srv, log, 10*time.Second); err != nil {
		log.Fatal("seller desk FAILED", zap.Error(err))
	}
	closeDB(db, log)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func closeDB(db *gorm.DB, l *zap.Logger) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			l.Warn("db close", zap.Error(err))
		}
	}
}
