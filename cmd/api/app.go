package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// App 应用聚合：路由引擎与运行所需的配置、日志器
type App struct {
	Engine *gin.Engine
	Config *config.Config
	Log    *zap.Logger
}

func newApp(engine *gin.Engine, cfg *config.Config, log *zap.Logger) *App {
	return &App{Engine: engine, Config: cfg, Log: log}
}

// provideLogger 从配置构造zap日志器
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideIdentity 从配置构造身份边界中间件
func provideIdentity(cfg *config.Config) *middleware.Identity {
	return middleware.NewIdentity(cfg.Auth.JWTSecret)
}
