package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshop/docs" // swagger文档注册
	"github.com/xiebiao/bookshop/internal/interface/http/router"
)

// @title        图书目录服务API
// @version      1.0
// @description  图书目录服务：通用CRUD、OData查询选项子集与createBook/getBooksByGenre动作
// @BasePath     /

// main 程序入口
// 依赖组装由Wire生成的InitializeApp完成；这里只负责启动与优雅退出
func main() {
	app, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer func() {
		_ = app.Log.Sync()
	}()

	app.Log.Info("配置加载成功",
		zap.String("env", app.Config.Env),
		zap.Int("port", app.Config.Server.Port),
		zap.String("db_driver", app.Config.Database.Driver),
		zap.Bool("cache_enabled", app.Config.Cache.Enabled),
	)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", app.Config.Server.Port),
		// OData键语法(/Books({id}))在进入gin前归一化
		Handler:      router.WithODataPath(app.Engine),
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		app.Log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	<-ctx.Done()
	app.Log.Info("收到退出信号，开始优雅关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Log.Error("关闭服务失败", zap.Error(err))
	}
}
