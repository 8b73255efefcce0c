package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置
// 设计说明：
// 1. 日志器由启动阶段显式构造，再注入到各层（不使用包级单例，便于隔离测试）
// 2. format=console用于开发环境，json用于生产环境（便于采集）
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool   // 是否记录调用位置
}

// New 根据配置构造zap日志器
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("非法的日志级别 %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if cfg.Format == "console" {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
	}
	zapCfg.DisableCaller = !cfg.EnableCaller

	return zapCfg.Build()
}

// NewNop 构造空日志器（测试用）
func NewNop() *zap.Logger {
	return zap.NewNop()
}
