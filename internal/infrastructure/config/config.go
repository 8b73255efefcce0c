package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：
// 1. 启动时解析一次，注入到各组件；业务代码不直接读环境变量
// 2. 通过BOOKSHOP_ENV在development/production两套profile间切换
// 3. 任意配置项可被BOOKSHOP_*环境变量覆盖（如BOOKSHOP_DATABASE_DSN）
type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Query    QueryConfig    `mapstructure:"query"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig 数据库配置
// driver决定嵌入式/云端存储：sqlite（嵌入式，DSN为文件路径或:memory:）
// 或mysql（云端，DSN为标准连接串）。两者共用同一套GORM仓储实现
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite | mysql
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogMode         bool          `mapstructure:"log_mode"`
}

// CacheConfig 详情缓存配置（Cache-Aside，可整体关闭）
type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DetailTTL    time.Duration `mapstructure:"detail_ttl"`
}

// QueryConfig 列表查询的分页上限
type QueryConfig struct {
	DefaultTop int `mapstructure:"default_top"` // 未传$top时的默认行数
	MaxTop     int `mapstructure:"max_top"`     // $top的硬上限
}

// AuthConfig 身份边界配置
// 认证提供方在本服务范围之外；这里只保存用于解析Bearer Token
// 主体（审计字段的操作者）的共享密钥
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// Load 加载配置
// 顺序：config.yaml基础配置 → config.<env>.yaml按profile覆盖 → 环境变量覆盖
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("query.default_top", 1000)
	v.SetDefault("query.max_top", 1000)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 环境变量绑定（BOOKSHOP_DATABASE_DSN → database.dsn）
	v.SetEnvPrefix("BOOKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// profile切换：BOOKSHOP_ENV=production时合并config.production.yaml
	env := v.GetString("env")
	if env != "" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			// profile文件不存在时沿用基础配置
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("合并profile配置失败: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	switch cfg.Database.Driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn不能为空")
	}

	if cfg.Query.MaxTop <= 0 || cfg.Query.DefaultTop <= 0 {
		return fmt.Errorf("query.default_top与query.max_top必须大于0")
	}

	if cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		return fmt.Errorf("启用缓存时cache.addr不能为空")
	}

	return nil
}
