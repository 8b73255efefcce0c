package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewClient 创建Redis连接
// cache.enabled=false时返回nil，缓存层整体退化为直查存储
// （嵌入式profile与测试默认关闭缓存）
func NewClient(cfg *config.Config) (*goredis.Client, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Cache.Addr,
		Password:     cfg.Cache.Password,
		DB:           cfg.Cache.DB,
		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: cfg.Cache.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	return client, nil
}
