package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// BookCache 图书详情缓存（Cache-Aside）
// 设计说明：
// 1. 只缓存按ID的详情读取；列表查询组合维度多，不做缓存
// 2. 更新/删除后删缓存而非改缓存，避免并发写的不一致
// 3. client为nil时所有操作直接短路（缓存关闭）
type BookCache struct {
	client    *goredis.Client
	detailTTL time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client *goredis.Client, cfg *config.Config) *BookCache {
	ttl := cfg.Cache.DetailTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &BookCache{client: client, detailTTL: ttl}
}

// Enabled 缓存是否可用
func (c *BookCache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetDetail 读取详情缓存；未命中返回(nil, nil)，由调用方回源
func (c *BookCache) GetDetail(ctx context.Context, id string) (*book.Book, error) {
	if !c.Enabled() {
		return nil, nil
	}

	val, err := c.client.Get(ctx, detailKey(id)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, fmt.Errorf("反序列化缓存失败: %w", err)
	}
	return &b, nil
}

// SetDetail 写入详情缓存
func (c *BookCache) SetDetail(ctx context.Context, b *book.Book) error {
	if !c.Enabled() {
		return nil
	}

	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化缓存失败: %w", err)
	}
	if err := c.client.Set(ctx, detailKey(b.ID), val, c.detailTTL).Err(); err != nil {
		return fmt.Errorf("写入缓存失败: %w", err)
	}
	return nil
}

// DeleteDetail 删除详情缓存（更新/删除图书后调用）
func (c *BookCache) DeleteDetail(ctx context.Context, id string) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Del(ctx, detailKey(id)).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

func detailKey(id string) string {
	return "bookshop:book:detail:" + id
}
