package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// HookSubject 钩子处理的上下文载荷
// Attrs在before阶段可被钩子读取/修正，Book在after阶段为已落库的记录
type HookSubject struct {
	Op    string           // 操作名（createBook / createBooks / updateBooks / deleteBooks）
	Actor string           // 调用者身份（审计用）
	Attrs *book.Attributes // 提交的字段（before阶段）
	Book  *book.Book       // 落库后的记录（after阶段）
	ID    string           // 目标记录ID（update/delete）
}

// Hook 单个拦截器
type Hook func(ctx context.Context, sub *HookSubject) error

// HookChain 命令/查询操作的有序拦截器链
// 设计说明：
// 1. before钩子按注册顺序执行，任一返回错误即短路：后续钩子与
//    主操作都不再执行，错误原样上抛
// 2. after钩子在主操作成功后按注册顺序执行，错误同样上抛
//    （需要容忍失败的钩子应自行吞掉错误，如缓存回填）
type HookChain struct {
	before []Hook
	after  []Hook
}

// NewHookChain 创建空拦截器链
func NewHookChain() *HookChain {
	return &HookChain{}
}

// Before 注册before钩子
func (h *HookChain) Before(fn Hook) *HookChain {
	h.before = append(h.before, fn)
	return h
}

// After 注册after钩子
func (h *HookChain) After(fn Hook) *HookChain {
	h.after = append(h.after, fn)
	return h
}

// RunBefore 依序执行before钩子，第一个错误短路
func (h *HookChain) RunBefore(ctx context.Context, sub *HookSubject) error {
	for _, fn := range h.before {
		if err := fn(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

// RunAfter 依序执行after钩子
func (h *HookChain) RunAfter(ctx context.Context, sub *HookSubject) error {
	for _, fn := range h.after {
		if err := fn(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

// validateCreateBookHook createBook的业务校验钩子
// 显式业务规则：title为空直接拒绝，不触达存储层
func validateCreateBookHook(_ context.Context, sub *HookSubject) error {
	return book.ValidateAttributes(*sub.Attrs, true)
}

// seedCacheHook 创建成功后回填详情缓存
// 缓存失败只降级记日志，不影响命令结果
func seedCacheHook(cache *redis.BookCache, log *zap.Logger) Hook {
	return func(ctx context.Context, sub *HookSubject) error {
		if sub.Book == nil {
			return nil
		}
		if err := cache.SetDetail(ctx, sub.Book); err != nil {
			log.Warn("回填图书缓存失败", zap.String("book_id", sub.Book.ID), zap.Error(err))
		}
		return nil
	}
}

// invalidateCacheHook 更新/删除成功后删除详情缓存
func invalidateCacheHook(cache *redis.BookCache, log *zap.Logger) Hook {
	return func(ctx context.Context, sub *HookSubject) error {
		id := sub.ID
		if id == "" && sub.Book != nil {
			id = sub.Book.ID
		}
		if id == "" {
			return nil
		}
		if err := cache.DeleteDetail(ctx, id); err != nil {
			log.Warn("删除图书缓存失败", zap.String("book_id", id), zap.Error(err))
		}
		return nil
	}
}

// auditLogHook 记录一条命令执行日志（不含请求体）
func auditLogHook(log *zap.Logger) Hook {
	return func(_ context.Context, sub *HookSubject) error {
		fields := []zap.Field{
			zap.String("op", sub.Op),
			zap.String("actor", sub.Actor),
		}
		if sub.Book != nil {
			fields = append(fields, zap.String("book_id", sub.Book.ID))
		} else if sub.ID != "" {
			fields = append(fields, zap.String("book_id", sub.ID))
		}
		log.Info("命令执行完成", fields...)
		return nil
	}
}
