package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// DeleteBookUseCase 通用删除路径（DELETE /Books({id})）
type DeleteBookUseCase struct {
	bookService book.Service
	hooks       *HookChain
}

// NewDeleteBookUseCase 创建通用删除用例
func NewDeleteBookUseCase(bookService book.Service, cache *redis.BookCache, log *zap.Logger) *DeleteBookUseCase {
	hooks := NewHookChain().
		After(invalidateCacheHook(cache, log)).
		After(auditLogHook(log))

	return &DeleteBookUseCase{
		bookService: bookService,
		hooks:       hooks,
	}
}

// Execute 执行删除；未知ID返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id string, actor string) error {
	sub := &HookSubject{Op: "deleteBooks", Actor: actor, ID: id}

	if err := uc.hooks.RunBefore(ctx, sub); err != nil {
		return err
	}

	if err := uc.bookService.Delete(ctx, id); err != nil {
		return err
	}

	return uc.hooks.RunAfter(ctx, sub)
}
