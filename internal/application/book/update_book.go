package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// UpdateBookUseCase 通用更新路径（PUT/PATCH /Books({id})）
// 更新重写修改侧审计字段，ID与创建侧审计字段不变；
// after钩子删除详情缓存，避免读到旧值
type UpdateBookUseCase struct {
	bookService book.Service
	hooks       *HookChain
}

// NewUpdateBookUseCase 创建通用更新用例
func NewUpdateBookUseCase(bookService book.Service, cache *redis.BookCache, log *zap.Logger) *UpdateBookUseCase {
	hooks := NewHookChain().
		After(invalidateCacheHook(cache, log)).
		After(auditLogHook(log))

	return &UpdateBookUseCase{
		bookService: bookService,
		hooks:       hooks,
	}
}

// Execute 执行更新；未知ID返回ErrBookNotFound
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id string, attrs book.Attributes, actor string) (*book.Book, error) {
	sub := &HookSubject{Op: "updateBooks", Actor: actor, Attrs: &attrs, ID: id}

	if err := uc.hooks.RunBefore(ctx, sub); err != nil {
		return nil, err
	}

	updated, err := uc.bookService.Update(ctx, id, attrs, actor)
	if err != nil {
		return nil, err
	}

	sub.Book = updated
	if err := uc.hooks.RunAfter(ctx, sub); err != nil {
		return nil, err
	}

	return updated, nil
}
