package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// SaveBookUseCase 通用创建路径（POST /Books）
// 注意：此路径不挂业务校验钩子，只依赖接口层绑定校验与schema约束。
// 与createBook的校验不对称是源系统的既有行为，保留原样
type SaveBookUseCase struct {
	bookService book.Service
	hooks       *HookChain
}

// NewSaveBookUseCase 创建通用创建用例
func NewSaveBookUseCase(bookService book.Service, cache *redis.BookCache, log *zap.Logger) *SaveBookUseCase {
	hooks := NewHookChain().
		After(seedCacheHook(cache, log)).
		After(auditLogHook(log))

	return &SaveBookUseCase{
		bookService: bookService,
		hooks:       hooks,
	}
}

// Execute 执行通用创建
func (uc *SaveBookUseCase) Execute(ctx context.Context, attrs book.Attributes, actor string) (*book.Book, error) {
	sub := &HookSubject{Op: "createBooks", Actor: actor, Attrs: &attrs}

	if err := uc.hooks.RunBefore(ctx, sub); err != nil {
		return nil, err
	}

	created, err := uc.bookService.Create(ctx, attrs, actor)
	if err != nil {
		return nil, err
	}

	sub.Book = created
	if err := uc.hooks.RunAfter(ctx, sub); err != nil {
		return nil, err
	}

	return created, nil
}
