package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CreateBookUseCase createBook动作：带业务校验的图书创建
// 设计说明：
// 1. before钩子链承载业务校验（标题非空），校验失败短路，不触达存储层
// 2. 插入成功后按服务端分配的ID回读，调用方拿到的是落库后的完整记录
// 3. 存储失败对外统一为OperationError；失败的插入不留任何记录
type CreateBookUseCase struct {
	bookService book.Service
	hooks       *HookChain
}

// NewCreateBookUseCase 创建createBook用例
func NewCreateBookUseCase(bookService book.Service, cache *redis.BookCache, log *zap.Logger) *CreateBookUseCase {
	hooks := NewHookChain().
		Before(validateCreateBookHook).
		After(seedCacheHook(cache, log)).
		After(auditLogHook(log))

	return &CreateBookUseCase{
		bookService: bookService,
		hooks:       hooks,
	}
}

// CreateBookRequest createBook请求DTO（与源动作签名一致的字段集）
type CreateBookRequest struct {
	Title  string
	Author string
	Genre  string
	Price  float64
	Stock  int
}

// Execute 执行createBook
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest, actor string) (*book.Book, error) {
	attrs := book.Attributes{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
		Stock:  req.Stock,
	}

	sub := &HookSubject{Op: "createBook", Actor: actor, Attrs: &attrs}

	// 1. before钩子：业务校验，失败即短路
	if err := uc.hooks.RunBefore(ctx, sub); err != nil {
		return nil, err
	}

	// 2. 插入并回读
	created, err := uc.bookService.CreateReturning(ctx, attrs, actor)
	if err != nil {
		return nil, apperrors.WrapCode(apperrors.ErrCodeOperation, err, "创建图书失败")
	}

	// 3. after钩子：缓存回填、审计日志
	sub.Book = created
	if err := uc.hooks.RunAfter(ctx, sub); err != nil {
		return nil, err
	}

	return created, nil
}
