package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
)

// GetBookUseCase 按ID查询图书详情（Cache-Aside）
// 先查缓存，未命中回源存储并回填；缓存故障降级为直查
type GetBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
	log         *zap.Logger
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, cache *redis.BookCache, log *zap.Logger) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		cache:       cache,
		log:         log,
	}
}

// Execute 执行详情查询；未知ID返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*book.Book, error) {
	// 1. 查缓存（故障只记日志，不影响读取）
	cached, err := uc.cache.GetDetail(ctx, id)
	if err != nil {
		uc.log.Warn("读取图书缓存失败", zap.String("book_id", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	// 2. 回源存储
	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if err := uc.cache.SetDetail(ctx, b); err != nil {
		uc.log.Warn("回填图书缓存失败", zap.String("book_id", id), zap.Error(err))
	}

	return b, nil
}
