package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明：
// 1. 查询选项由接口层解析（白名单校验）后以领域查询传入
// 2. 未传$top时落到配置默认值，并施加硬上限，防止全表拉取
// 3. $count=true时额外返回忽略分页的匹配总数
type ListBooksUseCase struct {
	bookService book.Service
	defaultTop  int
	maxTop      int
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, cfg *config.Config) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		defaultTop:  cfg.Query.DefaultTop,
		maxTop:      cfg.Query.MaxTop,
	}
}

// ListBooksResult 列表查询结果
type ListBooksResult struct {
	Books []*book.Book
	Count *int64 // 仅在$count=true时非空
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, q book.Query) (*ListBooksResult, error) {
	// 1. 分页默认值与上限
	if q.Top <= 0 {
		q.Top = uc.defaultTop
	}
	if q.Top > uc.maxTop {
		q.Top = uc.maxTop
	}

	// 2. 执行查询；无匹配返回空列表而非错误
	books, err := uc.bookService.List(ctx, q)
	if err != nil {
		return nil, err
	}

	result := &ListBooksResult{Books: books}

	// 3. 按需统计总数（忽略Top/Skip）
	if q.WithCount {
		total, err := uc.bookService.Count(ctx, q)
		if err != nil {
			return nil, err
		}
		result.Count = &total
	}

	return result, nil
}
