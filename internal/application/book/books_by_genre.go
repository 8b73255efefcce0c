package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// BooksByGenreUseCase getBooksByGenre动作
// 等价于listBooks({filter: genre eq <genre>})：精确、大小写敏感的
// 等值匹配；未知类别返回空列表而非错误
type BooksByGenreUseCase struct {
	bookService book.Service
	maxTop      int
}

// NewBooksByGenreUseCase 创建按类别查询用例
func NewBooksByGenreUseCase(bookService book.Service, cfg *config.Config) *BooksByGenreUseCase {
	return &BooksByGenreUseCase{
		bookService: bookService,
		maxTop:      cfg.Query.MaxTop,
	}
}

// Execute 执行按类别查询
func (uc *BooksByGenreUseCase) Execute(ctx context.Context, genre string) ([]*book.Book, error) {
	q := book.Query{
		Filter: []book.Condition{
			{Field: "genre", Op: book.OpEq, Value: genre},
		},
		Top: uc.maxTop,
	}
	return uc.bookService.List(ctx, q)
}
