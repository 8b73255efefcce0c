package dto

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CreateBookActionRequest createBook动作请求体
// 注意：不挂binding校验——标题非空是业务规则，由命令层的before钩子
// 校验并返回指明字段的ValidationError
type CreateBookActionRequest struct {
	Title  string  `json:"title" example:"Dune"`
	Author string  `json:"author" example:"Frank Herbert"`
	Genre  string  `json:"genre" example:"Sci-Fi"`
	Price  float64 `json:"price" example:"15.50"`
	Stock  int     `json:"stock" example:"20"`
}

// SaveBookRequest 通用创建/更新请求体
// binding tag承载schema级约束（title必填、各字段长度上限）
type SaveBookRequest struct {
	Title       string  `json:"title" binding:"required,max=100" example:"Wuthering Heights"`
	Author      string  `json:"author" binding:"max=100" example:"Emily Brontë"`
	Genre       string  `json:"genre" binding:"max=50" example:"Drama"`
	Price       float64 `json:"price" example:"11.11"`
	Stock       int     `json:"stock" example:"12"`
	Description string  `json:"description" binding:"max=500" example:"A novel of passion and revenge"`
	PublishedAt string  `json:"publishedAt" binding:"omitempty,datetime=2006-01-02" example:"1847-12-01"`
}

// Attributes 转换为领域字段集
func (r SaveBookRequest) Attributes() (book.Attributes, error) {
	attrs := book.Attributes{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Price:       r.Price,
		Stock:       r.Stock,
		Description: r.Description,
	}

	if r.PublishedAt != "" {
		t, err := time.Parse("2006-01-02", r.PublishedAt)
		if err != nil {
			return attrs, apperrors.Newf(apperrors.ErrCodeValidation, "字段publishedAt日期格式非法: %s", r.PublishedAt)
		}
		attrs.PublishedAt = &t
	}

	return attrs, nil
}

// BooksByGenreRequest getBooksByGenre动作请求体
type BooksByGenreRequest struct {
	Genre string `json:"genre" binding:"required,max=50" example:"Fantasy"`
}
