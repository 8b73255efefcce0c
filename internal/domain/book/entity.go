package book

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Book 图书实体（聚合根）
// 设计说明:
// 1. ID使用UUID字符串：创建时由服务端分配一次，不可变、全局唯一、不复用
// 2. 价格为两位小数的定价（写入前统一四舍五入到分），源规则不强制非负
// 3. 审计字段（CreatedAt/CreatedBy/ModifiedAt/ModifiedBy）由服务端在
//    创建/更新时各写入一次，调用方不可直接设置
type Book struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Author      string     `gorm:"size:100" json:"author"`
	Genre       string     `gorm:"size:50;index:idx_genre" json:"genre"`
	Price       float64    `gorm:"type:decimal(10,2)" json:"price"`
	Stock       int        `gorm:"default:0" json:"stock"`
	Description string     `gorm:"size:500" json:"description"`
	PublishedAt *time.Time `gorm:"type:date" json:"publishedAt,omitempty"`

	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `gorm:"size:100" json:"createdBy"`
	ModifiedAt time.Time `json:"modifiedAt"`
	ModifiedBy string    `gorm:"size:100" json:"modifiedBy"`
}

// TableName GORM表名
func (Book) TableName() string {
	return "books"
}

// Attributes 图书的可写字段集合（不含ID与审计字段）
// 通用创建与createBook动作共用同一字段集
type Attributes struct {
	Title       string
	Author      string
	Genre       string
	Price       float64
	Stock       int
	Description string
	PublishedAt *time.Time
}

// NewBook 创建新图书（工厂方法）
// 分配UUID并写入创建侧审计字段；actor来自接口层解析出的调用者身份
func NewBook(attrs Attributes, actor string) *Book {
	now := time.Now()
	return &Book{
		ID:          uuid.NewString(),
		Title:       attrs.Title,
		Author:      attrs.Author,
		Genre:       attrs.Genre,
		Price:       roundPrice(attrs.Price),
		Stock:       attrs.Stock,
		Description: attrs.Description,
		PublishedAt: attrs.PublishedAt,
		CreatedAt:   now,
		CreatedBy:   actor,
		ModifiedAt:  now,
		ModifiedBy:  actor,
	}
}

// ApplyUpdate 应用调用方提交的字段更新（领域行为）
// 不变式：ID与创建侧审计字段不被触碰，修改侧审计字段重新落章
func (b *Book) ApplyUpdate(attrs Attributes, actor string) {
	b.Title = attrs.Title
	b.Author = attrs.Author
	b.Genre = attrs.Genre
	b.Price = roundPrice(attrs.Price)
	b.Stock = attrs.Stock
	b.Description = attrs.Description
	b.PublishedAt = attrs.PublishedAt
	b.ModifiedAt = time.Now()
	b.ModifiedBy = actor
}

// roundPrice 价格保留两位小数
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
