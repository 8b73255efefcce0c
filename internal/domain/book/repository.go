package book

import (
	"context"
)

// CompareOp 过滤谓词支持的操作符集合
type CompareOp string

const (
	OpEq       CompareOp = "eq"       // 等于
	OpGt       CompareOp = "gt"       // 大于
	OpGe       CompareOp = "ge"       // 大于等于
	OpLt       CompareOp = "lt"       // 小于
	OpLe       CompareOp = "le"       // 小于等于
	OpContains CompareOp = "contains" // 子串包含(仅文本字段)
)

// Condition 单个字段谓词
// Value的动态类型由解析层保证：string、int64、float64或time.Time
type Condition struct {
	Field string
	Op    CompareOp
	Value interface{}
}

// OrderKey 排序键
type OrderKey struct {
	Field string
	Desc  bool
}

// Query 列表查询参数
// 设计说明:
// 1. Filter是谓词的合取（源接口的$filter子集只需要and连接）
// 2. Search是跨文本字段的子串匹配（title/author/genre/description）
// 3. Top/Skip为偏移式分页；底层排序必须确定（并列时按id升序），
//    否则Top/Skip的分片性质（无重叠、无遗漏）不成立
// 4. Select为字段裁剪，由接口层负责投影，仓储层始终返回完整记录
type Query struct {
	Select    []string
	Filter    []Condition
	OrderBy   []OrderKey
	Top       int
	Skip      int
	Search    string
	WithCount bool
}

// Repository 图书仓储接口（依赖倒置）
// 由domain层定义接口，infrastructure层实现；更换嵌入式/云端数据库
// 只需替换实现，domain与application层不感知
type Repository interface {
	// Create 持久化新图书；每次插入原子生效，失败不留半行
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书，不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// Find 按谓词/排序/分页查询；无匹配返回空切片而非错误
	Find(ctx context.Context, q Query) ([]*Book, error)

	// Count 统计匹配谓词的记录总数（忽略Top/Skip）
	Count(ctx context.Context, q Query) (int64, error)

	// Update 更新图书全部可写字段
	Update(ctx context.Context, book *Book) error

	// Delete 按ID删除，不存在返回ErrBookNotFound
	Delete(ctx context.Context, id string) error
}

// TextFields $search与contains允许作用的文本字段
var TextFields = []string{"title", "author", "genre", "description"}

// FieldColumns 对外字段名 → 数据库列名映射（同时充当字段白名单）
var FieldColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"author":      "author",
	"genre":       "genre",
	"price":       "price",
	"stock":       "stock",
	"description": "description",
	"publishedAt": "published_at",
	"createdAt":   "created_at",
	"createdBy":   "created_by",
	"modifiedAt":  "modified_at",
	"modifiedBy":  "modified_by",
}
