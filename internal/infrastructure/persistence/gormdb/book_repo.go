package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookRepository GORM仓储实现
// 设计说明：
// 1. 实现领域层定义的Repository接口，领域层不感知GORM
// 2. 谓词与排序均经过字段白名单映射后才拼接，值全部参数化
// 3. GORM错误统一转换为领域错误/存储错误，不向上泄漏驱动细节
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储实例
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeStore, err, "存储服务错误")
	}
	return nil
}

// FindByID 根据ID查询图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var b book.Book
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WrapCode(apperrors.ErrCodeStore, err, "存储服务错误")
	}
	return &b, nil
}

// Find 按谓词/排序/分页查询
func (r *bookRepository) Find(ctx context.Context, q book.Query) ([]*book.Book, error) {
	tx, err := r.applyPredicates(r.db.WithContext(ctx).Model(&book.Book{}), q)
	if err != nil {
		return nil, err
	}

	tx, err = applyOrder(tx, q.OrderBy)
	if err != nil {
		return nil, err
	}

	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Top > 0 {
		tx = tx.Limit(q.Top)
	}

	var books []*book.Book
	if err := tx.Find(&books).Error; err != nil {
		return nil, apperrors.WrapCode(apperrors.ErrCodeStore, err, "存储服务错误")
	}
	return books, nil
}

// Count 统计匹配总数（忽略Top/Skip）
func (r *bookRepository) Count(ctx context.Context, q book.Query) (int64, error) {
	tx, err := r.applyPredicates(r.db.WithContext(ctx).Model(&book.Book{}), q)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, apperrors.WrapCode(apperrors.ErrCodeStore, err, "存储服务错误")
	}
	return total, nil
}

// Update 更新图书全部可写字段
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	// Save按主键整行更新；记录是否存在由调用方先行FindByID保证
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeStore, err, "存储服务错误")
	}
	return nil
}

// Delete 按ID删除
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&book.Book{})
	if tx.Error != nil {
		return apperrors.WrapCode(apperrors.ErrCodeStore, tx.Error, "存储服务错误")
	}
	if tx.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// applyPredicates 把谓词合取与$search翻译成WHERE条件
func (r *bookRepository) applyPredicates(tx *gorm.DB, q book.Query) (*gorm.DB, error) {
	for _, cond := range q.Filter {
		col, ok := book.FieldColumns[cond.Field]
		if !ok {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "未知字段: %s", cond.Field)
		}

		switch cond.Op {
		case book.OpEq:
			tx = tx.Where(col+" = ?", cond.Value)
		case book.OpGt:
			tx = tx.Where(col+" > ?", cond.Value)
		case book.OpGe:
			tx = tx.Where(col+" >= ?", cond.Value)
		case book.OpLt:
			tx = tx.Where(col+" < ?", cond.Value)
		case book.OpLe:
			tx = tx.Where(col+" <= ?", cond.Value)
		case book.OpContains:
			s, _ := cond.Value.(string)
			tx = tx.Where(col+" LIKE ?", "%"+s+"%")
		default:
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "不支持的操作符: %s", cond.Op)
		}
	}

	// $search：跨文本字段的子串匹配（OR连接）
	if q.Search != "" {
		var clauses []string
		var args []interface{}
		pattern := "%" + q.Search + "%"
		for _, f := range book.TextFields {
			clauses = append(clauses, book.FieldColumns[f]+" LIKE ?")
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}

	return tx, nil
}

// applyOrder 应用排序；并列时固定以id升序收尾，保证分页稳定
// 排序键与谓词同样走字段白名单，未映射的字段直接拒绝
func applyOrder(tx *gorm.DB, keys []book.OrderKey) (*gorm.DB, error) {
	hasID := false
	for _, k := range keys {
		col, ok := book.FieldColumns[k.Field]
		if !ok {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "未知字段: %s", k.Field)
		}
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", col, dir))
		if k.Field == "id" {
			hasID = true
		}
	}
	if !hasID {
		tx = tx.Order("id ASC")
	}
	return tx, nil
}
