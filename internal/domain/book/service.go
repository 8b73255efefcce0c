package book

import (
	"context"
	"unicode/utf8"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装业务规则校验与仓储编排，不依赖具体Repository实现
// 2. createBook与通用创建的校验不对称是源系统的既有行为：
//    业务规则（标题非空）只在createBook路径生效，通用创建只靠
//    schema约束兜底。此不对称保留原样，见DESIGN.md
type Service interface {
	// CreateReturning 创建并按服务端分配的ID回读记录返回
	// （createBook动作使用：调用方必须看到落库后的ID与审计字段）
	// 业务校验由命令层的before钩子在进入本方法前完成
	CreateReturning(ctx context.Context, attrs Attributes, actor string) (*Book, error)

	// Create 通用创建路径：不执行业务规则校验，仅持久化
	Create(ctx context.Context, attrs Attributes, actor string) (*Book, error)

	// GetByID 根据ID获取图书
	GetByID(ctx context.Context, id string) (*Book, error)

	// List 按查询参数检索图书列表
	List(ctx context.Context, q Query) ([]*Book, error)

	// Count 统计匹配总数
	Count(ctx context.Context, q Query) (int64, error)

	// Update 更新图书（通用CRUD）
	Update(ctx context.Context, id string, attrs Attributes, actor string) (*Book, error)

	// Delete 删除图书（通用CRUD）
	Delete(ctx context.Context, id string) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateReturning 创建并回读
func (s *service) CreateReturning(ctx context.Context, attrs Attributes, actor string) (*Book, error) {
	// 1. 构造实体并持久化；失败的插入不留任何记录
	b := NewBook(attrs, actor)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 2. 回读刚插入的记录，保证调用方看到的是落库后的ID与审计字段
	return s.repo.FindByID(ctx, b.ID)
}

// Create 通用创建（schema约束由接口层绑定校验与数据库约束保证）
func (s *service) Create(ctx context.Context, attrs Attributes, actor string) (*Book, error) {
	b := NewBook(attrs, actor)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID 根据ID获取图书
func (s *service) GetByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// List 检索图书列表
func (s *service) List(ctx context.Context, q Query) ([]*Book, error) {
	return s.repo.Find(ctx, q)
}

// Count 统计匹配总数
func (s *service) Count(ctx context.Context, q Query) (int64, error) {
	return s.repo.Count(ctx, q)
}

// Update 更新图书
func (s *service) Update(ctx context.Context, id string, attrs Attributes, actor string) (*Book, error) {
	if err := ValidateAttributes(attrs, false); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ApplyUpdate(attrs, actor)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ValidateAttributes 字段约束校验
// requireTitle仅在createBook路径为true（业务规则），
// 长度上限与schema约束保持一致，写入前拦截。
// 长度按字符数（rune）计而非字节数，与接口层绑定校验口径一致。
// createBook路径由命令层的before钩子调用本函数
func ValidateAttributes(attrs Attributes, requireTitle bool) error {
	if requireTitle && attrs.Title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(attrs.Title) > 100 {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(attrs.Author) > 100 {
		return ErrAuthorTooLong
	}
	if utf8.RuneCountInString(attrs.Genre) > 50 {
		return ErrGenreTooLong
	}
	if utf8.RuneCountInString(attrs.Description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}
