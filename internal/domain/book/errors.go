package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleRequired createBook业务规则：书名不能为空
	// 注意：通用创建路径只依赖schema层的not null约束，此规则仅在createBook动作中生效
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeValidation, "字段title不能为空")

	// ErrTitleTooLong 书名超长
	ErrTitleTooLong = apperrors.New(apperrors.ErrCodeValidation, "字段title长度不能超过100")

	// ErrAuthorTooLong 作者超长
	ErrAuthorTooLong = apperrors.New(apperrors.ErrCodeValidation, "字段author长度不能超过100")

	// ErrGenreTooLong 类别超长
	ErrGenreTooLong = apperrors.New(apperrors.ErrCodeValidation, "字段genre长度不能超过50")

	// ErrDescriptionTooLong 描述超长
	ErrDescriptionTooLong = apperrors.New(apperrors.ErrCodeValidation, "字段description长度不能超过500")
)
