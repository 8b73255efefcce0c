package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，错误类型由码段决定（400xx校验 / 404xx不存在 / 500xx内部）
// 2. Message是返回给调用方的提示信息，校验错误需指明字段
// 3. Err是内部原因，仅写入服务端日志，永不序列化（防止泄露存储细节）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 对外提示信息
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、缓存错误）
// 用途：将底层错误归入内部错误类，对外只暴露通用提示
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode 以指定错误码包装底层错误
func WrapCode(code int, err error, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 请求校验失败（ValidationError → HTTP 400）
// - 404xx: 资源不存在（NotFound → HTTP 404）
// - 500xx: 持久化或内部失败（StoreError/OperationError → HTTP 500）

const (
	// 校验错误（40000-40099）
	ErrCodeValidation    = 40000 // 字段校验失败
	ErrCodeInvalidParams = 40001 // 请求参数错误
	ErrCodeInvalidQuery  = 40002 // 查询选项($filter/$orderby等)非法

	// 资源错误（40400-40499）
	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound = 40401 // 图书不存在

	// 系统级错误（50000-50099）
	ErrCodeInternal  = 50000 // 内部错误
	ErrCodeStore     = 50001 // 存储层错误
	ErrCodeOperation = 50002 // 操作执行失败
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrStoreFailure  = New(ErrCodeStore, "存储服务错误")
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
)

// =========================================
// 辅助函数
// =========================================

// Symbol 返回错误码对应的对外错误符号（固定词汇表）
func (e *AppError) Symbol() string {
	switch {
	case e.Code >= 40000 && e.Code < 40100:
		return "ValidationError"
	case e.Code >= 40400 && e.Code < 40500:
		return "NotFound"
	case e.Code == ErrCodeStore:
		return "StoreError"
	default:
		return "OperationError"
	}
}

// HTTPStatus 错误码段 → HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 40000 && e.Code < 40100:
		return http.StatusBadRequest
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
