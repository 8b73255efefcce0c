package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorVocabulary 错误码段 → 对外符号与HTTP状态码的固定映射
func TestErrorVocabulary(t *testing.T) {
	cases := []struct {
		name   string
		code   int
		symbol string
		status int
	}{
		{"字段校验失败", ErrCodeValidation, "ValidationError", http.StatusBadRequest},
		{"查询选项非法", ErrCodeInvalidQuery, "ValidationError", http.StatusBadRequest},
		{"资源不存在", ErrCodeNotFound, "NotFound", http.StatusNotFound},
		{"图书不存在", ErrCodeBookNotFound, "NotFound", http.StatusNotFound},
		{"存储层错误", ErrCodeStore, "StoreError", http.StatusInternalServerError},
		{"操作执行失败", ErrCodeOperation, "OperationError", http.StatusInternalServerError},
		{"内部错误", ErrCodeInternal, "OperationError", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(tc.code, "x")
			assert.Equal(t, tc.symbol, e.Symbol())
			assert.Equal(t, tc.status, e.HTTPStatus())
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := WrapCode(ErrCodeStore, cause, "存储服务错误")

	assert.True(t, errors.Is(e, cause), "包装后应保留错误链")
	assert.Equal(t, "StoreError", e.Symbol())
	assert.Contains(t, e.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样提取", func(t *testing.T) {
		e := New(ErrCodeBookNotFound, "图书不存在")
		assert.Same(t, e, GetAppError(e))
	})

	t.Run("裸错误归入内部错误", func(t *testing.T) {
		e := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, e.Code)
		assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
	})
}
