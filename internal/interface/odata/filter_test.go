package odata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// TestParseFilter 过滤表达式解析
func TestParseFilter(t *testing.T) {
	t.Run("字符串等值", func(t *testing.T) {
		conds, err := ParseFilter("genre eq 'Fantasy'")
		require.NoError(t, err)
		require.Len(t, conds, 1)
		assert.Equal(t, book.Condition{Field: "genre", Op: book.OpEq, Value: "Fantasy"}, conds[0])
	})

	t.Run("单引号转义", func(t *testing.T) {
		conds, err := ParseFilter("title eq 'O''Reilly指南'")
		require.NoError(t, err)
		assert.Equal(t, "O'Reilly指南", conds[0].Value)
	})

	t.Run("数值比较", func(t *testing.T) {
		conds, err := ParseFilter("price gt 10.5")
		require.NoError(t, err)
		assert.Equal(t, book.Condition{Field: "price", Op: book.OpGt, Value: 10.5}, conds[0])

		conds, err = ParseFilter("stock le 100")
		require.NoError(t, err)
		assert.Equal(t, book.Condition{Field: "stock", Op: book.OpLe, Value: int64(100)}, conds[0])
	})

	t.Run("负数字面量", func(t *testing.T) {
		conds, err := ParseFilter("price lt -1")
		require.NoError(t, err)
		assert.Equal(t, book.Condition{Field: "price", Op: book.OpLt, Value: int64(-1)}, conds[0])

		conds, err = ParseFilter("price ge -2.5")
		require.NoError(t, err)
		assert.Equal(t, -2.5, conds[0].Value)
	})

	t.Run("日期字面量", func(t *testing.T) {
		conds, err := ParseFilter("publishedAt ge 1813-01-01")
		require.NoError(t, err)
		want, _ := time.Parse("2006-01-02", "1813-01-01")
		assert.Equal(t, want, conds[0].Value)
	})

	t.Run("and连接多个谓词", func(t *testing.T) {
		conds, err := ParseFilter("genre eq 'Sci-Fi' and price lt 20 and stock ge 1")
		require.NoError(t, err)
		require.Len(t, conds, 3)
		assert.Equal(t, "genre", conds[0].Field)
		assert.Equal(t, book.OpLt, conds[1].Op)
		assert.Equal(t, book.OpGe, conds[2].Op)
	})

	t.Run("contains子串匹配", func(t *testing.T) {
		conds, err := ParseFilter("contains(title,'Heights')")
		require.NoError(t, err)
		assert.Equal(t, book.Condition{Field: "title", Op: book.OpContains, Value: "Heights"}, conds[0])
	})

	t.Run("contains与比较混用", func(t *testing.T) {
		conds, err := ParseFilter("contains(author,'Brontë') and price le 15")
		require.NoError(t, err)
		require.Len(t, conds, 2)
	})
}

// TestParseFilterErrors 非法表达式一律返回校验错误，不透传
func TestParseFilterErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"未知字段", "isbn eq '123'"},
		{"不支持的操作符", "price ne 10"},
		{"不支持or连接", "genre eq 'a' or genre eq 'b'"},
		{"字符串未闭合", "title eq 'Dune"},
		{"contains作用于数值字段", "contains(price,'1')"},
		{"数值字段不接受字符串", "price eq 'abc'"},
		{"文本字段不接受数值", "title eq 42"},
		{"日期格式非法", "publishedAt ge 1813-13-45"},
		{"缺少字面量", "title eq"},
		{"孤立负号", "price lt - 1"},
		{"孤立操作符", "eq 'x'"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFilter(tc.raw)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			assert.Equal(t, "ValidationError", appErr.Symbol(), "解析错误应归入校验错误")
		})
	}
}
