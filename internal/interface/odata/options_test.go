package odata

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// TestParseOptions 查询选项整体解析
func TestParseOptions(t *testing.T) {
	t.Run("空参数返回零值查询", func(t *testing.T) {
		q, err := ParseOptions(url.Values{})
		require.NoError(t, err)
		assert.Empty(t, q.Filter)
		assert.Empty(t, q.OrderBy)
		assert.Empty(t, q.Select)
		assert.Zero(t, q.Top)
		assert.Zero(t, q.Skip)
		assert.False(t, q.WithCount)
	})

	t.Run("完整组合", func(t *testing.T) {
		values := url.Values{
			"$select":  {"title,price"},
			"$filter":  {"genre eq 'Fantasy'"},
			"$orderby": {"price desc, title"},
			"$top":     {"5"},
			"$skip":    {"10"},
			"$search":  {`"Heights"`},
			"$count":   {"true"},
		}
		q, err := ParseOptions(values)
		require.NoError(t, err)
		assert.Equal(t, []string{"title", "price"}, q.Select)
		assert.Equal(t, []book.Condition{{Field: "genre", Op: book.OpEq, Value: "Fantasy"}}, q.Filter)
		assert.Equal(t, []book.OrderKey{{Field: "price", Desc: true}, {Field: "title"}}, q.OrderBy)
		assert.Equal(t, 5, q.Top)
		assert.Equal(t, 10, q.Skip)
		assert.Equal(t, "Heights", q.Search, "$search外层引号应剥除")
		assert.True(t, q.WithCount)
	})

	t.Run("orderby默认升序", func(t *testing.T) {
		q, err := ParseOptions(url.Values{"$orderby": {"publishedAt"}})
		require.NoError(t, err)
		assert.Equal(t, []book.OrderKey{{Field: "publishedAt", Desc: false}}, q.OrderBy)
	})

	t.Run("search不带引号原样保留", func(t *testing.T) {
		q, err := ParseOptions(url.Values{"$search": {"呼啸山庄"}})
		require.NoError(t, err)
		assert.Equal(t, "呼啸山庄", q.Search)
	})
}

// TestParseOptionsErrors 非法选项逐项拒绝
func TestParseOptionsErrors(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
	}{
		{"select未知字段", url.Values{"$select": {"title,isbn"}}},
		{"orderby未知字段", url.Values{"$orderby": {"isbn desc"}}},
		{"orderby方向非法", url.Values{"$orderby": {"price down"}}},
		{"top为负数", url.Values{"$top": {"-1"}}},
		{"top非整数", url.Values{"$top": {"abc"}}},
		{"skip为负数", url.Values{"$skip": {"-5"}}},
		{"count取值非法", url.Values{"$count": {"yes?"}}},
		{"filter语法错误", url.Values{"$filter": {"price !! 3"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptions(tc.values)
			assert.Error(t, err)
		})
	}
}
