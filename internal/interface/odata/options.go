// Package odata 解析源接口使用的OData查询选项子集
// ($select/$filter/$orderby/$top/$skip/$search/$count)，
// 并将其翻译为领域层的book.Query。超出子集的语法一律返回校验错误，
// 绝不把未识别的内容透传到SQL层。
package odata

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ParseOptions 解析URL查询参数为领域查询
func ParseOptions(values url.Values) (book.Query, error) {
	var q book.Query

	if raw := values.Get("$filter"); raw != "" {
		conds, err := ParseFilter(raw)
		if err != nil {
			return q, err
		}
		q.Filter = conds
	}

	if raw := values.Get("$orderby"); raw != "" {
		keys, err := parseOrderBy(raw)
		if err != nil {
			return q, err
		}
		q.OrderBy = keys
	}

	if raw := values.Get("$select"); raw != "" {
		fields, err := parseSelect(raw)
		if err != nil {
			return q, err
		}
		q.Select = fields
	}

	if raw := values.Get("$top"); raw != "" {
		n, err := parseNonNegative("$top", raw)
		if err != nil {
			return q, err
		}
		q.Top = n
	}

	if raw := values.Get("$skip"); raw != "" {
		n, err := parseNonNegative("$skip", raw)
		if err != nil {
			return q, err
		}
		q.Skip = n
	}

	q.Search = strings.Trim(values.Get("$search"), `"`)

	if raw := values.Get("$count"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$count取值非法: %s", raw)
		}
		q.WithCount = b
	}

	return q, nil
}

// parseOrderBy 解析$orderby："price desc, title asc"形式，支持多字段
func parseOrderBy(raw string) ([]book.OrderKey, error) {
	var keys []book.OrderKey

	for _, part := range strings.Split(raw, ",") {
		tokens := strings.Fields(part)
		if len(tokens) == 0 || len(tokens) > 2 {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$orderby片段非法: %q", part)
		}

		field := tokens[0]
		if _, ok := book.FieldColumns[field]; !ok {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$orderby引用了未知字段: %s", field)
		}

		desc := false
		if len(tokens) == 2 {
			switch strings.ToLower(tokens[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$orderby方向非法: %s", tokens[1])
			}
		}

		keys = append(keys, book.OrderKey{Field: field, Desc: desc})
	}

	return keys, nil
}

// parseSelect 解析$select字段子集（白名单校验）
func parseSelect(raw string) ([]string, error) {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if _, ok := book.FieldColumns[f]; !ok {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$select引用了未知字段: %s", f)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// parseNonNegative 解析非负整数选项
func parseNonNegative(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "%s必须是非负整数: %s", name, raw)
	}
	return n, nil
}
