package odata

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// $filter支持的子集（与源接口一致）：
//
//	filter := term { "and" term }
//	term   := "contains" "(" field "," string ")"
//	        | field op literal
//	op     := eq | gt | ge | lt | le
//	literal:= 'string'（单引号内两个单引号转义） | [-]整数 | [-]小数 | 日期(YYYY-MM-DD)
//
// 只有合取（and），不支持or/not/括号分组；未知字段与操作符直接拒绝。

// 数值字段与日期字段的类型表，用于字面量类型检查
var (
	numericFields = map[string]bool{"price": true, "stock": true}
	dateFields    = map[string]bool{"publishedAt": true, "createdAt": true, "modifiedAt": true}
	textFields    = map[string]bool{}
)

func init() {
	for _, f := range book.TextFields {
		textFields[f] = true
	}
	textFields["id"] = true
	textFields["createdBy"] = true
	textFields["modifiedBy"] = true
}

// ParseFilter 解析$filter表达式为谓词合取
func ParseFilter(raw string) ([]book.Condition, error) {
	tokens, err := lexFilter(raw)
	if err != nil {
		return nil, err
	}

	p := &filterParser{tokens: tokens}
	var conds []book.Condition

	for {
		cond, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)

		tok := p.peek()
		if tok.kind == tokenEOF {
			return conds, nil
		}
		if tok.kind == tokenIdent && strings.EqualFold(tok.text, "and") {
			p.next()
			continue
		}
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter中出现未预期的内容: %s", tok.text)
	}
}

// ---------------------------------------------------------
// 词法分析
// ---------------------------------------------------------

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenString
	tokenNumber // 数字或日期字面量
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind tokenKind
	text string
}

func lexFilter(raw string) ([]token, error) {
	var tokens []token
	runes := []rune(raw)
	i := 0

	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '(':
			tokens = append(tokens, token{tokenLParen, "("})
			i++

		case r == ')':
			tokens = append(tokens, token{tokenRParen, ")"})
			i++

		case r == ',':
			tokens = append(tokens, token{tokenComma, ","})
			i++

		case r == '\'':
			// 字符串字面量，两个连续单引号转义为一个
			i++
			var sb strings.Builder
			closed := false
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						sb.WriteRune('\'')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				sb.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, apperrors.New(apperrors.ErrCodeInvalidQuery, "$filter字符串字面量未闭合")
			}
			tokens = append(tokens, token{tokenString, sb.String()})

		case unicode.IsDigit(r) || (r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			// 数字或日期：可选负号开头，连续的数字、小数点、连字符
			start := i
			i++
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.' || runes[i] == '-') {
				i++
			}
			tokens = append(tokens, token{tokenNumber, string(runes[start:i])})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokenIdent, string(runes[start:i])})

		default:
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter中出现非法字符: %q", string(r))
		}
	}

	return append(tokens, token{tokenEOF, ""}), nil
}

// ---------------------------------------------------------
// 语法分析
// ---------------------------------------------------------

type filterParser struct {
	tokens []token
	pos    int
}

func (p *filterParser) peek() token {
	return p.tokens[p.pos]
}

func (p *filterParser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// parseTerm 解析单个谓词：contains(field,'s') 或 field op literal
func (p *filterParser) parseTerm() (book.Condition, error) {
	tok := p.next()
	if tok.kind != tokenIdent {
		return book.Condition{}, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter期望字段名或contains，得到: %s", tok.text)
	}

	if strings.EqualFold(tok.text, "contains") {
		return p.parseContains()
	}

	field := tok.text
	if _, ok := book.FieldColumns[field]; !ok {
		return book.Condition{}, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter引用了未知字段: %s", field)
	}

	opTok := p.next()
	if opTok.kind != tokenIdent {
		return book.Condition{}, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter期望操作符，得到: %s", opTok.text)
	}
	var op book.CompareOp
	switch strings.ToLower(opTok.text) {
	case "eq":
		op = book.OpEq
	case "gt":
		op = book.OpGt
	case "ge":
		op = book.OpGe
	case "lt":
		op = book.OpLt
	case "le":
		op = book.OpLe
	default:
		return book.Condition{}, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter不支持的操作符: %s", opTok.text)
	}

	value, err := p.parseLiteral(field)
	if err != nil {
		return book.Condition{}, err
	}

	return book.Condition{Field: field, Op: op, Value: value}, nil
}

// parseContains 解析contains(field,'substr')
func (p *filterParser) parseContains() (book.Condition, error) {
	if tok := p.next(); tok.kind != tokenLParen {
		return book.Condition{}, apperrors.New(apperrors.ErrCodeInvalidQuery, "contains后缺少左括号")
	}

	fieldTok := p.next()
	if fieldTok.kind != tokenIdent {
		return book.Condition{}, apperrors.New(apperrors.ErrCodeInvalidQuery, "contains第一个参数必须是字段名")
	}
	field := fieldTok.text
	if !textFields[field] {
		return book.Condition{}, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "contains只能作用于文本字段: %s", field)
	}

	if tok := p.next(); tok.kind != tokenComma {
		return book.Condition{}, apperrors.New(apperrors.ErrCodeInvalidQuery, "contains参数之间缺少逗号")
	}

	strTok := p.next()
	if strTok.kind != tokenString {
		return book.Condition{}, apperrors.New(apperrors.ErrCodeInvalidQuery, "contains第二个参数必须是字符串字面量")
	}

	if tok := p.next(); tok.kind != tokenRParen {
		return book.Condition{}, apperrors.New(apperrors.ErrCodeInvalidQuery, "contains缺少右括号")
	}

	return book.Condition{Field: field, Op: book.OpContains, Value: strTok.text}, nil
}

// parseLiteral 按字段类型解析并检查字面量
func (p *filterParser) parseLiteral(field string) (interface{}, error) {
	tok := p.next()

	switch tok.kind {
	case tokenString:
		if numericFields[field] || dateFields[field] {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "字段%s不接受字符串字面量", field)
		}
		return tok.text, nil

	case tokenNumber:
		if dateFields[field] {
			t, err := time.Parse("2006-01-02", tok.text)
			if err != nil {
				return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "字段%s的日期字面量非法: %s", field, tok.text)
			}
			return t, nil
		}
		if !numericFields[field] {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "字段%s不接受数值字面量", field)
		}
		if strings.Contains(tok.text, ".") {
			f, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "数值字面量非法: %s", tok.text)
			}
			return f, nil
		}
		n, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "数值字面量非法: %s", tok.text)
		}
		return n, nil

	default:
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidQuery, "$filter期望字面量，得到: %s", tok.text)
	}
}
