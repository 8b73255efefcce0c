package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Envelope 集合查询的响应信封
// 设计说明：
// 1. value字段承载记录数组（OData风格，前端可统一解析）
// 2. count仅在调用方传$count=true时返回总数（与分页无关的全量匹配数）
type Envelope struct {
	Value interface{} `json:"value"`
	Count *int64      `json:"count,omitempty"`
}

// ErrorBody 错误响应信封
// 对外只暴露固定词汇表中的错误符号与提示信息，内部原因只进日志
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Code    string `json:"code"`    // ValidationError | NotFound | StoreError | OperationError
	Message string `json:"message"` // 对外提示，校验错误需指明字段
}

// OK 返回单个资源（200）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 返回新建资源（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 返回空响应（204）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Collection 返回集合查询结果
func Collection(c *gin.Context, value interface{}, count *int64) {
	c.JSON(http.StatusOK, Envelope{Value: value, Count: count})
}

// Error 错误响应（自动映射AppError → HTTP状态码）
// 用法：
//
//	books, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, log, err)
//	    return
//	}
func Error(c *gin.Context, log *zap.Logger, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部原因只写服务端日志，不回显给调用方
	if appErr.Err != nil && log != nil {
		log.Error("请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(appErr.HTTPStatus(), ErrorBody{
		Error: ErrorDetail{
			Code:    appErr.Symbol(),
			Message: appErr.Message,
		},
	})
}
