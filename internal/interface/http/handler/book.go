package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/internal/interface/odata"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
// 网关职责：请求/响应映射 + 错误词汇表转换，无重试、无状态
type BookHandler struct {
	createBook *appbook.CreateBookUseCase
	saveBook   *appbook.SaveBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	listBooks  *appbook.ListBooksUseCase
	getBook    *appbook.GetBookUseCase
	byGenre    *appbook.BooksByGenreUseCase
	log        *zap.Logger
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	saveBook *appbook.SaveBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	getBook *appbook.GetBookUseCase,
	byGenre *appbook.BooksByGenreUseCase,
	log *zap.Logger,
) *BookHandler {
	return &BookHandler{
		createBook: createBook,
		saveBook:   saveBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
		listBooks:  listBooks,
		getBook:    getBook,
		byGenre:    byGenre,
		log:        log,
	}
}

// ListBooks 查询图书列表
// @Summary      图书列表
// @Description  支持$select/$filter/$orderby/$top/$skip/$search/$count查询选项
// @Tags         图书
// @Produce      json
// @Param        $filter  query string false "过滤表达式(eq/gt/ge/lt/le/and/contains)"
// @Param        $orderby query string false "排序，如 price desc,title"
// @Param        $top     query int    false "最大返回行数"
// @Param        $skip    query int    false "跳过行数"
// @Param        $search  query string false "跨文本字段子串搜索"
// @Param        $count   query bool   false "是否返回匹配总数"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorBody "查询选项非法"
// @Router       /bookshop/Books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	// 1. 解析查询选项（白名单校验，非法选项不触达存储层）
	q, err := odata.ParseOptions(c.Request.URL.Query())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	// 2. 执行查询
	result, err := h.listBooks.Execute(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	// 3. $select字段投影在网关侧完成
	var value interface{} = result.Books
	if result.Books == nil {
		value = []*book.Book{}
	}
	if len(q.Select) > 0 {
		value = projectBooks(result.Books, q.Select)
	}

	response.Collection(c, value, result.Count)
}

// GetBook 查询单本图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} book.Book
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /bookshop/Books({id}) [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	b, err := h.getBook.Execute(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, b)
}

// CreateBook 通用创建（无业务校验，仅schema约束）
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveBookRequest true "图书字段"
// @Success      201 {object} book.Book
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Router       /bookshop/Books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.log, apperrors.Newf(apperrors.ErrCodeValidation, "参数错误: %s", err.Error()))
		return
	}

	attrs, err := req.Attributes()
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	created, err := h.saveBook.Execute(c.Request.Context(), attrs, middleware.GetActor(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	response.Created(c, created)
}

// UpdateBook 通用更新
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path string true "图书ID"
// @Param        request body dto.SaveBookRequest true "图书字段"
// @Success      200 {object} book.Book
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /bookshop/Books({id}) [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.log, apperrors.Newf(apperrors.ErrCodeValidation, "参数错误: %s", err.Error()))
		return
	}

	attrs, err := req.Attributes()
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	updated, err := h.updateBook.Execute(c.Request.Context(), c.Param("key"), attrs, middleware.GetActor(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	response.OK(c, updated)
}

// DeleteBook 通用删除
// @Summary      删除图书
// @Tags         图书
// @Param        id path string true "图书ID"
// @Success      204
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /bookshop/Books({id}) [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.deleteBook.Execute(c.Request.Context(), c.Param("key"), middleware.GetActor(c)); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.NoContent(c)
}

// CreateBookAction createBook动作（带业务校验的创建）
// @Summary      createBook动作
// @Description  标题非空为显式业务规则，违反返回400；成功返回落库后的完整记录
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookActionRequest true "图书字段"
// @Success      200 {object} book.Book
// @Failure      400 {object} response.ErrorBody "校验失败"
// @Failure      500 {object} response.ErrorBody "内部错误"
// @Router       /bookshop/createBook [post]
func (h *BookHandler) CreateBookAction(c *gin.Context) {
	var req dto.CreateBookActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.log, apperrors.Newf(apperrors.ErrCodeValidation, "参数错误: %s", err.Error()))
		return
	}

	created, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
		Stock:  req.Stock,
	}, middleware.GetActor(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	response.OK(c, created)
}

// BooksByGenre getBooksByGenre动作
// @Summary      按类别查询图书
// @Description  类别精确匹配（大小写敏感）；未知类别返回空列表
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BooksByGenreRequest true "类别"
// @Success      200 {object} response.Envelope
// @Router       /bookshop/getBooksByGenre [post]
func (h *BookHandler) BooksByGenre(c *gin.Context) {
	var req dto.BooksByGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.log, apperrors.Newf(apperrors.ErrCodeValidation, "参数错误: %s", err.Error()))
		return
	}

	books, err := h.byGenre.Execute(c.Request.Context(), req.Genre)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if books == nil {
		books = []*book.Book{}
	}

	response.Collection(c, books, nil)
}

// projectBooks $select投影：只保留请求的字段
func projectBooks(books []*book.Book, fields []string) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(books))
	for _, b := range books {
		row := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			switch f {
			case "id":
				row[f] = b.ID
			case "title":
				row[f] = b.Title
			case "author":
				row[f] = b.Author
			case "genre":
				row[f] = b.Genre
			case "price":
				row[f] = b.Price
			case "stock":
				row[f] = b.Stock
			case "description":
				row[f] = b.Description
			case "publishedAt":
				row[f] = b.PublishedAt
			case "createdAt":
				row[f] = b.CreatedAt
			case "createdBy":
				row[f] = b.CreatedBy
			case "modifiedAt":
				row[f] = b.ModifiedAt
			case "modifiedBy":
				row[f] = b.ModifiedBy
			}
		}
		result = append(result, row)
	}
	return result
}
