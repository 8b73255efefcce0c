package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/pkg/response"
)

// MetadataHandler $metadata端点：对外描述服务schema
// 描述文档由实体定义静态生成（元数据解析由平台承担，不在服务范围内）
type MetadataHandler struct{}

// NewMetadataHandler 创建元数据处理器
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// fieldMeta 单个字段的schema描述
type fieldMeta struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Key       bool   `json:"key,omitempty"`
	Required  bool   `json:"required,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
	Computed  bool   `json:"computed,omitempty"` // 服务端维护，调用方不可写
}

// serviceMeta 服务schema文档
type serviceMeta struct {
	Service  string       `json:"service"`
	Entities []entityMeta `json:"entities"`
	Actions  []actionMeta `json:"actions"`
}

type entityMeta struct {
	Name   string      `json:"name"`
	Fields []fieldMeta `json:"fields"`
}

type actionMeta struct {
	Name    string   `json:"name"`
	Params  []string `json:"params"`
	Returns string   `json:"returns"`
}

// Metadata 返回服务schema描述
// @Summary      服务元数据
// @Tags         元数据
// @Produce      json
// @Success      200 {object} handler.serviceMeta
// @Router       /bookshop/$metadata [get]
func (h *MetadataHandler) Metadata(c *gin.Context) {
	response.OK(c, serviceMeta{
		Service: "CatalogService",
		Entities: []entityMeta{
			{
				Name: "Books",
				Fields: []fieldMeta{
					{Name: "id", Type: "UUID", Key: true, Computed: true},
					{Name: "title", Type: "String", Required: true, MaxLength: 100},
					{Name: "author", Type: "String", MaxLength: 100},
					{Name: "genre", Type: "String", MaxLength: 50},
					{Name: "price", Type: "Decimal(10,2)"},
					{Name: "stock", Type: "Integer"},
					{Name: "description", Type: "String", MaxLength: 500},
					{Name: "publishedAt", Type: "Date"},
					{Name: "createdAt", Type: "Timestamp", Computed: true},
					{Name: "createdBy", Type: "String", Computed: true},
					{Name: "modifiedAt", Type: "Timestamp", Computed: true},
					{Name: "modifiedBy", Type: "String", Computed: true},
				},
			},
		},
		Actions: []actionMeta{
			{Name: "createBook", Params: []string{"title", "author", "genre", "price", "stock"}, Returns: "Books"},
			{Name: "getBooksByGenre", Params: []string{"genre"}, Returns: "Books[]"},
		},
	})
}
