package router

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// New 组装HTTP路由
// 服务根为/bookshop；OData键语法/Books({id})由外层的路径改写器
// 归一化为/Books/{id}后再进入gin路由
func New(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	metaHandler *handler.MetadataHandler,
	identity *middleware.Identity,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(identity.Resolve())
	r.Use(middleware.RequestLogger(log))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "healthy"})
	})

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 服务根
	svc := r.Group("/bookshop")
	{
		svc.GET("/$metadata", metaHandler.Metadata)

		// 实体集：通用CRUD
		svc.GET("/Books", bookHandler.ListBooks)
		svc.POST("/Books", bookHandler.CreateBook)
		svc.GET("/Books/:key", bookHandler.GetBook)
		svc.PUT("/Books/:key", bookHandler.UpdateBook)
		svc.PATCH("/Books/:key", bookHandler.UpdateBook)
		svc.DELETE("/Books/:key", bookHandler.DeleteBook)

		// 自定义动作
		svc.POST("/createBook", bookHandler.CreateBookAction)
		svc.POST("/getBooksByGenre", bookHandler.BooksByGenre)
	}

	return r
}

// 形如/bookshop/Books(2b3f...)或/bookshop/Books('2b3f...')的键语法
var keyPattern = regexp.MustCompile(`^(/bookshop/Books)\('?([^')/]+)'?\)$`)

// WithODataPath 包装路由，在进入gin前把OData键语法归一化为路径段
func WithODataPath(engine *gin.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m := keyPattern.FindStringSubmatch(r.URL.Path); m != nil {
			r.URL.Path = m[1] + "/" + m[2]
		}
		engine.ServeHTTP(w, r)
	})
}
