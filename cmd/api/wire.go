//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/router"
)

// infrastructureSet 基础设施层：配置、日志、数据库、缓存
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	gormdb.NewDB,
	redis.NewClient,
	redis.NewBookCache,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	gormdb.NewBookRepository,
)

// domainSet 领域层
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewSaveBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewBooksByGenreUseCase,
)

// interfaceSet 接口层：中间件、处理器、路由
var interfaceSet = wire.NewSet(
	provideIdentity,
	handler.NewBookHandler,
	handler.NewMetadataHandler,
	router.New,
)

// InitializeApp 组装整个应用
func InitializeApp() (*App, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil
}
