package gormdb

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. driver=sqlite时为嵌入式库（文件或:memory:），driver=mysql时为云端库；
//    仓储实现共用，切换只改配置
// 2. 连接池参数来自配置（嵌入式sqlite下同样生效，只是意义有限）
// 3. 启动时AutoMigrate建表；迁移工具链在本服务范围之外
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Silent
	if cfg.Database.LogMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(&book.Book{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	return db, nil
}

// openDialector 按配置选择GORM方言
func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}
