package gormdb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// newTestRepo 基于内存sqlite构建仓储，每个测试独立一套表
func newTestRepo(t *testing.T) book.Repository {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    ":memory:",
		},
	}
	db, err := NewDB(cfg)
	require.NoError(t, err)

	return NewBookRepository(db)
}

func seedBook(t *testing.T, repo book.Repository, title, author, genre string, price float64, stock int) *book.Book {
	t.Helper()

	b := book.NewBook(book.Attributes{
		Title:  title,
		Author: author,
		Genre:  genre,
		Price:  price,
		Stock:  stock,
	}, "tester")
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookRepositoryCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("创建后按ID读回", func(t *testing.T) {
		published, _ := time.Parse("2006-01-02", "1847-12-01")
		b := book.NewBook(book.Attributes{
			Title:       "Wuthering Heights",
			Author:      "Emily Brontë",
			Genre:       "Drama",
			Price:       11.11,
			Stock:       12,
			Description: "经典哥特小说",
			PublishedAt: &published,
		}, "tester")
		require.NoError(t, repo.Create(ctx, b))

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
		assert.Equal(t, "Wuthering Heights", got.Title)
		assert.Equal(t, "Emily Brontë", got.Author)
		assert.Equal(t, 11.11, got.Price)
		assert.Equal(t, 12, got.Stock)
		require.NotNil(t, got.PublishedAt)
		assert.Equal(t, "1847-12-01", got.PublishedAt.Format("2006-01-02"))
		assert.Equal(t, "tester", got.CreatedBy)
	})

	t.Run("不存在的ID返回领域错误", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "no-such-id")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})

	t.Run("更新全部可写字段", func(t *testing.T) {
		b := seedBook(t, repo, "初版书名", "某作者", "Essay", 9.90, 1)

		b.ApplyUpdate(book.Attributes{
			Title: "再版书名",
			Genre: "Essay",
			Price: 19.50,
			Stock: 5,
		}, "editor")
		require.NoError(t, repo.Update(ctx, b))

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "再版书名", got.Title)
		assert.Equal(t, "", got.Author, "未提交的字段应被清空而不是保留旧值")
		assert.Equal(t, 19.50, got.Price)
		assert.Equal(t, 5, got.Stock)
		assert.Equal(t, "editor", got.ModifiedBy)
		assert.Equal(t, "tester", got.CreatedBy)
	})

	t.Run("删除后再读返回不存在", func(t *testing.T) {
		b := seedBook(t, repo, "待删除", "", "", 1, 0)

		require.NoError(t, repo.Delete(ctx, b.ID))
		_, err := repo.FindByID(ctx, b.ID)
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})

	t.Run("删除不存在的ID返回不存在", func(t *testing.T) {
		err := repo.Delete(ctx, "no-such-id")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}

func TestBookRepositoryFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedBook(t, repo, "Dune", "Frank Herbert", "Sci-Fi", 15.50, 99)
	seedBook(t, repo, "Dune Messiah", "Frank Herbert", "Sci-Fi", 12.00, 30)
	seedBook(t, repo, "Wuthering Heights", "Emily Brontë", "Drama", 11.11, 12)
	seedBook(t, repo, "Jane Eyre", "Charlotte Brontë", "Drama", 11.11, 11)
	seedBook(t, repo, "The Raven", "Edgar Allen Poe", "Mystery", 6.00, 333)

	t.Run("无条件返回全部", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{})
		require.NoError(t, err)
		assert.Len(t, books, 5)
	})

	t.Run("等值过滤", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{{Field: "genre", Op: book.OpEq, Value: "Sci-Fi"}},
		})
		require.NoError(t, err)
		require.Len(t, books, 2)
		for _, b := range books {
			assert.Equal(t, "Sci-Fi", b.Genre)
		}
	})

	t.Run("等值过滤区分大小写", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{{Field: "genre", Op: book.OpEq, Value: "sci-fi"}},
		})
		require.NoError(t, err)
		assert.Empty(t, books, "genre匹配必须区分大小写")
	})

	t.Run("数值区间过滤", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{
				{Field: "price", Op: book.OpGt, Value: 10.0},
				{Field: "price", Op: book.OpLt, Value: 14.0},
			},
		})
		require.NoError(t, err)
		require.Len(t, books, 3)
		for _, b := range books {
			assert.Greater(t, b.Price, 10.0)
			assert.Less(t, b.Price, 14.0)
		}
	})

	t.Run("contains子串匹配", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{{Field: "title", Op: book.OpContains, Value: "Dune"}},
		})
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("search跨文本字段", func(t *testing.T) {
		// "Brontë"只出现在author字段
		books, err := repo.Find(ctx, book.Query{Search: "Brontë"})
		require.NoError(t, err)
		assert.Len(t, books, 2)

		// "Raven"出现在title字段
		books, err = repo.Find(ctx, book.Query{Search: "Raven"})
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("search与filter合取", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{{Field: "genre", Op: book.OpEq, Value: "Drama"}},
			Search: "Jane",
		})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Jane Eyre", books[0].Title)
	})

	t.Run("排序含并列时结果确定", func(t *testing.T) {
		// 两本Drama价格相同，并列时按id升序收尾，重复查询顺序一致
		first, err := repo.Find(ctx, book.Query{
			OrderBy: []book.OrderKey{{Field: "price", Desc: false}},
		})
		require.NoError(t, err)

		second, err := repo.Find(ctx, book.Query{
			OrderBy: []book.OrderKey{{Field: "price", Desc: false}},
		})
		require.NoError(t, err)

		require.Len(t, first, 5)
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
		assert.Equal(t, "The Raven", first[0].Title)
	})

	t.Run("降序排序", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			OrderBy: []book.OrderKey{{Field: "stock", Desc: true}},
		})
		require.NoError(t, err)
		require.Len(t, books, 5)
		assert.Equal(t, "The Raven", books[0].Title)
		for i := 1; i < len(books); i++ {
			assert.GreaterOrEqual(t, books[i-1].Stock, books[i].Stock)
		}
	})

	t.Run("分页分片无重叠无遗漏", func(t *testing.T) {
		seen := make(map[string]bool)
		q := book.Query{OrderBy: []book.OrderKey{{Field: "title"}}}

		for skip := 0; skip < 5; skip += 2 {
			q.Top, q.Skip = 2, skip
			page, err := repo.Find(ctx, q)
			require.NoError(t, err)
			for _, b := range page {
				assert.False(t, seen[b.ID], "分页窗口之间不应重复")
				seen[b.ID] = true
			}
		}
		assert.Len(t, seen, 5, "所有分页窗口合并应覆盖全集")
	})

	t.Run("count忽略分页窗口", func(t *testing.T) {
		q := book.Query{
			Filter: []book.Condition{{Field: "genre", Op: book.OpEq, Value: "Sci-Fi"}},
			Top:    1,
			Skip:   1,
		}
		total, err := repo.Count(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		page, err := repo.Find(ctx, q)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("排序键不在白名单被拒绝", func(t *testing.T) {
		_, err := repo.Find(ctx, book.Query{
			OrderBy: []book.OrderKey{{Field: "isbn"}},
		})
		require.Error(t, err)
		assert.Equal(t, "ValidationError", apperrors.GetAppError(err).Symbol())
	})

	t.Run("无匹配返回空集而非错误", func(t *testing.T) {
		books, err := repo.Find(ctx, book.Query{
			Filter: []book.Condition{{Field: "genre", Op: book.OpEq, Value: "Poetry"}},
		})
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookRepositoryPaginationStability(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// 全部同价，排序键完全并列，分页稳定性只能靠id收尾保证
	for i := 0; i < 10; i++ {
		seedBook(t, repo, fmt.Sprintf("同价书%02d", i), "", "Essay", 10.00, 1)
	}

	seen := make(map[string]bool)
	for skip := 0; skip < 10; skip += 3 {
		page, err := repo.Find(ctx, book.Query{
			OrderBy: []book.OrderKey{{Field: "price"}},
			Top:     3,
			Skip:    skip,
		})
		require.NoError(t, err)
		for _, b := range page {
			assert.False(t, seen[b.ID])
			seen[b.ID] = true
		}
	}
	assert.Len(t, seen, 10)
}
