package metrics

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
)

type stubArticleRepo struct {
	counts []repository.StatusCount
	err    error
}

func (s *stubArticleRepo) Get(context.Context, int64) (*entity.Article, error) { return nil, nil }
func (s *stubArticleRepo) GetWithRelations(context.Context, int64) (*repository.ArticleWithRelations, error) {
	return nil, nil
}
func (s *stubArticleRepo) List(context.Context, repository.ArticleFilters, int, int) ([]repository.ArticleWithRelations, error) {
	return nil, nil
}
func (s *stubArticleRepo) Count(context.Context, repository.ArticleFilters) (int64, error) {
	return 0, nil
}
func (s *stubArticleRepo) Create(context.Context, *entity.Article) error { return nil }
func (s *stubArticleRepo) Update(context.Context, *entity.Article) error { return nil }
func (s *stubArticleRepo) Delete(context.Context, int64) error { return nil }
func (s *stubArticleRepo) IncrementViewCount(context.Context, int64) error { return nil }
func (s *stubArticleRepo) CountByStatus(context.Context) ([]repository.StatusCount, error) {
	return s.counts, s.err
}

type stubUserRepo struct {
	count int64
	err   error
}

func (s *stubUserRepo) Get(context.Context, int64) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) List(context.Context, int, int) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepo) Count(context.Context) (int64, error) { return s.count, s.err }
func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) Delete(context.Context, int64) error { return nil }
func (s *stubUserRepo) TouchLastLogin(context.Context, int64, time.Time) error { return nil }

type stubCategoryRepo struct {
	cats []repository.CategoryWithCount
	err  error
}

func (s *stubCategoryRepo) Get(context.Context, int64) (*entity.Category, error) { return nil, nil }
func (s *stubCategoryRepo) List(context.Context) ([]repository.CategoryWithCount, error) {
	return s.cats, s.err
}
func (s *stubCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (s *stubCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(context.Context, int64) error { return nil }
func (s *stubCategoryRepo) ArticleCount(context.Context, int64) (int64, error) { return 0, nil }

func TestCollector_Refresh(t *testing.T) {
	collector := &Collector{
		Articles: &stubArticleRepo{counts: []repository.StatusCount{
			{Status: entity.StatusDraft, Count: 3},
			{Status: entity.StatusPublished, Count: 7},
		}},
		Users:      &stubUserRepo{count: 5},
		Categories: &stubCategoryRepo{cats: make([]repository.CategoryWithCount, 4)},
		Logger:     slog.Default(),
	}

	collector.Refresh(context.Background())

	assert.Equal(t, float64(10), testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(ArticlesByStatus.WithLabelValues("draft")))
	assert.Equal(t, float64(7), testutil.ToFloat64(ArticlesByStatus.WithLabelValues("published")))
	assert.Equal(t, float64(5), testutil.ToFloat64(UsersTotal))
	assert.Equal(t, float64(4), testutil.ToFloat64(CategoriesTotal))
}

func TestCollector_Refresh_PartialFailure(t *testing.T) {
	UsersTotal.Set(99)

	collector := &Collector{
		Articles:   &stubArticleRepo{counts: []repository.StatusCount{{Status: entity.StatusDraft, Count: 1}}},
		Users:      &stubUserRepo{err: errors.New("connection refused")},
		Categories: &stubCategoryRepo{cats: make([]repository.CategoryWithCount, 2)},
		Logger:     slog.Default(),
	}

	collector.Refresh(context.Background())

	// The failing gauge keeps its previous value; the others refresh.
	assert.Equal(t, float64(99), testutil.ToFloat64(UsersTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(CategoriesTotal))
}

func TestCollector_Start_InvalidSchedule(t *testing.T) {
	collector := &Collector{
		Articles:   &stubArticleRepo{},
		Users:      &stubUserRepo{},
		Categories: &stubCategoryRepo{},
		Logger:     slog.Default(),
	}

	_, err := collector.Start("not a schedule")
	assert.Error(t, err)
}

func TestUpdateHelpers(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateArticlesTotal(12)
		UpdateArticlesByStatus("pending", 2)
		UpdateUsersTotal(4)
		UpdateCategoriesTotal(3)
		RecordArticleView()
	})
}
