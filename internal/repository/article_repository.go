// Package repository declares the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"backoffice-cms/internal/domain/entity"
)

// ArticleFilters contains optional filters for article listing.
type ArticleFilters struct {
	Status     *entity.Status // Optional: filter by publication state
	CategoryID *int64         // Optional: filter by category
	AuthorID   *int64         // Optional: filter by owning user
	Search     string         // Optional: substring match on title, summary and content
}

// ArticleWithRelations bundles an article with the display fields of its
// author and category for list and detail responses.
type ArticleWithRelations struct {
	Article      *entity.Article
	AuthorName   string
	CategoryName string // empty when the article has no category
}

// StatusCount is one row of the stats-by-status aggregate.
type StatusCount struct {
	Status entity.Status
	Count  int64
}

type ArticleRepository interface {
	// Get retrieves an article by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithRelations retrieves an article with author and category names.
	// Returns (nil, nil) when absent.
	GetWithRelations(ctx context.Context, id int64) (*ArticleWithRelations, error)
	// List retrieves articles matching the filters, newest first,
	// with LIMIT/OFFSET pagination.
	List(ctx context.Context, filters ArticleFilters, offset, limit int) ([]ArticleWithRelations, error)
	// Count returns the number of articles matching the filters,
	// used for pagination metadata.
	Count(ctx context.Context, filters ArticleFilters) (int64, error)
	// Create inserts the article and assigns its ID. A slug collision is
	// reported as *entity.ConflictError on field "slug".
	Create(ctx context.Context, article *entity.Article) error
	// Update persists all mutable fields. Slug collisions surface as
	// *entity.ConflictError on field "slug".
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	// IncrementViewCount bumps the read counter without touching updated_at.
	IncrementViewCount(ctx context.Context, id int64) error
	// CountByStatus returns article counts grouped by publication state.
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
