package repository

import (
	"context"

	"backoffice-cms/internal/domain/entity"
)

// CategoryWithCount bundles a category with its published-article count
// for admin listing.
type CategoryWithCount struct {
	Category     *entity.Category
	ArticleCount int64
}

type CategoryRepository interface {
	// Get retrieves a category by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// List retrieves all categories ordered by name, each with its
	// published-article count.
	List(ctx context.Context) ([]CategoryWithCount, error)
	// Create inserts the category and assigns its ID. Duplicate names or
	// slugs surface as *entity.ConflictError on field "name" or "slug".
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	// ArticleCount returns how many articles reference the category.
	ArticleCount(ctx context.Context, id int64) (int64, error)
}
