package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
)

type CategoryRepo struct {
	db Querier
}

func NewCategoryRepo(db Querier) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, color, created_at, updated_at
FROM categories
WHERE id = $1
LIMIT 1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.Color, &category.CreatedAt, &category.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &category, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]repository.CategoryWithCount, error) {
	const query = `
SELECT c.id, c.name, c.slug, c.description, c.color, c.created_at, c.updated_at,
       COUNT(a.id) AS article_count
FROM categories c
LEFT JOIN articles a ON a.category_id = c.id
GROUP BY c.id
ORDER BY c.name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.CategoryWithCount, 0, 20)
	for rows.Next() {
		var category entity.Category
		var count int64
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug,
			&category.Description, &category.Color, &category.CreatedAt,
			&category.UpdatedAt, &count); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		result = append(result, repository.CategoryWithCount{
			Category:     &category,
			ArticleCount: count,
		})
	}
	return result, rows.Err()
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories
       (name, slug, description, color)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Description, category.Color,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `
UPDATE categories SET
       name        = $1,
       slug        = $2,
       description = $3,
       color       = $4,
       updated_at  = NOW()
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description, category.Color, category.ID,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *CategoryRepo) ArticleCount(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE category_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("ArticleCount: %w", err)
	}
	return count, nil
}
