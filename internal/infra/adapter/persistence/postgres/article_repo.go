package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
)

type ArticleRepo struct {
	db           Querier
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

const articleColumns = `id, title, slug, summary, content, status, published_at, view_count, author_id, category_id, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
		&article.Content, &article.Status, &article.PublishedAt, &article.ViewCount,
		&article.AuthorID, &article.CategoryID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetWithRelations(ctx context.Context, id int64) (*repository.ArticleWithRelations, error) {
	const query = `
SELECT a.id, a.title, a.slug, a.summary, a.content, a.status, a.published_at,
       a.view_count, a.author_id, a.category_id, a.created_at, a.updated_at,
       u.name AS author_name, COALESCE(c.name, '') AS category_name
FROM articles a
INNER JOIN users u ON a.author_id = u.id
LEFT JOIN categories c ON a.category_id = c.id
WHERE a.id = $1
LIMIT 1`
	var article entity.Article
	var authorName, categoryName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
			&article.Content, &article.Status, &article.PublishedAt, &article.ViewCount,
			&article.AuthorID, &article.CategoryID, &article.CreatedAt, &article.UpdatedAt,
			&authorName, &categoryName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetWithRelations: %w", err)
	}
	return &repository.ArticleWithRelations{
		Article:      &article,
		AuthorName:   authorName,
		CategoryName: categoryName,
	}, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filters repository.ArticleFilters, offset, limit int) ([]repository.ArticleWithRelations, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT a.id, a.title, a.slug, a.summary, a.content, a.status, a.published_at,
       a.view_count, a.author_id, a.category_id, a.created_at, a.updated_at,
       u.name AS author_name, COALESCE(c.name, '') AS category_name
FROM articles a
INNER JOIN users u ON a.author_id = u.id
LEFT JOIN categories c ON a.category_id = c.id
%s
ORDER BY a.created_at DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithRelations, 0, limit)
	for rows.Next() {
		var article entity.Article
		var authorName, categoryName string
		if err := rows.Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
			&article.Content, &article.Status, &article.PublishedAt, &article.ViewCount,
			&article.AuthorID, &article.CategoryID, &article.CreatedAt, &article.UpdatedAt,
			&authorName, &categoryName); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithRelations{
			Article:      &article,
			AuthorName:   authorName,
			CategoryName: categoryName,
		})
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "")
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, slug, summary, content, status, published_at, author_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Slug, article.Summary, article.Content,
		string(article.Status), article.PublishedAt, article.AuthorID, article.CategoryID,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title        = $1,
       slug         = $2,
       summary      = $3,
       content      = $4,
       status       = $5,
       published_at = $6,
       category_id  = $7,
       updated_at   = NOW()
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Slug, article.Summary, article.Content,
		string(article.Status), article.PublishedAt, article.CategoryID, article.ID,
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

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

// IncrementViewCount bumps the counter without touching updated_at so reads
// never look like edits.
func (repo *ArticleRepo) IncrementViewCount(ctx context.Context, id int64) error {
	const query = `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("IncrementViewCount: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	const query = `
SELECT status, COUNT(*)
FROM articles
GROUP BY status
ORDER BY status`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.StatusCount, 0, len(entity.ValidStatuses))
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("CountByStatus: Scan: %w", err)
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}
