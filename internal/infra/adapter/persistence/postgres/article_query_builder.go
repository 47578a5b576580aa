package postgres

import (
	"fmt"
	"strings"

	"backoffice-cms/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// The builder is shared between COUNT and SELECT queries to eliminate
// duplication. It uses PostgreSQL-specific features like ILIKE and numbered
// placeholders ($1, $2, etc.).
type ArticleQueryBuilder struct{}

func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for the given
// filters. Returns an empty string when no filter is set. Column names are
// prefixed with tableAlias when one is provided.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleFilters, tableAlias string) (clause string, args []any) {
	col := func(name string) string {
		if tableAlias != "" {
			return tableAlias + "." + name
		}
		return name
	}

	var conditions []string
	paramIndex := 1

	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
		args = append(args, string(*filters.Status))
		paramIndex++
	}
	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("category_id"), paramIndex))
		args = append(args, *filters.CategoryID)
		paramIndex++
	}
	if filters.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("author_id"), paramIndex))
		args = append(args, *filters.AuthorID)
		paramIndex++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d)",
			col("title"), paramIndex, col("summary"), paramIndex, col("content"), paramIndex))
		args = append(args, escapeILIKE(filters.Search))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeILIKE escapes LIKE metacharacters in the user-supplied keyword and
// wraps it for substring matching.
func escapeILIKE(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(keyword) + "%"
}
