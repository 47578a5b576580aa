package postgres_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/infra/adapter/persistence/postgres"
	"backoffice-cms/internal/repository"
)

func TestBuildWhereClause(t *testing.T) {
	status := entity.StatusPublished
	categoryID := int64(2)
	authorID := int64(7)

	tests := []struct {
		name       string
		filters    repository.ArticleFilters
		alias      string
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "no filters",
			filters:    repository.ArticleFilters{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "status only",
			filters:    repository.ArticleFilters{Status: &status},
			wantClause: "WHERE status = $1",
			wantArgs:   []any{"published"},
		},
		{
			name:       "status with alias",
			filters:    repository.ArticleFilters{Status: &status},
			alias:      "a",
			wantClause: "WHERE a.status = $1",
			wantArgs:   []any{"published"},
		},
		{
			name: "all filters numbered in order",
			filters: repository.ArticleFilters{
				Status:     &status,
				CategoryID: &categoryID,
				AuthorID:   &authorID,
				Search:     "go",
			},
			wantClause: "WHERE status = $1 AND category_id = $2 AND author_id = $3 AND (title ILIKE $4 OR summary ILIKE $4 OR content ILIKE $4)",
			wantArgs:   []any{"published", int64(2), int64(7), "%go%"},
		},
		{
			name:       "search escapes metacharacters",
			filters:    repository.ArticleFilters{Search: `100%_real\deal`},
			wantClause: "WHERE (title ILIKE $1 OR summary ILIKE $1 OR content ILIKE $1)",
			wantArgs:   []any{`%100\%\_real\\deal%`},
		},
	}

	qb := postgres.NewArticleQueryBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.filters, tt.alias)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
