package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"backoffice-cms/internal/domain/entity"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// constraintFields maps unique index names from the schema to the API field
// name reported in the conflict. Unknown constraints fall back to a
// best-effort guess from the constraint name.
var constraintFields = map[string]string{
	"articles_slug_key":   "slug",
	"users_email_key":     "email",
	"categories_name_key": "name",
	"categories_slug_key": "slug",
	"idx_articles_slug":   "slug",
	"idx_users_email":     "email",
	"idx_categories_name": "name",
	"idx_categories_slug": "slug",
}

// mapUniqueViolation converts a unique constraint violation into an
// *entity.ConflictError. Other errors pass through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	field, ok := constraintFields[pgErr.ConstraintName]
	if !ok {
		switch {
		case strings.Contains(pgErr.ConstraintName, "slug"):
			field = "slug"
		case strings.Contains(pgErr.ConstraintName, "email"):
			field = "email"
		case strings.Contains(pgErr.ConstraintName, "name"):
			field = "name"
		default:
			field = ""
		}
	}
	return &entity.ConflictError{Field: field, Message: field + " already exists"}
}
