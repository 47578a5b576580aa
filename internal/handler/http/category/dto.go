// Package category provides HTTP handlers for category management endpoints.
package category

import (
	"errors"
	"net/http"
	"time"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/auth"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/service/authz"
	catUC "backoffice-cms/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Color        string    `json:"color"`
	ArticleCount int64     `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDTO(c *entity.Category, articleCount int64) DTO {
	return DTO{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Color:        c.Color,
		ArticleCount: articleCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// writeError maps use case errors onto HTTP status codes shared by every
// category handler.
func writeError(w http.ResponseWriter, r *http.Request, actor authz.Actor, err error) {
	var ve *entity.ValidationError
	var ce *entity.ConflictError
	var authzErr *authz.Error
	switch {
	case errors.As(err, &ve):
		respond.FieldError(w, http.StatusBadRequest, ve.Field, ve.Message)
	case errors.As(err, &ce):
		respond.FieldError(w, http.StatusConflict, ce.Field, ce.Message)
	case errors.As(err, &authzErr):
		auth.RecordForbiddenAttempt(string(actor.Role), r.Method)
		respond.SafeError(w, http.StatusForbidden, err)
	case errors.Is(err, catUC.ErrInvalidCategoryID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, catUC.ErrCategoryInUse):
		respond.SafeError(w, http.StatusConflict, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

func requireActor(w http.ResponseWriter, r *http.Request) (authz.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	return actor, ok
}
