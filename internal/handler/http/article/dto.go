// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, creating, updating, deleting,
// duplicating and aggregating articles.
package article

import (
	"errors"
	"net/http"
	"time"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/auth"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
	artUC "backoffice-cms/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content,omitempty"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	ViewCount    int64      `json:"view_count"`
	AuthorID     int64      `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	CategoryID   *int64     `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toDTO(rel repository.ArticleWithRelations, includeContent bool) DTO {
	a := rel.Article
	out := DTO{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Summary:      a.Summary,
		Status:       string(a.Status),
		PublishedAt:  a.PublishedAt,
		ViewCount:    a.ViewCount,
		AuthorID:     a.AuthorID,
		AuthorName:   rel.AuthorName,
		CategoryID:   a.CategoryID,
		CategoryName: rel.CategoryName,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if includeContent {
		out.Content = a.Content
	}
	return out
}

// withoutRelations wraps a freshly written article whose author and
// category names were not loaded.
func withoutRelations(a *entity.Article) repository.ArticleWithRelations {
	return repository.ArticleWithRelations{Article: a}
}

// writeError maps use case errors onto HTTP status codes shared by every
// article handler.
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
	case errors.Is(err, artUC.ErrInvalidArticleID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrCategoryNotFound):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// requireActor pulls the authenticated actor out of the request context,
// answering 401 when the authentication middleware did not run.
func requireActor(w http.ResponseWriter, r *http.Request) (authz.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	return actor, ok
}
