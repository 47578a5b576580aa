// Package user provides HTTP handlers for account management endpoints.
package user

import (
	"errors"
	"net/http"
	"time"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/auth"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/service/authz"
	userUC "backoffice-cms/internal/usecase/user"
)

// DTO represents the JSON structure for user data transfer. The password
// hash never leaves the persistence layer boundary.
type DTO struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// writeError maps use case errors onto HTTP status codes shared by every
// user handler.
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
	case errors.Is(err, userUC.ErrInvalidUserID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, userUC.ErrSelfDemotion):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, userUC.ErrWeakPassword):
		respond.FieldError(w, http.StatusBadRequest, "password", "password is too weak")
	case errors.Is(err, userUC.ErrUserNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
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
