package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/requestid"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/service/authz"
	usersvc "backoffice-cms/internal/usecase/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates an HTTP handler for public self-registration.
// New accounts always start with the author role; privileged roles are
// granted afterwards by an administrator.
func RegisterHandler(svc *usersvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request"))
			return
		}

		u, err := svc.Register(r.Context(), usersvc.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			var ve *entity.ValidationError
			var ce *entity.ConflictError
			switch {
			case errors.As(err, &ve):
				respond.FieldError(w, http.StatusBadRequest, ve.Field, ve.Message)
			case errors.Is(err, usersvc.ErrWeakPassword):
				respond.FieldError(w, http.StatusBadRequest, "password", "password is too weak")
			case errors.As(err, &ce):
				respond.FieldError(w, http.StatusConflict, ce.Field, ce.Message)
			default:
				logger.Error("registration failed", slog.String("error", err.Error()))
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		logger.Info("account registered",
			slog.Int64("user_id", u.ID),
			slog.String("role", string(u.Role)))

		respond.JSON(w, http.StatusCreated, userInfo{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
}

// MeHandler returns the profile of the authenticated account.
func MeHandler(svc *usersvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}

		u, err := svc.Get(r.Context(), actor, actor.ID)
		if err != nil {
			var authzErr *authz.Error
			if errors.As(err, &authzErr) {
				RecordForbiddenAttempt(string(actor.Role), r.Method)
				respond.SafeError(w, http.StatusForbidden, err)
				return
			}
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		respond.JSON(w, http.StatusOK, meResponse{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Role:          string(u.Role),
			IsActive:      u.IsActive,
			EmailVerified: u.EmailVerified,
			LastLoginAt:   u.LastLoginAt,
			CreatedAt:     u.CreatedAt,
		})
	}
}

type meResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
