package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"

	"github.com/golang-jwt/jwt/v5"
)

// Authz is an authentication middleware that requires a valid JWT for all
// HTTP methods on protected endpoints.
//
// Authorization Logic:
// 1. Check if the endpoint is public (health checks, metrics, login, register)
//   - If public: Allow access without JWT validation
//
// 2. If protected: Require valid JWT token for ALL methods (GET, POST, PUT, DELETE, etc.)
//   - Extract and validate JWT from Authorization header
//   - Load the account from storage so role and active-flag changes take
//     effect immediately, without waiting for token expiry
//   - Add the actor to the request context
//
// Fine-grained role checks happen in the use cases; the middleware only
// establishes WHO is calling.
func Authz(secret []byte, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Step 1: Check if endpoint is public
			// Public endpoints are accessible without authentication
			if IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Step 2: Protected endpoint - require JWT for ALL methods
			userID, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}

			u, err := users.Get(r.Context(), userID)
			if err != nil {
				respond.SafeError(w, http.StatusInternalServerError, err)
				return
			}
			if u == nil {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: unknown account"))
				return
			}

			actor := authz.Actor{ID: u.ID, Role: u.Role, IsActive: u.IsActive}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func validateJWT(authorization string, secret []byte) (int64, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return 0, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authorization, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return 0, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("invalid sub claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid sub claim")
	}
	return userID, nil
}
