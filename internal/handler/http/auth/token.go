package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"backoffice-cms/internal/handler/http/requestid"
	"backoffice-cms/internal/handler/http/respond"
	usersvc "backoffice-cms/internal/usecase/user"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userInfo `json:"user"`
}

type userInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginHandler creates an HTTP handler that authenticates users and issues
// JWT tokens. Attempts are throttled per client IP before credentials are
// checked so that brute forcing burns the limiter, not bcrypt.
func LoginHandler(svc *usersvc.Service, secret []byte, expiry time.Duration, limiter *LoginLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		logger.Info("authentication attempt started")

		if limiter != nil && !limiter.Allow(ClientIP(r)) {
			logger.Warn("authentication throttled",
				slog.String("client_ip", ClientIP(r)))
			RecordLoginThrottled()
			w.Header().Set("Retry-After", "60")
			respond.Error(w, http.StatusTooManyRequests, errors.New("too many login attempts"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request"))
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			status := http.StatusUnauthorized
			reason := "invalid_credentials"
			if errors.Is(err, usersvc.ErrAccountDisabled) {
				status = http.StatusForbidden
				reason = "account_disabled"
			}
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			respond.SafeError(w, status, err)
			return
		}

		role := string(u.Role)

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   strconv.FormatInt(u.ID, 10),
			"email": u.Email,
			"role":  role,
			"exp":   time.Now().Add(expiry).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(role, "failure")
			RecordAuthDuration(role, time.Since(start).Seconds())
			respond.Error(w, http.StatusInternalServerError, errors.New("token generation failed"))
			return
		}

		logger.Info("authentication successful",
			slog.Int64("user_id", u.ID),
			slog.String("role", role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest(role, "success")
		RecordAuthDuration(role, time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, loginResponse{
			Token: signed,
			User: userInfo{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
				Role:  role,
			},
		})
	}
}
