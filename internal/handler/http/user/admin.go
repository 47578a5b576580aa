package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/service/authz"
	userUC "backoffice-cms/internal/usecase/user"
)

// AdminHandler serves the role and status sub-resources:
//
//	PATCH /users/{id}/role    {"role": "editor"}
//	PATCH /users/{id}/status  {"is_active": false}
type AdminHandler struct{ Svc *userUC.Service }

func (h AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/role"):
		h.changeRole(w, r, actor)
	case strings.HasSuffix(r.URL.Path, "/status"):
		h.setActive(w, r, actor)
	default:
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
	}
}

func (h AdminHandler) changeRole(w http.ResponseWriter, r *http.Request, actor authz.Actor) {
	id, err := pathutil.ExtractIDWithSuffix(r.URL.Path, "/users/", "/role")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.ChangeRole(r.Context(), actor, id, entity.Role(req.Role))
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}

func (h AdminHandler) setActive(w http.ResponseWriter, r *http.Request, actor authz.Actor) {
	id, err := pathutil.ExtractIDWithSuffix(r.URL.Path, "/users/", "/status")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.IsActive == nil {
		respond.FieldError(w, http.StatusBadRequest, "is_active", "is_active is required")
		return
	}

	updated, err := h.Svc.SetActive(r.Context(), actor, id, *req.IsActive)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
