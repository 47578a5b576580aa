package user

import (
	"net/http"

	"backoffice-cms/internal/common/pagination"
	userUC "backoffice-cms/internal/usecase/user"
)

// Register registers all user management HTTP handlers with the given mux.
// Routes assume the authentication middleware already ran; per-role
// authorization happens inside the use case.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET    /users", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /users/", GetHandler{svc})

	mux.Handle("POST   /users", CreateHandler{svc})
	mux.Handle("PUT    /users/", UpdateHandler{svc})
	mux.Handle("PATCH  /users/", AdminHandler{svc})
	mux.Handle("DELETE /users/", DeleteHandler{svc})
}
