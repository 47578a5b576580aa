package category

import (
	"net/http"

	catUC "backoffice-cms/internal/usecase/category"
)

// Register registers all category-related HTTP handlers with the given mux.
// Routes assume the authentication middleware already ran; per-role
// authorization happens inside the use case.
func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET    /categories", ListHandler{svc})
	mux.Handle("GET    /categories/", GetHandler{svc})

	mux.Handle("POST   /categories", CreateHandler{svc})
	mux.Handle("PUT    /categories/", UpdateHandler{svc})
	mux.Handle("DELETE /categories/", DeleteHandler{svc})
}
