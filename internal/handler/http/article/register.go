package article

import (
	"log/slog"
	"net/http"

	"backoffice-cms/internal/common/pagination"
	artUC "backoffice-cms/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Routes assume the authentication middleware already ran; per-role
// authorization happens inside the use case.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/stats", StatsHandler{svc})
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("POST   /articles/", DuplicateHandler{svc})
	mux.Handle("PUT    /articles/", UpdateHandler{svc})
	mux.Handle("DELETE /articles/", DeleteHandler{svc})
}
