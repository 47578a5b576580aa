package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/respond"
	"backoffice-cms/internal/observability/logging"
	"backoffice-cms/internal/repository"
	artUC "backoffice-cms/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

type listResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, actor, filters, params)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		writeError(w, r, actor, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		// Content is omitted from list responses to keep them light.
		dtos = append(dtos, toDTO(item, false))
	}

	logger.Info("Article list response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, listResponse{
		Data:       dtos,
		Pagination: result.Pagination,
	})
}

// parseFilters reads the optional list filters from the query string.
func parseFilters(r *http.Request) (repository.ArticleFilters, error) {
	var filters repository.ArticleFilters
	q := r.URL.Query()

	if statusStr := q.Get("status"); statusStr != "" {
		status := entity.Status(statusStr)
		if !entity.IsValidStatus(status) {
			return filters, errors.New("invalid query parameter: status must be one of draft, pending, published, archived")
		}
		filters.Status = &status
	}

	if catStr := q.Get("category_id"); catStr != "" {
		catID, err := strconv.ParseInt(catStr, 10, 64)
		if err != nil || catID < 1 {
			return filters, errors.New("invalid query parameter: category_id must be a positive integer")
		}
		filters.CategoryID = &catID
	}

	if authorStr := q.Get("author_id"); authorStr != "" {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil || authorID < 1 {
			return filters, errors.New("invalid query parameter: author_id must be a positive integer")
		}
		filters.AuthorID = &authorID
	}

	filters.Search = q.Get("search")

	return filters, nil
}
