package user

import (
	"net/http"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/handler/http/respond"
	userUC "backoffice-cms/internal/usecase/user"
)

type ListHandler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
}

type listResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), actor, params)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, u := range result.Data {
		dtos = append(dtos, toDTO(u))
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Data:       dtos,
		Pagination: result.Pagination,
	})
}
