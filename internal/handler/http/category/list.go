package category

import (
	"net/http"

	"backoffice-cms/internal/handler/http/respond"
	catUC "backoffice-cms/internal/usecase/category"
)

type ListHandler struct{ Svc *catUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	cats, err := h.Svc.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	dtos := make([]DTO, 0, len(cats))
	for _, c := range cats {
		dtos = append(dtos, toDTO(c.Category, c.ArticleCount))
	}
	respond.JSON(w, http.StatusOK, dtos)
}
