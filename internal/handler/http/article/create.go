package article

import (
	"encoding/json"
	"net/http"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req struct {
		Title      string `json:"title"`
		Slug       string `json:"slug"`
		Summary    string `json:"summary"`
		Content    string `json:"content"`
		Status     string `json:"status"`
		CategoryID *int64 `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), actor, artUC.CreateInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		Status:     entity.Status(req.Status),
		AuthorID:   actor.ID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(withoutRelations(created), true))
}
