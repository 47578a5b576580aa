package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title      *string `json:"title"`
		Slug       *string `json:"slug"`
		Summary    *string `json:"summary"`
		Content    *string `json:"content"`
		Status     *string `json:"status"`
		CategoryID *int64  `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var statusPtr *entity.Status
	if req.Status != nil {
		status := entity.Status(*req.Status)
		if !entity.IsValidStatus(status) {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("status must be one of draft, pending, published, archived"))
			return
		}
		statusPtr = &status
	}

	updated, err := h.Svc.Update(r.Context(), actor, artUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		Status:     statusPtr,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(withoutRelations(updated), true))
}
