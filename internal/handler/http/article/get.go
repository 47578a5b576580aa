package article

import (
	"net/http"

	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	rel, err := h.Svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*rel, true))
}
