package article

import (
	"net/http"

	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, actor, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
