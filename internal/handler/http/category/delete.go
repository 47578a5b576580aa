package category

import (
	"net/http"

	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	catUC "backoffice-cms/internal/usecase/category"
)

type DeleteHandler struct{ Svc *catUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/categories/")
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
