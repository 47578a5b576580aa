package article

import (
	"errors"
	"net/http"
	"strings"

	"backoffice-cms/internal/handler/http/pathutil"
	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type DuplicateHandler struct{ Svc *artUC.Service }

func (h DuplicateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	if !strings.HasSuffix(r.URL.Path, "/duplicate") {
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	id, err := pathutil.ExtractIDWithSuffix(r.URL.Path, "/articles/", "/duplicate")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	copied, err := h.Svc.Duplicate(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(withoutRelations(copied), true))
}
