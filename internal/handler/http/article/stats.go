package article

import (
	"net/http"

	"backoffice-cms/internal/handler/http/respond"
	artUC "backoffice-cms/internal/usecase/article"
)

type StatsHandler struct{ Svc *artUC.Service }

type statsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	stats, err := h.Svc.GetStats(r.Context(), actor)
	if err != nil {
		writeError(w, r, actor, err)
		return
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for _, sc := range stats.ByStatus {
		byStatus[string(sc.Status)] = sc.Count
	}

	respond.JSON(w, http.StatusOK, statsResponse{
		Total:    stats.Total,
		ByStatus: byStatus,
	})
}
