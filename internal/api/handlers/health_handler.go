package handlers

import (
	"context"
	"net/http"

	"github.com/client-portal/engine/internal/api/types"
	appErr "github.com/client-portal/engine/pkg/errors"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler { return &HealthHandler{store: store} }

// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.APIResponse
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ok"}})
}

// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.APIResponse
// @Failure      503  {object}  types.APIResponse
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			writeError(w, appErr.Wrap(err, appErr.CodeUnavailable, "store not ready"))
			return
		}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ready"}})
}
