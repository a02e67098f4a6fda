// Package health serves the liveness probe.
package health

import (
	"net/http"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
)

type healthResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
