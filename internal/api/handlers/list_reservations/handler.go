package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
	"github.com/Elmamis69/jmares-reservas/internal/service/reservations"
	"github.com/Elmamis69/jmares-reservas/internal/service/reservations/models"
)

const (
	codeInvalidBody = "invalid_body"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?start=...&end=...
//
// start and end are optional RFC3339 timestamps; when present they select
// every reservation whose interval intersects [start, end).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	query := r.URL.Query()
	if raw := query.Get("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid start parameter: %v", err)
			handlers.RespondBadRequest(w, codeInvalidBody)
			return
		}
		req.Start = &start
	}
	if raw := query.Get("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid end parameter: %v", err)
			handlers.RespondBadRequest(w, codeInvalidBody)
			return
		}
		req.End = &end
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidRange):
			h.logger.Warn("GET /reservations - Invalid range: %v", err)
			handlers.RespondBadRequest(w, codeInvalidBody)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
