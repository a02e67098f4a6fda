package create_client

import (
	"errors"
	"net/http"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
	"github.com/Elmamis69/jmares-reservas/internal/service/clients"
	"github.com/Elmamis69/jmares-reservas/internal/service/clients/models"
)

const (
	codeInvalidBody = "invalid_body"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, codeInvalidBody)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
