package create_reservation

import (
	"errors"
	"net/http"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
	createReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/create_reservation"
)

const (
	codeInvalidBody = "invalid_body"
	codeOverlap     = "overlap"
	codeBadClient   = "bad_client"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: client_id=%s, start=%s", req.ClientID, req.StartTime)
			handlers.RespondConflict(w, codeOverlap)

		case errors.Is(err, createReservation.ErrReferenceNotFound):
			h.logger.Warn("POST /reservations - Referenced entity not found: client_id=%s", req.ClientID)
			handlers.RespondBadRequest(w, codeBadClient)

		case errors.Is(err, createReservation.ErrInvalidInterval):
			h.logger.Warn("POST /reservations - Invalid interval: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, codeInvalidBody)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondBadRequest(w, codeInvalidBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, client_id=%s, status=%s",
		result.ID, result.ClientID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
