package update_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
	updateReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/update_reservation"
)

const (
	codeInvalidBody       = "invalid_body"
	codeOverlap           = "overlap"
	codeBadClient         = "bad_client"
	codeNotFound          = "not_found"
	codeInvalidTransition = "invalid_transition"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, codeInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, codeNotFound)

		case errors.Is(err, updateReservation.ErrSlotConflict):
			h.logger.Warn("PUT /reservations/{id} - Slot conflict: reservation_id=%s", id)
			handlers.RespondConflict(w, codeOverlap)

		case errors.Is(err, updateReservation.ErrInvalidTransition):
			h.logger.Warn("PUT /reservations/{id} - Invalid status transition: reservation_id=%s", id)
			handlers.RespondBadRequest(w, codeInvalidTransition)

		case errors.Is(err, updateReservation.ErrReferenceNotFound):
			h.logger.Warn("PUT /reservations/{id} - Referenced entity not found: reservation_id=%s", id)
			handlers.RespondBadRequest(w, codeBadClient)

		case errors.Is(err, updateReservation.ErrInvalidInterval):
			h.logger.Warn("PUT /reservations/{id} - Invalid interval: reservation_id=%s", id)
			handlers.RespondBadRequest(w, codeInvalidBody)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, codeInvalidBody)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
