package arrive_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotConfirmed         = "отметить прибытие можно только для подтвержденной брони"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/arrive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/arrive - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/arrive - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.MarkArrived(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/arrive - Reservation not found: reservation_id=%d",
				reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/arrive - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidStateTransition):
			h.logger.Warn("PATCH /reservations/{id}/arrive - Invalid state transition: reservation_id=%d",
				reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotConfirmed)

		default:
			h.logger.Error("PATCH /reservations/{id}/arrive - Failed to mark arrived: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/arrive - Reservation marked arrived: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
