package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронь не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotUpdatable         = "бронь в текущем статусе нельзя изменить"
	msgCapacityExceeded     = "размер компании не соответствует вместимости столика"
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

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), reservationID, &models.UpdateReservationRequest{
		UserID: userID,
		Guests: req.Guests,
		Phone:  req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id} - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidStateTransition):
			h.logger.Warn("PATCH /reservations/{id} - Not updatable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotUpdatable)

		case errors.Is(err, reservations.ErrCapacityExceeded):
			h.logger.Warn("PATCH /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
