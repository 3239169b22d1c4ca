package get_user_reservations

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
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус брони"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/reservations?status=CONFIRMED
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetUserReservationsRequest{
		UserID:      targetUserID,
		RequesterID: requesterID,
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/reservations - Access denied: user_id=%d, requester_id=%d",
				targetUserID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/reservations - Invalid status: user_id=%d", targetUserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed to get reservations: user_id=%d, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/reservations - Retrieved %d reservations: user_id=%d",
		len(result.Reservations), targetUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
