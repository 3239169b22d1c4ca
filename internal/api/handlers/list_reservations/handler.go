package list_reservations

import (
	"errors"
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations/models"
)

const (
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

// Handle GET /api/v1/reservations?status=CONFIRMED
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListReservationsRequest{
		RequesterID: requesterID,
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations - Access denied: requester_id=%d", requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Retrieved %d reservations: requester_id=%d",
		len(result.Reservations), requesterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
