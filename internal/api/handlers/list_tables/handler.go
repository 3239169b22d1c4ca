package list_tables

import (
	"errors"
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/tables"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tables - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("GET /tables - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tables - Failed to list tables: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables - Retrieved %d tables: user_id=%d", len(result.Tables), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
