package get_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/tables"
)

const (
	msgInvalidTableID = "некорректный ID столика"
	msgNotFound       = "столик не найден"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tables/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), tableID, userID)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("GET /tables/{id} - Access denied: table_id=%d, user_id=%d", tableID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tables/{id} - Failed to get table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id} - Table retrieved successfully: table_id=%d, user_id=%d", tableID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
