package delete_table

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
	msgInvalidTableID      = "некорректный ID столика"
	msgNotFound            = "столик не найден"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
	msgTableHasReservation = "нельзя удалить столик с подтвержденными бронями"
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

// Handle DELETE /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tables/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), tableID, userID); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("DELETE /tables/{id} - Access denied: table_id=%d, user_id=%d", tableID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tables.ErrTableHasReservations):
			h.logger.Warn("DELETE /tables/{id} - Table has confirmed reservations: table_id=%d", tableID)
			handlers.RespondError(w, http.StatusConflict, msgTableHasReservation)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: table_id=%d, user_id=%d", tableID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
