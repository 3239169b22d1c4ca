package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/tables"
	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidTableID     = "некорректный ID столика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "столик не найден"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgDuplicateName      = "столик с таким именем уже существует"
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

// Handle PATCH /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tables/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = userID

	result, err := h.service.Update(r.Context(), tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id} - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("PATCH /tables/{id} - Access denied: table_id=%d, user_id=%d", tableID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tables.ErrDuplicateTableName):
			h.logger.Warn("PATCH /tables/{id} - Duplicate table name: table_id=%d", tableID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated successfully: table_id=%d, user_id=%d", tableID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
