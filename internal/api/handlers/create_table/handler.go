package create_table

import (
	"errors"
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/service/tables"
	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tables - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("POST /tables - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tables.ErrDuplicateTableName):
			h.logger.Warn("POST /tables - Duplicate table name: name=%s", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("POST /tables - Failed to create table: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: table_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
