package create_reservation

import (
	"errors"
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	createReservation "github.com/josephken/RMS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgTableNotFound      = "столик не найден"
	msgTimeNotAvailable   = "выбранное время недоступно для бронирования"
	msgNotOnTheHour       = "бронь может начинаться только в начале часа"
	msgCapacityExceeded   = "размер компании не соответствует вместимости столика"
	msgTableNotAvailable  = "столик уже занят на выбранное время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTimeNotAvailable):
			h.logger.Warn("POST /reservations - Time not available: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTimeNotAvailable)

		case errors.Is(err, createReservation.ErrNotOnTheHour):
			h.logger.Warn("POST /reservations - Time not on the hour: user_id=%d, time=%s", userID, req.Time)
			handlers.RespondBadRequest(w, msgNotOnTheHour)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: user_id=%d, table_id=%d, guests=%d",
				userID, req.TableID, req.Guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrTableNotAvailable):
			h.logger.Warn("POST /reservations - Table not available: user_id=%d, table_id=%d, date=%s, time=%s",
				userID, req.TableID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, table_id=%d",
		result.ID, userID, req.TableID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
