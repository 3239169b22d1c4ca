package find_available_tables

import (
	"errors"
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
	findAvailableTables "github.com/josephken/RMS-ReservationService/internal/usecase/find_available_tables"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидаются date, time, guests"
	msgNotOnTheHour     = "бронь может начинаться только в начале часа"
	msgTimeNotAvailable = "выбранное время недоступно для бронирования"
	msgCapacityExceeded = "размер компании превышает вместимость самого большого столика"
)

type Handler struct {
	useCase FindAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/availability?date=YYYY-MM-DD&time=HH:MM&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := FindTablesQuery{
		Date:   r.URL.Query().Get("date"),
		Time:   r.URL.Query().Get("time"),
		Guests: r.URL.Query().Get("guests"),
	}

	useCaseReq, err := query.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /tables/availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /tables/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, findAvailableTables.ErrNotOnTheHour):
			h.logger.Warn("GET /tables/availability - Time not on the hour: time=%s", query.Time)
			handlers.RespondBadRequest(w, msgNotOnTheHour)

		case errors.Is(err, findAvailableTables.ErrTimeNotAvailable):
			h.logger.Warn("GET /tables/availability - Time not available: date=%s, time=%s", query.Date, query.Time)
			handlers.RespondBadRequest(w, msgTimeNotAvailable)

		case errors.Is(err, findAvailableTables.ErrCapacityExceeded):
			h.logger.Warn("GET /tables/availability - Capacity exceeded: guests=%s", query.Guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		default:
			h.logger.Error("GET /tables/availability - Failed to find tables: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/availability - Found %d tables: date=%s, time=%s, guests=%s",
		len(result.Tables), query.Date, query.Time, query.Guests)
	handlers.RespondJSON(w, http.StatusOK, result)
}
