package get_available_times

import (
	"net/http"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/available-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/available-times - Failed to generate slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/available-times - Generated %d days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
