package get_available_times

import (
	"github.com/josephken/RMS-ReservationService/internal/domain"
	getAvailableTimes "github.com/josephken/RMS-ReservationService/internal/usecase/get_available_times"
)

// DaySlotsResponse доступные времена начала брони на одну дату
type DaySlotsResponse struct {
	Date  string   `json:"date"`  // "2025-10-15"
	Times []string `json:"times"` // ["10:00", "11:00", ...]
}

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Days []DaySlotsResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	out := &AvailableTimesResponse{
		Days: make([]DaySlotsResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		times := make([]string, 0, len(day.Times))
		for _, t := range day.Times {
			times = append(times, t.String())
		}
		out.Days = append(out.Days, DaySlotsResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Times: times,
		})
	}

	return out
}
