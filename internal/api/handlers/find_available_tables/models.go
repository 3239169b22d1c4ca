package find_available_tables

import (
	"fmt"
	"strconv"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	findAvailableTables "github.com/josephken/RMS-ReservationService/internal/usecase/find_available_tables"
	"github.com/josephken/RMS-ReservationService/pkg/types"
)

// FindTablesQuery параметры запроса из query string
type FindTablesQuery struct {
	Date   string // "2025-10-15"
	Time   string // "10:00"
	Guests string
}

// ToUseCaseRequest парсит query параметры в модель use case
func (q *FindTablesQuery) ToUseCaseRequest() (*findAvailableTables.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	clock, err := types.NewTimeStringFromString(q.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	start, err := clock.At(date)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	guests, err := strconv.Atoi(q.Guests)
	if err != nil {
		return nil, fmt.Errorf("invalid guests: %w", err)
	}

	return &findAvailableTables.Request{
		StartTime: start,
		Guests:    guests,
	}, nil
}
