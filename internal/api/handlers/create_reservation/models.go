package create_reservation

import (
	"fmt"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	createReservation "github.com/josephken/RMS-ReservationService/internal/usecase/create_reservation"
	"github.com/josephken/RMS-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID int64  `json:"tableId"`
	Phone   string `json:"phone"`
	Guests  int    `json:"guests"`
	Date    string `json:"date"`      // "2025-10-15"
	Time    string `json:"startTime"` // "10:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	TableID   int64  `json:"tableId"`
	Status    string `json:"status"`
	Phone     string `json:"phone"`
	Guests    int    `json:"guests"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID приходит из контекста аутентификации, не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	clock, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	start, err := clock.At(date)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	return &createReservation.Request{
		UserID:    userID,
		TableID:   r.TableID,
		Phone:     r.Phone,
		Guests:    r.Guests,
		StartTime: start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		TableID:   resp.TableID,
		Status:    resp.Status,
		Phone:     resp.Phone,
		Guests:    resp.Guests,
		Date:      resp.StartTime.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(domain.TimeFormat),
		EndTime:   resp.EndTime.Format(domain.TimeFormat),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
