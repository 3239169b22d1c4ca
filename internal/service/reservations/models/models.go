package models

import (
	"errors"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос на получение броней пользователя
type GetUserReservationsRequest struct {
	UserID      int64
	RequesterID int64
	Status      *string
}

// ListReservationsRequest запрос на получение всех броней (персонал)
type ListReservationsRequest struct {
	RequesterID int64
	Status      *string
}

// UpdateReservationRequest запрос на изменение деталей брони
// Обновляются только переданные поля
type UpdateReservationRequest struct {
	UserID int64   `json:"userId"`
	Guests *int    `json:"guests,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TableID   int64     `json:"tableId"`
	Status    string    `json:"status"`
	Phone     string    `json:"phone"`
	Guests    int       `json:"guests"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		TableID:   r.TableID,
		Status:    string(r.Status),
		Phone:     r.Phone,
		Guests:    r.Guests,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

// ToDomainReservationStatus валидирует и конвертирует строковый статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	for _, valid := range domain.ValidReservationStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
