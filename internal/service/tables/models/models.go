package models

import (
	"errors"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе столика
	ErrInvalidStatus = errors.New("invalid table status")
)

// Request модели

// CreateTableRequest запрос на создание столика
type CreateTableRequest struct {
	RequesterID int64  `json:"-"`
	Name        string `json:"name"`
	Floor       string `json:"floor"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status,omitempty"`
}

// UpdateTableRequest запрос на изменение столика
// Обновляются только переданные поля
type UpdateTableRequest struct {
	RequesterID int64   `json:"-"`
	Name        *string `json:"name,omitempty"`
	Floor       *string `json:"floor,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Response модели

// TableResponse ответ с данными столика
type TableResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Floor     string    `json:"floor"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableListResponse ответ со списком столиков
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует domain модель в response
func FromDomainTable(t *domain.DiningTable) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		Name:      t.Name,
		Floor:     t.Floor,
		Capacity:  t.Capacity,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в response
func FromDomainTableList(list []*domain.DiningTable) *TableListResponse {
	resp := &TableListResponse{
		Tables: make([]TableResponse, 0, len(list)),
	}
	for _, t := range list {
		resp.Tables = append(resp.Tables, *FromDomainTable(t))
	}
	return resp
}

// ToDomainTableStatus валидирует и конвертирует строковый статус столика
func ToDomainTableStatus(s string) (domain.TableStatus, error) {
	status := domain.TableStatus(s)
	for _, valid := range domain.ValidTableStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
