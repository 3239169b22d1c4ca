package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	reservationRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/reservation"
	"github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	userClient "github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
	"github.com/josephken/RMS-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с жизненным циклом броней
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	userClient      UserServiceClient
	notifier        NotificationDispatcher
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	userClient UserServiceClient,
	notifier NotificationDispatcher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		userClient:      userClient,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Владелец видит свою бронь, персонал - любую
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, requesterID)

	reservation, err := s.getReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if reservation.UserID != requesterID {
		if err := s.checkStaffAccess(ctx, requesterID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", requesterID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю броней пользователя
// Опционально фильтрует по статусу
// Пользователь видит только свою историю, персонал - любую
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID != req.RequesterID {
		if err := s.checkStaffAccess(ctx, req.RequesterID); err != nil {
			s.logger.Warn("GetUserReservations: access denied for user=%d to history of user=%d",
				req.RequesterID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	status, err := s.toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d",
		len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// List получает все брони ресторана с опциональным фильтром по статусу
// Доступно только персоналу
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching all reservations for user=%d, status=%v", req.RequesterID, req.Status)

	if err := s.checkStaffAccess(ctx, req.RequesterID); err != nil {
		s.logger.Warn("List: access denied for user=%d", req.RequesterID)
		return nil, err
	}

	status, err := s.toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("List: invalid status=%s", *req.Status)
		return nil, err
	}

	reservations, err := s.reservationRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Update изменяет телефон и/или размер компании для подтвержденной брони
// Только владелец, только для статуса CONFIRMED
// Новый размер компании должен попадать в тир вместимости текущего столика:
// смена тира означала бы пересадку и выполняется через отмену и новую бронь
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%d by user=%d", id, req.UserID)

	if req.Guests == nil && req.Phone == nil {
		s.logger.Warn("Update: empty update for reservation id=%d", id)
		return nil, fmt.Errorf("%w: at least one of guests, phone is required", ErrInvalidInput)
	}

	if req.Guests != nil && *req.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrInvalidInput)
	}

	if req.Phone != nil && *req.Phone == "" {
		return nil, fmt.Errorf("%w: phone must not be empty", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if reservation.UserID != req.UserID {
		s.logger.Warn("Update: access denied for user=%d to reservation id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	if !reservation.CanBeUpdated() {
		s.logger.Warn("Update: reservation id=%d cannot be updated, status=%s", id, reservation.Status)
		return nil, ErrInvalidStateTransition
	}

	// Проверяем, что новый размер компании остается в тире текущего столика
	if req.Guests != nil {
		table, err := s.tableRepo.GetByID(ctx, reservation.TableID)
		if err != nil {
			s.logger.Error("Update: failed to get table id=%d: %v", reservation.TableID, err)
			return nil, fmt.Errorf("%w: Update - failed to get table: %v", ErrInternal, err)
		}

		required, err := domain.RequiredCapacity(*req.Guests)
		if err != nil || required != table.Capacity {
			s.logger.Warn("Update: party of %d does not fit table id=%d (capacity=%d)",
				*req.Guests, table.ID, table.Capacity)
			return nil, ErrCapacityExceeded
		}
	}

	if err := s.reservationRepo.UpdateDetails(ctx, id, req.Guests, req.Phone); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.getReservation(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	s.notify(ctx, notifyservice.EventUpdated, updated)

	return models.FromDomainReservation(updated), nil
}

// MarkArrived отмечает прибытие гостей
// Доступно только персоналу, только переход CONFIRMED -> ARRIVED
func (s *Service) MarkArrived(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error) {
	s.logger.Info("MarkArrived: marking reservation id=%d as arrived by user=%d", id, requesterID)

	if err := s.checkStaffAccess(ctx, requesterID); err != nil {
		s.logger.Warn("MarkArrived: access denied for user=%d", requesterID)
		return nil, err
	}

	reservation, err := s.getReservation(ctx, id, "MarkArrived")
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeMarkedArrived() {
		s.logger.Warn("MarkArrived: reservation id=%d cannot be marked arrived, status=%s",
			id, reservation.Status)
		return nil, ErrInvalidStateTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusArrived); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("MarkArrived: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkArrived - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusArrived

	s.logger.Info("MarkArrived: successfully marked reservation id=%d as arrived", id)
	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронь
// Только владелец, только переход CONFIRMED -> CANCELLED
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, userID)

	reservation, err := s.getReservation(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return nil, ErrInvalidStateTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusCancelled

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	s.notify(ctx, notifyservice.EventCancelled, reservation)

	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронь без возможности восстановления
// Доступно только персоналу
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, requesterID)

	if err := s.checkStaffAccess(ctx, requesterID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", requesterID)
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// Вспомогательные методы

// getReservation получает бронь по ID с маппингом ошибок репозитория
func (s *Service) getReservation(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// checkStaffAccess проверяет, что пользователь является персоналом ресторана
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsStaff() {
		return ErrAccessDenied
	}

	return nil
}

// toStatusFilter валидирует опциональный строковый фильтр статуса
func (s *Service) toStatusFilter(status *string) (*domain.ReservationStatus, error) {
	if status == nil {
		return nil, nil
	}

	domainStatus, err := models.ToDomainReservationStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return &domainStatus, nil
}

// notify отправляет асинхронное уведомление об изменении брони
// Ошибка получения имени столика не блокирует отправку
func (s *Service) notify(ctx context.Context, event notifyservice.Event, r *domain.Reservation) {
	var tableName string
	if table, err := s.tableRepo.GetByID(ctx, r.TableID); err == nil {
		tableName = table.Name
	} else {
		s.logger.Warn("notify: failed to get table id=%d for notification: %v", r.TableID, err)
	}

	var email string
	if user, err := s.userClient.GetUser(ctx, r.UserID); err == nil {
		email = user.Email
	}

	s.notifier.Dispatch(event, &notifyservice.ReservationNotification{
		ReservationID: r.ID,
		UserID:        r.UserID,
		UserEmail:     email,
		TableName:     tableName,
		Guests:        r.Guests,
		StartTime:     r.StartTime.Format(time.RFC3339),
		EndTime:       r.EndTime.Format(time.RFC3339),
	})
}
