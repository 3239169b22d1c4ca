package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	reservationRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/table"
	"github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	userClient "github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
)

// pgSerializationFailure код ошибки PostgreSQL при конфликте сериализуемых транзакций
const pgSerializationFailure = "40001"

// UseCase use case для создания брони столика
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	userClient      UserServiceClient
	notifier        NotificationDispatcher
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	userClient UserServiceClient,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		userClient:      userClient,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка пересечения и вставка выполняются в сериализуемой транзакции,
// чтобы закрыть гонку между конкурентными бронированиями одного столика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, table=%d, guests=%d, start=%s",
		req.UserID, req.TableID, req.Guests, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование пользователя
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем столик
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	start := req.StartTime
	end := start.Add(domain.ReservationDuration)

	// 5. Календарные правила: рабочие часы, lead time, окно бронирования
	if err := validateReservationTime(start, now); err != nil {
		uc.logger.Warn("CreateReservation: time validation failed: %v", err)
		return nil, err
	}

	// 6. Начало строго на целом часу
	if !domain.IsOnTheHour(start) {
		uc.logger.Warn("CreateReservation: start time not on the hour: %s", start.Format(domain.TimeFormat))
		return nil, ErrNotOnTheHour
	}

	// 7. Точное совпадение тира вместимости
	if err := validateCapacity(table, req.Guests); err != nil {
		uc.logger.Warn("CreateReservation: capacity validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 8. Проверка пересечения + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Проверяем пересечение с подтвержденными бронями (FOR UPDATE)
		overlapped, err := uc.reservationRepo.ExistsOverlapping(txCtx, table.ID, start, end)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}

		if overlapped {
			uc.logger.Warn("CreateReservation: table id=%d is occupied from %s to %s",
				table.ID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
			return ErrTableNotAvailable
		}

		// 8.2. Сохраняем бронь
		reservation := &domain.Reservation{
			UserID:    req.UserID,
			TableID:   table.ID,
			Status:    domain.StatusConfirmed,
			Phone:     req.Phone,
			Guests:    req.Guests,
			StartTime: start,
			EndTime:   end,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Конкурентная бронь успела первой: exclusion constraint БД
			// отклонил вставку уже после проверки пересечения
			if errors.Is(err, reservationRepo.ErrOverlappingReservation) {
				uc.logger.Warn("CreateReservation: table id=%d was booked concurrently", table.ID)
				return ErrTableNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Сериализуемая транзакция проиграла гонку и была отклонена на commit
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure {
			uc.logger.Warn("CreateReservation: serialization failure for table id=%d: %v", table.ID, err)
			return nil, ErrTableNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 9. Уведомление о подтверждении - fire-and-forget, ошибка доставки
	// не влияет на результат бронирования
	uc.notifier.Dispatch(notifyservice.EventConfirmed, &notifyservice.ReservationNotification{
		ReservationID: result.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		TableName:     table.Name,
		Guests:        result.Guests,
		StartTime:     result.StartTime.Format(time.RFC3339),
		EndTime:       result.EndTime.Format(time.RFC3339),
	})

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		TableID:   result.TableID,
		Status:    string(result.Status),
		Phone:     result.Phone,
		Guests:    result.Guests,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
