package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	tableRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/table"
	userClient "github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
)

// Service сервис для администрирования столиков
// Все операции доступны только персоналу ресторана
type Service struct {
	tableRepo  TableRepository
	userClient UserServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса столиков
func NewService(tableRepo TableRepository, userClient UserServiceClient, logger Logger) *Service {
	return &Service{
		tableRepo:  tableRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// Create создает новый столик
// Имя должно быть уникальным, вместимость - положительной
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table name=%s, capacity=%d by user=%d",
		req.Name, req.Capacity, req.RequesterID)

	if err := s.checkStaffAccess(ctx, req.RequesterID); err != nil {
		s.logger.Warn("Create: access denied for user=%d", req.RequesterID)
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	status := domain.TableStatusOpen
	if req.Status != "" {
		parsed, err := models.ToDomainTableStatus(req.Status)
		if err != nil {
			s.logger.Warn("Create: invalid status=%s", req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = parsed
	}

	exists, err := s.tableRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("Create: failed to check name uniqueness: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: table name=%s already exists", req.Name)
		return nil, ErrDuplicateTableName
	}

	created, err := s.tableRepo.Create(ctx, &domain.DiningTable{
		Name:     req.Name,
		Floor:    req.Floor,
		Capacity: req.Capacity,
		Status:   status,
	})
	if err != nil {
		// Гонка между проверкой и вставкой закрывается unique-индексом
		if errors.Is(err, tableRepo.ErrDuplicateName) {
			s.logger.Warn("Create: table name=%s already exists", req.Name)
			return nil, ErrDuplicateTableName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d", created.ID)
	return models.FromDomainTable(created), nil
}

// GetByID получает столик по ID
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.TableResponse, error) {
	s.logger.Info("GetByID: fetching table id=%d for user=%d", id, requesterID)

	if err := s.checkStaffAccess(ctx, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d", requesterID)
		return nil, err
	}

	table, err := s.getTable(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainTable(table), nil
}

// List получает все столики ресторана
func (s *Service) List(ctx context.Context, requesterID int64) (*models.TableListResponse, error) {
	s.logger.Info("List: fetching all tables for user=%d", requesterID)

	if err := s.checkStaffAccess(ctx, requesterID); err != nil {
		s.logger.Warn("List: access denied for user=%d", requesterID)
		return nil, err
	}

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d tables", len(tables))
	return models.FromDomainTableList(tables), nil
}

// Update изменяет атрибуты столика
// При смене имени повторно проверяется уникальность
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d by user=%d", id, req.RequesterID)

	if err := s.checkStaffAccess(ctx, req.RequesterID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.RequesterID)
		return nil, err
	}

	if req.Name == nil && req.Floor == nil && req.Capacity == nil && req.Status == nil {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	table, err := s.getTable(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != table.Name {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}

		exists, err := s.tableRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			s.logger.Error("Update: failed to check name uniqueness: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Warn("Update: table name=%s already exists", *req.Name)
			return nil, ErrDuplicateTableName
		}

		table.Name = *req.Name
	}

	if req.Floor != nil {
		table.Floor = *req.Floor
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		table.Capacity = *req.Capacity
	}

	if req.Status != nil {
		status, err := models.ToDomainTableStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for table id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		table.Status = status
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		switch {
		case errors.Is(err, tableRepo.ErrTableNotFound):
			return nil, ErrTableNotFound
		case errors.Is(err, tableRepo.ErrDuplicateName):
			return nil, ErrDuplicateTableName
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.getTable(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated table id=%d", id)
	return models.FromDomainTable(updated), nil
}

// Delete удаляет столик
// Удаление блокируется, пока на столик есть подтвержденные брони
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting table id=%d by user=%d", id, requesterID)

	if err := s.checkStaffAccess(ctx, requesterID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", requesterID)
		return err
	}

	if _, err := s.getTable(ctx, id, "Delete"); err != nil {
		return err
	}

	hasReservations, err := s.tableRepo.HasActiveReservations(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check reservations for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if hasReservations {
		s.logger.Warn("Delete: table id=%d has confirmed reservations", id)
		return ErrTableHasReservations
	}

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted table id=%d", id)
	return nil
}

// Вспомогательные методы

// getTable получает столик по ID с маппингом ошибок репозитория
func (s *Service) getTable(ctx context.Context, id int64, op string) (*domain.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("%s: table id=%d not found", op, id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("%s: repository error for table id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return table, nil
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
