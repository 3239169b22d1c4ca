package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	tableRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/table"
	"github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
	"github.com/josephken/RMS-ReservationService/pkg/ptr"
)

// Моки зависимостей

type fakeTableRepo struct {
	byID        map[int64]*domain.DiningTable
	nextID      int64
	reserved    map[int64]bool // столики с подтвержденными бронями
	deleted     []int64
	createError error
}

func newFakeTableRepo(tables ...*domain.DiningTable) *fakeTableRepo {
	repo := &fakeTableRepo{
		byID:     make(map[int64]*domain.DiningTable),
		reserved: make(map[int64]bool),
		nextID:   1,
	}
	for _, t := range tables {
		repo.byID[t.ID] = t
		if t.ID >= repo.nextID {
			repo.nextID = t.ID + 1
		}
	}
	return repo
}

func (r *fakeTableRepo) Create(_ context.Context, t *domain.DiningTable) (*domain.DiningTable, error) {
	if r.createError != nil {
		return nil, r.createError
	}
	created := *t
	created.ID = r.nextID
	r.nextID++
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.DiningTable, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTableRepo) List(_ context.Context) ([]*domain.DiningTable, error) {
	out := make([]*domain.DiningTable, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTableRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, t := range r.byID {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTableRepo) HasActiveReservations(_ context.Context, tableID int64) (bool, error) {
	return r.reserved[tableID], nil
}

func (r *fakeTableRepo) Update(_ context.Context, t *domain.DiningTable) error {
	if _, ok := r.byID[t.ID]; !ok {
		return tableRepo.ErrTableNotFound
	}
	copied := *t
	r.byID[t.ID] = &copied
	return nil
}

func (r *fakeTableRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return tableRepo.ErrTableNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (c *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

const (
	staffID    = int64(100)
	customerID = int64(7)
)

func newTestService(repo *fakeTableRepo) *Service {
	return NewService(
		repo,
		&fakeUserClient{users: map[int64]*userservice.User{
			staffID:    {ID: staffID, Role: "staff"},
			customerID: {ID: customerID, Role: "customer"},
		}},
		&noopLogger{},
	)
}

func existingTable() *domain.DiningTable {
	return &domain.DiningTable{ID: 1, Name: "T1", Floor: "1", Capacity: 4, Status: domain.TableStatusOpen}
}

// Create

func TestCreate_Success(t *testing.T) {
	svc := newTestService(newFakeTableRepo())

	resp, err := svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "T1",
		Floor:       "2",
		Capacity:    8,
	})
	require.NoError(t, err)

	assert.Equal(t, "T1", resp.Name)
	assert.Equal(t, 8, resp.Capacity)
	// Статус по умолчанию - OPEN
	assert.Equal(t, "OPEN", resp.Status)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := newTestService(newFakeTableRepo(existingTable()))

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "T1",
		Capacity:    4,
	})
	assert.ErrorIs(t, err, ErrDuplicateTableName)
}

func TestCreate_DuplicateNameRace(t *testing.T) {
	// Проверка имени прошла, но конкурентная вставка успела раньше:
	// уникальное ограничение БД все равно отдается как конфликт имени
	repo := newFakeTableRepo()
	repo.createError = tableRepo.ErrDuplicateName
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "T1",
		Capacity:    4,
	})
	assert.ErrorIs(t, err, ErrDuplicateTableName)
}

func TestCreate_NotStaff(t *testing.T) {
	svc := newTestService(newFakeTableRepo())

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: customerID,
		Name:        "T1",
		Capacity:    4,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newTestService(newFakeTableRepo())

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "",
		Capacity:    4,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "T1",
		Capacity:    0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateTableRequest{
		RequesterID: staffID,
		Name:        "T1",
		Capacity:    4,
		Status:      "BROKEN",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Update

func TestUpdate_Success(t *testing.T) {
	svc := newTestService(newFakeTableRepo(existingTable()))

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{
		RequesterID: staffID,
		Floor:       ptr.Ptr("3"),
		Status:      ptr.Ptr("CLOSED"),
	})
	require.NoError(t, err)

	assert.Equal(t, "3", resp.Floor)
	assert.Equal(t, "CLOSED", resp.Status)
	// Имя не менялось
	assert.Equal(t, "T1", resp.Name)
}

func TestUpdate_RenameToTakenName(t *testing.T) {
	other := &domain.DiningTable{ID: 2, Name: "T2", Floor: "1", Capacity: 2, Status: domain.TableStatusOpen}
	svc := newTestService(newFakeTableRepo(existingTable(), other))

	_, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{
		RequesterID: staffID,
		Name:        ptr.Ptr("T2"),
	})
	assert.ErrorIs(t, err, ErrDuplicateTableName)
}

func TestUpdate_SameNameAllowed(t *testing.T) {
	// Повторная отправка собственного имени не считается конфликтом
	svc := newTestService(newFakeTableRepo(existingTable()))

	_, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{
		RequesterID: staffID,
		Name:        ptr.Ptr("T1"),
		Floor:       ptr.Ptr("2"),
	})
	assert.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeTableRepo())

	_, err := svc.Update(context.Background(), 99, &models.UpdateTableRequest{
		RequesterID: staffID,
		Floor:       ptr.Ptr("2"),
	})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// Delete

func TestDelete_Success(t *testing.T) {
	repo := newFakeTableRepo(existingTable())
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 1, staffID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_BlockedByReservations(t *testing.T) {
	repo := newFakeTableRepo(existingTable())
	repo.reserved[1] = true
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 1, staffID)
	assert.ErrorIs(t, err, ErrTableHasReservations)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotStaff(t *testing.T) {
	repo := newFakeTableRepo(existingTable())
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 1, customerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// GetByID / List

func TestGetByID_StaffOnly(t *testing.T) {
	svc := newTestService(newFakeTableRepo(existingTable()))

	resp, err := svc.GetByID(context.Background(), 1, staffID)
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.Name)

	_, err = svc.GetByID(context.Background(), 1, customerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_StaffOnly(t *testing.T) {
	svc := newTestService(newFakeTableRepo(existingTable()))

	resp, err := svc.List(context.Background(), staffID)
	require.NoError(t, err)
	assert.Len(t, resp.Tables, 1)

	_, err = svc.List(context.Background(), customerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
