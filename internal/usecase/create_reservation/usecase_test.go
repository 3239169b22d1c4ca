package create_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	storagereservation "github.com/josephken/RMS-ReservationService/internal/infra/storage/reservation"
	storagetable "github.com/josephken/RMS-ReservationService/internal/infra/storage/table"
	"github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	"github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
)

// Моки зависимостей

type fakeReservationRepo struct {
	overlapping  bool
	overlapCalls int
	createErr    error
	created      *domain.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *res
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeReservationRepo) ExistsOverlapping(_ context.Context, tableID int64, start, end time.Time) (bool, error) {
	r.overlapCalls++
	return r.overlapping, nil
}

type fakeTableRepo struct {
	table *domain.DiningTable
	err   error
	calls int
}

func (r *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.DiningTable, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.table, nil
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (c *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.user, nil
}

type fakeNotifier struct {
	events []notifyservice.Event
}

func (n *fakeNotifier) Dispatch(event notifyservice.Event, _ *notifyservice.ReservationNotification) {
	n.events = append(n.events, event)
}

type fakeTxManager struct {
	calls int
	err   error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

// Тестовая сборка use case

type testEnv struct {
	uc              *UseCase
	reservationRepo *fakeReservationRepo
	tableRepo       *fakeTableRepo
	userClient      *fakeUserClient
	notifier        *fakeNotifier
	txManager       *fakeTxManager
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		reservationRepo: &fakeReservationRepo{},
		tableRepo: &fakeTableRepo{
			table: &domain.DiningTable{ID: 1, Name: "T1", Floor: "1", Capacity: 4, Status: domain.TableStatusOpen},
		},
		userClient: &fakeUserClient{
			user: &userservice.User{ID: 7, Name: "Guest", Email: "guest@example.com", Role: "customer", IsActive: true},
		},
		notifier:  &fakeNotifier{},
		txManager: &fakeTxManager{},
	}

	env.uc = NewUseCase(
		env.reservationRepo,
		env.tableRepo,
		env.userClient,
		env.notifier,
		env.txManager,
		&noopLogger{},
	)
	env.uc.timeProvider = &fakeTimeProvider{now: now}

	return env
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		TableID:   1,
		Phone:     "+79990001122",
		Guests:    4,
		StartTime: time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	env := newTestEnv(testNow)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, time.Date(2025, 10, 16, 14, 0, 0, 0, time.UTC), resp.EndTime)

	// Проверка пересечения и вставка внутри сериализуемой транзакции
	assert.Equal(t, 1, env.txManager.calls)
	assert.Equal(t, 1, env.reservationRepo.overlapCalls)

	// Отправлено уведомление о подтверждении
	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifyservice.EventConfirmed, env.notifier.events[0])
}

func TestExecute_TableOccupied(t *testing.T) {
	env := newTestEnv(testNow)
	env.reservationRepo.overlapping = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotAvailable)

	// Ничего не создано и не отправлено
	assert.Nil(t, env.reservationRepo.created)
	assert.Empty(t, env.notifier.events)
}

func TestExecute_ConcurrentBookingLosesRace(t *testing.T) {
	// Проверка пересечения прошла, но конкурентная бронь успела раньше:
	// exclusion constraint БД отклонил вставку
	env := newTestEnv(testNow)
	env.reservationRepo.createErr = storagereservation.ErrOverlappingReservation

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)

	assert.Empty(t, env.notifier.events)
}

func TestExecute_SerializationFailure(t *testing.T) {
	// Сериализуемая транзакция проиграла гонку на commit
	env := newTestEnv(testNow)
	env.txManager.err = fmt.Errorf("txmanager: failed to commit transaction: %w", &pq.Error{Code: "40001"})

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotAvailable)

	assert.Empty(t, env.notifier.events)
}

func TestExecute_AdjacentSlotsDoNotConflict(t *testing.T) {
	// Брони 12:00-14:00 и 14:00-16:00 на одном столике не пересекаются:
	// репозиторий вернет false для полуоткрытого интервала
	env := newTestEnv(testNow)

	req := validRequest()
	req.StartTime = time.Date(2025, 10, 16, 14, 0, 0, 0, time.UTC)

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 16, 16, 0, 0, 0, time.UTC), resp.EndTime)
}

func TestExecute_UserNotFound(t *testing.T) {
	env := newTestEnv(testNow)
	env.userClient.err = userservice.ErrUserNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, env.txManager.calls)
}

func TestExecute_TableNotFound(t *testing.T) {
	env := newTestEnv(testNow)
	env.tableRepo.table = nil
	env.tableRepo.err = storagetable.ErrTableNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_NotOnTheHour(t *testing.T) {
	env := newTestEnv(testNow)

	req := validRequest()
	req.StartTime = time.Date(2025, 10, 16, 12, 30, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotOnTheHour)
	assert.Equal(t, 0, env.txManager.calls)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	env := newTestEnv(testNow)

	tests := []struct {
		name string
		hour int
		ok   bool
	}{
		{"before opening", 9, false},
		{"opening hour", 10, true},
		{"last bookable hour", 20, true},
		{"after last hour", 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = time.Date(2025, 10, 16, tt.hour, 0, 0, 0, time.UTC)

			_, err := env.uc.Execute(context.Background(), req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrTimeNotAvailable)
			}
		})
	}
}

func TestExecute_LeadTime(t *testing.T) {
	// Сейчас 12:00, бронь на 12:00 того же дня нарушает 30-минутный запас
	env := newTestEnv(testNow)

	req := validRequest()
	req.StartTime = testNow

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeNotAvailable)

	// Бронь на 13:00 того же дня проходит
	req.StartTime = testNow.Add(time.Hour)
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_AdvanceWindow(t *testing.T) {
	env := newTestEnv(testNow)

	// Последний день окна доступен целиком
	req := validRequest()
	req.StartTime = time.Date(2025, 10, 29, 20, 0, 0, 0, time.UTC)
	_, err := env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// Следующий день уже за пределами окна
	req.StartTime = time.Date(2025, 10, 30, 10, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
}

func TestExecute_CapacityMismatch(t *testing.T) {
	env := newTestEnv(testNow)

	// Компания на 2 за столик на 4: тир не совпадает
	req := validRequest()
	req.Guests = 2

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_PartyTooLarge(t *testing.T) {
	env := newTestEnv(testNow)

	req := validRequest()
	req.Guests = 11

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 0, env.txManager.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv(testNow)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero table", func(r *Request) { r.TableID = 0 }},
		{"zero guests", func(r *Request) { r.Guests = 0 }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ValidationOrder(t *testing.T) {
	// Невалидное время суток важнее несовпадения тира:
	// запрос с обеими ошибками возвращает ошибку времени
	env := newTestEnv(testNow)

	req := validRequest()
	req.Guests = 2 // тир не совпадает
	req.StartTime = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
}
