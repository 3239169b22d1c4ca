package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func sampleReservation() *domain.Reservation {
	start := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		UserID:    7,
		TableID:   5,
		Status:    domain.StatusConfirmed,
		Phone:     "+79990001122",
		Guests:    4,
		StartTime: start,
		EndTime:   start.Add(domain.ReservationDuration),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	res := sampleReservation()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO reservations`).
		WithArgs(res.UserID, res.TableID, res.Status, res.Phone, res.Guests, res.StartTime, res.EndTime).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	repo, mock := newMock(t)
	res := sampleReservation()

	// Нарушение exclusion constraint по пересекающемуся интервалу
	mock.ExpectQuery(`INSERT INTO reservations`).
		WillReturnError(&pq.Error{Code: "23P01"})

	_, err := repo.Create(context.Background(), res)
	assert.ErrorIs(t, err, ErrOverlappingReservation)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	start := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(reservationColumns).
		AddRow(int64(1), int64(7), int64(5), "CONFIRMED", "+79990001122", 4, start, start.Add(2*time.Hour), now, now)

	mock.ExpectQuery(`SELECT id, user_id, dining_table_id, status, phone, guests, start_time, end_time, created_at, updated_at FROM reservations WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.Equal(t, start, res.StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM reservations`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByUserID_StatusFilter(t *testing.T) {
	repo, mock := newMock(t)
	status := domain.StatusConfirmed

	mock.ExpectQuery(`SELECT .+ FROM reservations WHERE user_id = \$1 AND status = \$2 ORDER BY start_time DESC`).
		WithArgs(int64(7), status).
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	out, err := repo.GetByUserID(context.Background(), 7, &status)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsOverlapping(t *testing.T) {
	repo, mock := newMock(t)
	start := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	// Полуоткрытый интервал: start_time < end AND end_time > start
	mock.ExpectQuery(`SELECT id FROM reservations WHERE dining_table_id = \$1 AND status = \$2 AND start_time < \$3 AND end_time > \$4`).
		WithArgs(int64(5), domain.StatusConfirmed, end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	exists, err := repo.ExistsOverlapping(context.Background(), 5, start, end)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsOverlapping_NoRows(t *testing.T) {
	repo, mock := newMock(t)
	start := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectQuery(`SELECT id FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	exists, err := repo.ExistsOverlapping(context.Background(), 5, start, end)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE reservations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(domain.StatusArrived, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusArrived)
	assert.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE reservations`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM reservations WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM reservations`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
