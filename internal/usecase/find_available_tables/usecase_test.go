package find_available_tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

type fakeTableRepo struct {
	tables       []*domain.DiningTable
	calls        int
	lastCapacity int
	lastStart    time.Time
	lastEnd      time.Time
}

func (r *fakeTableRepo) FindAvailable(_ context.Context, capacity int, start, end time.Time) ([]*domain.DiningTable, error) {
	r.calls++
	r.lastCapacity = capacity
	r.lastStart = start
	r.lastEnd = end
	return r.tables, nil
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

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeTableRepo) *UseCase {
	uc := NewUseCase(repo, &noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeTableRepo{
		tables: []*domain.DiningTable{
			{ID: 1, Name: "T1", Floor: "1", Capacity: 4, Status: domain.TableStatusOpen},
			{ID: 2, Name: "T2", Floor: "2", Capacity: 4, Status: domain.TableStatusOpen},
		},
	}
	uc := newTestUseCase(repo)

	start := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{StartTime: start, Guests: 3})
	require.NoError(t, err)

	require.Len(t, resp.Tables, 2)
	assert.Equal(t, "T1", resp.Tables[0].Name)
	assert.Equal(t, 4, resp.Tables[0].Capacity)

	// Компания из 3 человек бронирует тир на 4, интервал [start, start+2h)
	assert.Equal(t, 4, repo.lastCapacity)
	assert.Equal(t, start, repo.lastStart)
	assert.Equal(t, start.Add(2*time.Hour), repo.lastEnd)
}

func TestExecute_NoTables(t *testing.T) {
	uc := newTestUseCase(&fakeTableRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime: time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Tables)
	assert.NotNil(t, resp.Tables)
}

func TestExecute_PartyTooLarge_NoQuery(t *testing.T) {
	// Компания из 11 человек отклоняется до запроса к хранилищу
	repo := &fakeTableRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartTime: time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC),
		Guests:    11,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_NotOnTheHour_BeforeCapacityCheck(t *testing.T) {
	// 10:30 отклоняется до проверки вместимости, даже для компании из 11
	repo := &fakeTableRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartTime: time.Date(2025, 10, 16, 10, 30, 0, 0, time.UTC),
		Guests:    11,
	})
	assert.ErrorIs(t, err, ErrNotOnTheHour)
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_InvalidGuests(t *testing.T) {
	repo := &fakeTableRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartTime: time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC),
		Guests:    0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_TimeOutsideCalendar(t *testing.T) {
	repo := &fakeTableRepo{}
	uc := newTestUseCase(repo)

	tests := []struct {
		name  string
		start time.Time
	}{
		{"before opening", time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)},
		{"after last hour", time.Date(2025, 10, 16, 21, 0, 0, 0, time.UTC)},
		{"in the past", time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)},
		{"beyond advance window", time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{StartTime: tt.start, Guests: 2})
			assert.ErrorIs(t, err, ErrTimeNotAvailable)
		})
	}

	assert.Equal(t, 0, repo.calls)
}
