package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	r := &Reservation{
		StartTime: base,
		EndTime:   base.Add(ReservationDuration), // 12:00 - 14:00
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", base, base.Add(2 * time.Hour), true},
		{"contained interval", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"overlaps start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"overlaps end", base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"back-to-back before", base.Add(-2 * time.Hour), base, false},
		{"back-to-back after", base.Add(2 * time.Hour), base.Add(4 * time.Hour), false},
		{"disjoint before", base.Add(-4 * time.Hour), base.Add(-2 * time.Hour), false},
		{"disjoint after", base.Add(3 * time.Hour), base.Add(5 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_LifecyclePredicates(t *testing.T) {
	confirmed := &Reservation{Status: StatusConfirmed}
	assert.True(t, confirmed.IsActive())
	assert.True(t, confirmed.CanBeUpdated())
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeMarkedArrived())

	// ARRIVED и CANCELLED - терминальные статусы
	for _, status := range []ReservationStatus{StatusArrived, StatusCancelled} {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s", status)
		assert.False(t, r.CanBeUpdated(), "status %s", status)
		assert.False(t, r.CanBeCancelled(), "status %s", status)
		assert.False(t, r.CanBeMarkedArrived(), "status %s", status)
	}
}

func TestIsOnTheHour(t *testing.T) {
	assert.True(t, IsOnTheHour(time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsOnTheHour(time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)))
	assert.False(t, IsOnTheHour(time.Date(2025, 10, 15, 12, 0, 1, 0, time.UTC)))
	assert.False(t, IsOnTheHour(time.Date(2025, 10, 15, 12, 0, 0, 1, time.UTC)))
}

func TestFullDayTimes(t *testing.T) {
	times := FullDayTimes()

	assert.Len(t, times, 11) // 10:00 .. 20:00 включительно
	assert.Equal(t, "10:00", times[0].String())
	assert.Equal(t, "20:00", times[len(times)-1].String())
}
