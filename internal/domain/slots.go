package domain

import (
	"time"

	"github.com/josephken/RMS-ReservationService/pkg/types"
)

// DaySlots holds the bookable start times for a single date.
// Derived data: recomputed per request, never persisted.
type DaySlots struct {
	Date  time.Time
	Times []types.TimeString
}

// IsEmpty returns true if no bookable time remains on the date
func (d *DaySlots) IsEmpty() bool {
	return len(d.Times) == 0
}

// Contains reports whether the given time is bookable on this date
func (d *DaySlots) Contains(t types.TimeString) bool {
	for _, ts := range d.Times {
		if ts == t {
			return true
		}
	}
	return false
}

// FullDayTimes returns the complete hourly sequence from OpeningHour through
// LastReservationHour inclusive. Shared by every full day in the advance window.
func FullDayTimes() []types.TimeString {
	times := make([]types.TimeString, 0, LastReservationHour-OpeningHour+1)
	for hour := OpeningHour; hour <= LastReservationHour; hour++ {
		times = append(times, types.NewTimeString(time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)))
	}
	return times
}
