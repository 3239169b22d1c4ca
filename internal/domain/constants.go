package domain

import "time"

// Business hours and reservation rules
const (
	// OpeningHour is the first bookable hour of the day (10:00)
	OpeningHour = 10

	// LastReservationHour is the last bookable start hour of the day (20:00)
	LastReservationHour = 20

	// ReservationDurationHours is the fixed length of every reservation
	ReservationDurationHours = 2

	// MinNoticeMinutes is the minimum lead time between "now" and a bookable start
	MinNoticeMinutes = 30

	// AdvanceWindowWeeks is how far into the future a reservation may be placed
	AdvanceWindowWeeks = 2
)

// ReservationDuration fixed reservation length as a time.Duration
const ReservationDuration = ReservationDurationHours * time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OpeningTimeOn returns the opening instant for the given date
func OpeningTimeOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, date.Location())
}

// LastReservationTimeOn returns the last bookable start instant for the given date
func LastReservationTimeOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), LastReservationHour, 0, 0, 0, date.Location())
}

// IsOnTheHour reports whether t is exactly on the hour
// (zero minutes, seconds and sub-second units)
func IsOnTheHour(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
