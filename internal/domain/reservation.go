package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	// StatusConfirmed is the initial state of every reservation
	StatusConfirmed ReservationStatus = "CONFIRMED"

	// StatusArrived is terminal: the party was seated (staff action)
	StatusArrived ReservationStatus = "ARRIVED"

	// StatusCancelled is terminal: the owner cancelled the reservation
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation represents a table reservation
// EndTime is always StartTime + ReservationDuration
type Reservation struct {
	ID        int64
	UserID    int64
	TableID   int64
	Status    ReservationStatus
	Phone     string
	Guests    int
	StartTime time.Time
	EndTime   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still blocks its table.
// Only CONFIRMED reservations count toward overlap: arrival hands the slot
// back to the floor plan and cancellation releases it outright.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// CanBeUpdated returns true if guest count and phone may still change
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the owner may still cancel
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// CanBeMarkedArrived returns true if staff may mark the party as arrived
func (r *Reservation) CanBeMarkedArrived() bool {
	return r.Status == StatusConfirmed
}

// Overlaps reports whether the half-open interval [start, end) intersects
// this reservation's [StartTime, EndTime). Back-to-back intervals sharing
// an exact boundary do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}

// ValidReservationStatuses statuses accepted from the API
var ValidReservationStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusArrived,
	StatusCancelled,
}
