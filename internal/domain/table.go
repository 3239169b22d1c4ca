package domain

import "time"

// TableStatus represents the operational status of a dining table
type TableStatus string

const (
	TableStatusOpen   TableStatus = "OPEN"
	TableStatusClosed TableStatus = "CLOSED"
)

// DiningTable represents a physical table on the restaurant floor
// Capacity is fixed per table; tables are never resized dynamically
type DiningTable struct {
	ID       int64
	Name     string // unique human-readable name
	Floor    string
	Capacity int
	Status   TableStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the table accepts reservations
func (t *DiningTable) IsOpen() bool {
	return t.Status == TableStatusOpen
}

// Fits returns true if the table's capacity exactly matches the bucketed
// requirement for the given party size. Booking is tier-exact: tables are
// not subdivided or combined.
func (t *DiningTable) Fits(guests int) (bool, error) {
	required, err := RequiredCapacity(guests)
	if err != nil {
		return false, err
	}
	return t.Capacity == required, nil
}

// ValidTableStatuses statuses accepted from the admin API
var ValidTableStatuses = []TableStatus{
	TableStatusOpen,
	TableStatusClosed,
}
