package notifyservice

// ReservationNotification полезная нагрузка уведомления о брони
type ReservationNotification struct {
	ReservationID int64  `json:"reservation_id"`
	UserID        int64  `json:"user_id"`
	UserEmail     string `json:"user_email,omitempty"`
	TableName     string `json:"table_name,omitempty"`
	Guests        int    `json:"guests"`
	StartTime     string `json:"start_time"` // ISO 8601
	EndTime       string `json:"end_time"`   // ISO 8601
}

// Event тип события уведомления
type Event string

const (
	EventConfirmed Event = "reservation.confirmed"
	EventUpdated   Event = "reservation.updated"
	EventCancelled Event = "reservation.cancelled"
)
