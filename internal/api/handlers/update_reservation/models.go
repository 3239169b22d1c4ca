package update_reservation

// UpdateReservationRequest HTTP request model
// Обновляются только переданные поля
type UpdateReservationRequest struct {
	Guests *int    `json:"guests,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}
