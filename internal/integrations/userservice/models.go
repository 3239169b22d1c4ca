package userservice

// User модель пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // customer | staff | admin
	IsActive bool   `json:"is_active"`
}

// IsStaff возвращает true для персонала ресторана
func (u *User) IsStaff() bool {
	return u.Role == "staff" || u.Role == "admin"
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
