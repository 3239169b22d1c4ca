package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStateTransition возвращается при недопустимом переходе статуса
	// Статусы ARRIVED и CANCELLED терминальные
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")

	// ErrCapacityExceeded возвращается, когда новый размер компании
	// не соответствует тиру вместимости занятого столика
	ErrCapacityExceeded = errors.New("party size does not fit the reserved table")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
