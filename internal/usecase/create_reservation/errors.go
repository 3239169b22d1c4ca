package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("create_reservation: dining table not found")

	// ErrTimeNotAvailable возвращается, когда запрошенный интервал вне рабочих
	// часов, нарушает lead time или окно предварительного бронирования
	ErrTimeNotAvailable = errors.New("create_reservation: requested time is not available")

	// ErrNotOnTheHour возвращается, когда время начала не является целым часом
	ErrNotOnTheHour = errors.New("create_reservation: reservations must start on the hour")

	// ErrCapacityExceeded возвращается, когда размер компании превышает максимум
	// или вместимость столика не совпадает с требуемым тиром
	ErrCapacityExceeded = errors.New("create_reservation: table capacity does not fit the party")

	// ErrTableNotAvailable возвращается, когда столик занят пересекающейся
	// подтвержденной бронью
	ErrTableNotAvailable = errors.New("create_reservation: table is not available at the requested time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
