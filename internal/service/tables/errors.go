package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("dining table not found")

	// ErrDuplicateTableName возвращается, когда имя столика уже занято
	ErrDuplicateTableName = errors.New("dining table name already exists")

	// ErrTableHasReservations возвращается при попытке удалить столик,
	// на который есть подтвержденные брони
	ErrTableHasReservations = errors.New("dining table has confirmed reservations")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
