package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlappingReservation возвращается, когда вставка нарушила
	// exclusion constraint по пересечению интервалов на одном столике
	ErrOverlappingReservation = errors.New("reservation.repository: overlapping reservation on this table")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
