package table

import "errors"

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table.repository: dining table not found")

	// ErrDuplicateName возвращается при нарушении уникальности имени столика
	ErrDuplicateName = errors.New("table.repository: dining table name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("table.repository: failed to scan row")
)
