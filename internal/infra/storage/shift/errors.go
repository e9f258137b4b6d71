package shift

import "errors"

var (
	// ErrVersionConflict возвращается, когда версия смены изменилась между
	// чтением и записью (конкурентная модификация, вызывающий повторяет попытку)
	ErrVersionConflict = errors.New("shift.repository: shift version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shift.repository: failed to scan row")
)
