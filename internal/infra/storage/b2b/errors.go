package b2b

import "errors"

var (
	// ErrRequestNotFound возвращается, когда B2B запрос не найден
	ErrRequestNotFound = errors.New("b2b.repository: request not found")

	// ErrStatusConflict возвращается, когда условный UPDATE статуса не
	// затронул ни одной строки - статус уже изменила другая транзакция
	ErrStatusConflict = errors.New("b2b.repository: request status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("b2b.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("b2b.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("b2b.repository: failed to scan row")
)
