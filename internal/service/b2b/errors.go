package b2b

import "errors"

var (
	// ErrRequestNotFound возвращается, когда B2B запрос не найден
	ErrRequestNotFound = errors.New("b2b request not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("b2b service: internal error")
)
