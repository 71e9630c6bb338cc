package create_b2b_request

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_b2b_request: booking not found")

	// ErrDuplicateActiveRequest возвращается, когда для бронирования уже
	// есть pending или accepted запрос (declined и left не блокируют)
	ErrDuplicateActiveRequest = errors.New("create_b2b_request: booking already has an active request")

	// ErrNotAuthorized возвращается, когда инициатор не соответствует
	// заявленной роли относительно бронирования
	ErrNotAuthorized = errors.New("create_b2b_request: initiator is not authorized for this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_b2b_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_b2b_request: internal error")
)
