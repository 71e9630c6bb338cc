package respond_b2b_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда B2B запрос не найден
	ErrRequestNotFound = errors.New("respond_b2b_request: request not found")

	// ErrNotAuthorized возвращается, когда действующий пользователь не имеет
	// нужного отношения к запросу (принимает не приглашенный, уходит не участник)
	ErrNotAuthorized = errors.New("respond_b2b_request: user is not authorized for this action")

	// ErrInvalidState возвращается, когда действие недопустимо для текущего
	// статуса запроса (например, accept для уже отклоненного)
	ErrInvalidState = errors.New("respond_b2b_request: action is not legal in the current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("respond_b2b_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("respond_b2b_request: internal error")
)
