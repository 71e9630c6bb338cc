package respond_b2b_request

import (
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	if req.ActingUserID <= 0 {
		return fmt.Errorf("%w: actingUserID must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseB2BAction(string(req.Action)); err != nil {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	return nil
}
