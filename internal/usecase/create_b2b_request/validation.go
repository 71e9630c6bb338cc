package create_b2b_request

import (
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.PartnerID <= 0 {
		return fmt.Errorf("%w: partnerID must be positive", ErrInvalidInput)
	}

	// Стороны запроса всегда различны
	if req.RequesterID == req.PartnerID {
		return fmt.Errorf("%w: requester and partner must be different users", ErrInvalidInput)
	}

	if req.InitiatedBy != domain.InitiatedByRequester && req.InitiatedBy != domain.InitiatedByRequestee {
		return fmt.Errorf("%w: unknown initiator role %q", ErrInvalidInput, req.InitiatedBy)
	}

	return nil
}
