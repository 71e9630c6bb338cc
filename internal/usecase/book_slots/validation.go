package book_slots

import (
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DJID <= 0 {
		return fmt.Errorf("%w: djID must be positive", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: slotIDs must not be empty", ErrInvalidInput)
	}

	if len(req.SlotIDs) > domain.MaxSlotsPerBooking {
		return fmt.Errorf("%w: at most %d slots per booking", ErrInvalidInput, domain.MaxSlotsPerBooking)
	}

	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot IDs must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id=%d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
