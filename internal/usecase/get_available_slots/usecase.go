package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/event"
)

// UseCase use case получения слотов события с признаком бронируемости.
// Чистое чтение без побочных эффектов.
type UseCase struct {
	eventRepo EventRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: event=%d", req.EventID)

	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("GetAvailableSlots: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %w", ErrInternal, err)
	}

	slots, err := uc.slotRepo.GetByEventID(ctx, req.EventID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %w", ErrInternal, err)
	}

	resp := &Response{
		EventID:     event.ID,
		EventStatus: event.Status,
		Slots:       make([]Slot, len(slots)),
	}

	for i, s := range slots {
		resp.Slots[i] = Slot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    s.Status,
			Bookable:  s.IsBookable(),
		}
	}

	uc.logger.Info("GetAvailableSlots: event id=%d has %d slots", req.EventID, len(slots))
	return resp, nil
}
