package get_available_slots

import (
	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	"github.com/vlkhvnn/DJ-BookingService/pkg/types"
)

// Request модель запроса на получение слотов события
type Request struct {
	EventID int64
}

// Slot один слот события с признаком бронируемости
type Slot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    domain.SlotStatus
	Bookable  bool // available И событие опубликовано
}

// Response модель ответа со слотами события
type Response struct {
	EventID     int64
	EventStatus domain.EventStatus
	Slots       []Slot
}
