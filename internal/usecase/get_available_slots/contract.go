package get_available_slots

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByEventID(ctx context.Context, eventID int64) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
