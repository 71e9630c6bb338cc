package create_b2b_request

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SlotBooking, error)
}

// B2BRepository интерфейс репозитория B2B запросов
type B2BRepository interface {
	Create(ctx context.Context, req *domain.B2BRequest) (*domain.B2BRequest, error)
	GetActiveByBookingID(ctx context.Context, bookingID int64) (*domain.B2BRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
