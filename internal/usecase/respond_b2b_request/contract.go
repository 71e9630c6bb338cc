package respond_b2b_request

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// B2BRepository интерфейс репозитория B2B запросов
type B2BRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.B2BRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.B2BStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SlotBooking, error)
	SetPartner(ctx context.Context, id int64, partnerID *int64) error
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
