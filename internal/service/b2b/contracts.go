package b2b

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// B2BRepository интерфейс репозитория B2B запросов
type B2BRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.B2BRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
