package get_b2b_request

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/service/b2b/models"
)

type B2BService interface {
	GetByID(ctx context.Context, id int64) (*models.B2BRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
