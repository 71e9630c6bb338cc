package respond_b2b_request

import (
	"context"

	respondB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/respond_b2b_request"
)

type RespondB2BRequestUseCase interface {
	Execute(ctx context.Context, req *respondB2B.Request) (*respondB2B.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
