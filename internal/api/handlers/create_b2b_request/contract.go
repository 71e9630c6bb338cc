package create_b2b_request

import (
	"context"

	createB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/create_b2b_request"
)

type CreateB2BRequestUseCase interface {
	Execute(ctx context.Context, req *createB2B.Request) (*createB2B.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
