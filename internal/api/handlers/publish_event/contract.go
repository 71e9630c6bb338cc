package publish_event

import (
	"context"

	"github.com/vlkhvnn/DJ-BookingService/internal/service/events/models"
)

type EventService interface {
	Publish(ctx context.Context, eventID int64, actingUserID int64) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
