package respond_b2b_request

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// Request модель запроса на применение действия к B2B запросу
type Request struct {
	RequestID    int64
	ActingUserID int64
	Action       domain.B2BAction
}

// Response модель ответа с запросом после перехода
type Response struct {
	ID          int64
	BookingID   int64
	RequesterID int64
	RequesteeID int64
	InitiatedBy domain.InitiatorRole
	Status      domain.B2BStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
