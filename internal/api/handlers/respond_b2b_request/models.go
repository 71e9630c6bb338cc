package respond_b2b_request

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	respondB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/respond_b2b_request"
)

// RespondB2BRequest HTTP request model, action - accept | decline | leave
type RespondB2BRequest struct {
	Action string `json:"action"`
}

// B2BRequestResponse HTTP response model
type B2BRequestResponse struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"bookingId"`
	RequesterID int64  `json:"requesterId"`
	RequesteeID int64  `json:"requesteeId"`
	InitiatedBy string `json:"initiatedBy"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RespondB2BRequest) ToUseCaseRequest(requestID, actingUserID int64) (*respondB2B.Request, error) {
	action, err := domain.ParseB2BAction(r.Action)
	if err != nil {
		return nil, err
	}

	return &respondB2B.Request{
		RequestID:    requestID,
		ActingUserID: actingUserID,
		Action:       action,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *respondB2B.Response) *B2BRequestResponse {
	return &B2BRequestResponse{
		ID:          resp.ID,
		BookingID:   resp.BookingID,
		RequesterID: resp.RequesterID,
		RequesteeID: resp.RequesteeID,
		InitiatedBy: string(resp.InitiatedBy),
		Status:      string(resp.Status),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
