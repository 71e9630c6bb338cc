package create_b2b_request

import (
	"fmt"
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	createB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/create_b2b_request"
)

// CreateB2BRequest HTTP request model.
// initiatedBy - роль вызывающего относительно бронирования:
// "requester" - владелец зовет партнера, "requestee" - проситель.
type CreateB2BRequest struct {
	BookingID   int64  `json:"bookingId"`
	PartnerID   int64  `json:"partnerId"`
	InitiatedBy string `json:"initiatedBy"`
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
func (r *CreateB2BRequest) ToUseCaseRequest(requesterID int64) (*createB2B.Request, error) {
	role := domain.InitiatorRole(r.InitiatedBy)
	if role != domain.InitiatedByRequester && role != domain.InitiatedByRequestee {
		return nil, fmt.Errorf("unknown initiatedBy value: %q", r.InitiatedBy)
	}

	return &createB2B.Request{
		BookingID:   r.BookingID,
		RequesterID: requesterID,
		PartnerID:   r.PartnerID,
		InitiatedBy: role,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createB2B.Response) *B2BRequestResponse {
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
