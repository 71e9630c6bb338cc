package models

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// B2BRequestResponse ответ с данными B2B запроса
type B2BRequestResponse struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"bookingId"`
	RequesterID int64     `json:"requesterId"`
	RequesteeID int64     `json:"requesteeId"`
	InitiatedBy string    `json:"initiatedBy"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.B2BRequest) *B2BRequestResponse {
	if r == nil {
		return nil
	}

	return &B2BRequestResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		RequesterID: r.RequesterID,
		RequesteeID: r.RequesteeID,
		InitiatedBy: string(r.InitiatedBy),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
