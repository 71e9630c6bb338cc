package models

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	SlotID      int64     `json:"slotId"`
	EventID     int64     `json:"eventId"`
	DJID        int64     `json:"djId"`
	PartnerDJID *int64    `json:"partnerDjId,omitempty"`
	Occupants   []int64   `json:"occupants"` // исходный букер первым
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.SlotBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		SlotID:      b.SlotID,
		EventID:     b.EventID,
		DJID:        b.DJID,
		PartnerDJID: b.PartnerDJID,
		Occupants:   b.Occupants(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.SlotBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	return resp
}
