package book_slots

import (
	"time"

	bookSlots "github.com/vlkhvnn/DJ-BookingService/internal/usecase/book_slots"
)

// BookSlotsRequest HTTP request model
type BookSlotsRequest struct {
	SlotIDs []int64 `json:"slotIds"`
}

// BookingResponse HTTP модель одного созданного бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	SlotID    int64  `json:"slotId"`
	EventID   int64  `json:"eventId"`
	DJID      int64  `json:"djId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookSlotsResponse HTTP response model: бронирования в порядке входных slotIds
type BookSlotsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotsRequest) ToUseCaseRequest(djID int64) *bookSlots.Request {
	return &bookSlots.Request{
		DJID:    djID,
		SlotIDs: r.SlotIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlots.Response) *BookSlotsResponse {
	out := &BookSlotsResponse{
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:        b.ID,
			SlotID:    b.SlotID,
			EventID:   b.EventID,
			DJID:      b.DJID,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
			UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
