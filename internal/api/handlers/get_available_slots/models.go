package get_available_slots

import (
	getAvailableSlots "github.com/vlkhvnn/DJ-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Bookable  bool   `json:"bookable"`
}

// GetSlotsResponse HTTP response model
type GetSlotsResponse struct {
	EventID     int64          `json:"eventId"`
	EventStatus string         `json:"eventStatus"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetSlotsResponse {
	out := &GetSlotsResponse{
		EventID:     resp.EventID,
		EventStatus: string(resp.EventStatus),
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Status:    string(s.Status),
			Bookable:  s.Bookable,
		})
	}

	return out
}
