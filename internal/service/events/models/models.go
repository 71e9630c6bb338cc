package models

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// EventResponse ответ с данными события
type EventResponse struct {
	ID                  int64     `json:"id"`
	HostID              int64     `json:"hostId"`
	Title               string    `json:"title"`
	EventDate           string    `json:"eventDate"` // "2025-10-15"
	StartTime           string    `json:"startTime"` // "18:00"
	EndTime             string    `json:"endTime"`   // "23:00"
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event) *EventResponse {
	if e == nil {
		return nil
	}

	return &EventResponse{
		ID:                  e.ID,
		HostID:              e.HostID,
		Title:               e.Title,
		EventDate:           e.EventDate.Format(domain.DateFormat),
		StartTime:           e.StartTime.String(),
		EndTime:             e.EndTime.String(),
		SlotDurationMinutes: e.SlotDurationMinutes,
		Status:              string(e.Status),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
