package domain

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/pkg/types"
)

// EventStatus represents the publication status of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// Event represents a host-owned event with bookable time slots
type Event struct {
	ID                  int64
	HostID              int64
	Title               string
	EventDate           time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	Status              EventStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished returns true if the event's slots are visible and bookable
func (e *Event) IsPublished() bool {
	return e.Status == EventStatusPublished
}

// IsDraft returns true if the event has not been published yet
func (e *Event) IsDraft() bool {
	return e.Status == EventStatusDraft
}
