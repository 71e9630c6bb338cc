package domain

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/pkg/types"
)

// SlotStatus represents the availability state of a time slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// TimeSlot represents one bookable interval inside an event.
// EventStatus is denormalized into reads (slots are always fetched joined
// with their event) so an availability check needs a single row.
type TimeSlot struct {
	ID          int64
	EventID     int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      SlotStatus
	EventStatus EventStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot itself is free
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsBookable returns true if the slot can be claimed: the slot is free
// AND its event is published
func (s *TimeSlot) IsBookable() bool {
	return s.Status == SlotStatusAvailable && s.EventStatus == EventStatusPublished
}
