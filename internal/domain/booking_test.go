package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotBooking_IsOccupant(t *testing.T) {
	partner := int64(20)

	solo := &SlotBooking{DJID: 10}
	assert.True(t, solo.IsOccupant(10))
	assert.False(t, solo.IsOccupant(20))

	joint := &SlotBooking{DJID: 10, PartnerDJID: &partner}
	assert.True(t, joint.IsOccupant(10))
	assert.True(t, joint.IsOccupant(20))
	assert.False(t, joint.IsOccupant(30))
}

func TestSlotBooking_Occupants(t *testing.T) {
	partner := int64(20)

	solo := &SlotBooking{DJID: 10}
	assert.Equal(t, []int64{10}, solo.Occupants())

	// Исходный букер всегда первый
	joint := &SlotBooking{DJID: 10, PartnerDJID: &partner}
	assert.Equal(t, []int64{10, 20}, joint.Occupants())
}

func TestTimeSlot_IsBookable(t *testing.T) {
	tests := []struct {
		name        string
		slotStatus  SlotStatus
		eventStatus EventStatus
		want        bool
	}{
		{name: "available and published", slotStatus: SlotStatusAvailable, eventStatus: EventStatusPublished, want: true},
		{name: "available but draft event", slotStatus: SlotStatusAvailable, eventStatus: EventStatusDraft, want: false},
		{name: "booked", slotStatus: SlotStatusBooked, eventStatus: EventStatusPublished, want: false},
		{name: "booked and draft", slotStatus: SlotStatusBooked, eventStatus: EventStatusDraft, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &TimeSlot{Status: tt.slotStatus, EventStatus: tt.eventStatus}
			assert.Equal(t, tt.want, s.IsBookable())
		})
	}
}
