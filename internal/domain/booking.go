package domain

import "time"

// SlotBooking is the primary occupancy record for one time slot.
// DJID never changes after creation; PartnerDJID is set while an accepted
// back-to-back partnership is in effect and cleared when it is dissolved.
type SlotBooking struct {
	ID          int64
	SlotID      int64
	EventID     int64
	DJID        int64
	PartnerDJID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPartner returns true if the slot is currently a joint performance
func (b *SlotBooking) HasPartner() bool {
	return b.PartnerDJID != nil
}

// IsOccupant returns true if djID currently performs on this slot,
// either as the original booker or as the accepted partner
func (b *SlotBooking) IsOccupant(djID int64) bool {
	if b.DJID == djID {
		return true
	}
	return b.PartnerDJID != nil && *b.PartnerDJID == djID
}

// Occupants returns the DJs currently associated with the slot,
// original booker first
func (b *SlotBooking) Occupants() []int64 {
	occupants := []int64{b.DJID}
	if b.PartnerDJID != nil {
		occupants = append(occupants, *b.PartnerDJID)
	}
	return occupants
}
