package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxSlotsPerBooking     = 20
	MinSlotDurationMinutes = 10
	MaxSlotDurationMinutes = 480 // 8 hours
)

// ActiveB2BStatuses статусы, при которых запрос блокирует создание нового
// запроса на то же бронирование
var ActiveB2BStatuses = []B2BStatus{
	B2BStatusPending,
	B2BStatusAccepted,
}
