package book_slots

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/pkg/types"
)

// Request модель запроса на бронирование пакета слотов
type Request struct {
	DJID    int64   // ID диджея
	SlotIDs []int64 // Слоты в порядке, заданном вызывающим
}

// Booking модель одного созданного бронирования
type Booking struct {
	ID        int64
	SlotID    int64
	EventID   int64
	DJID      int64
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response модель ответа: бронирования в порядке входных SlotIDs
type Response struct {
	Bookings []Booking
}
