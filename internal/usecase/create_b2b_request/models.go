package create_b2b_request

import (
	"time"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
)

// Request модель запроса на создание B2B предложения.
//
// RequesterID - инициатор (всегда вызывающий пользователь).
// InitiatedBy фиксирует его роль относительно бронирования:
//   - requester: владелец бронирования зовет партнера PartnerID;
//   - requestee: третья сторона просится в слот, PartnerID - владелец
//     бронирования, который должен дать согласие.
type Request struct {
	BookingID   int64
	RequesterID int64
	PartnerID   int64
	InitiatedBy domain.InitiatorRole
}

// Response модель ответа с созданным запросом
type Response struct {
	ID          int64
	BookingID   int64
	RequesterID int64
	RequesteeID int64
	InitiatedBy domain.InitiatorRole
	Status      domain.B2BStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
