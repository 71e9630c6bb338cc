package domain

import (
	"errors"
	"time"
)

// B2BStatus represents the state of a back-to-back partnership request
type B2BStatus string

const (
	B2BStatusPending  B2BStatus = "pending"
	B2BStatusAccepted B2BStatus = "accepted"
	B2BStatusDeclined B2BStatus = "declined"
	B2BStatusLeft     B2BStatus = "left"
)

// B2BAction is an action applied to a request. Actions are a closed enum
// so the set of legal transitions is checkable, not a string comparison.
type B2BAction string

const (
	B2BActionAccept  B2BAction = "accept"
	B2BActionDecline B2BAction = "decline"
	B2BActionLeave   B2BAction = "leave"
)

// InitiatorRole сторона, создавшая запрос: requester - владелец бронирования
// зовет партнера, requestee - третья сторона просится к владельцу
type InitiatorRole string

const (
	InitiatedByRequester InitiatorRole = "requester"
	InitiatedByRequestee InitiatorRole = "requestee"
)

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid b2b status transition")

	// ErrUnknownAction возвращается при неизвестном действии
	ErrUnknownAction = errors.New("domain: unknown b2b action")
)

// b2bTransitions таблица переходов состояний:
// pending -> accepted | declined, accepted -> left.
// declined и left - терминальные состояния.
var b2bTransitions = map[B2BStatus]map[B2BAction]B2BStatus{
	B2BStatusPending: {
		B2BActionAccept:  B2BStatusAccepted,
		B2BActionDecline: B2BStatusDeclined,
	},
	B2BStatusAccepted: {
		B2BActionLeave: B2BStatusLeft,
	},
}

// B2BRequest is a proposal that two DJs perform back-to-back on one
// booked slot. Requests are never deleted; the status column is the
// history ("declined" = they said no, "left" = the pairing dissolved).
type B2BRequest struct {
	ID          int64
	BookingID   int64
	RequesterID int64
	RequesteeID int64
	InitiatedBy InitiatorRole
	Status      B2BStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the request blocks creation of another
// request for the same booking (pending or accepted)
func (r *B2BRequest) IsActive() bool {
	return r.Status == B2BStatusPending || r.Status == B2BStatusAccepted
}

// Transition returns the status the request moves to under action.
// Returns ErrInvalidTransition if the action is not legal in the
// current status.
func (r *B2BRequest) Transition(action B2BAction) (B2BStatus, error) {
	next, ok := b2bTransitions[r.Status][action]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// CanAct returns true if userID is allowed to apply action:
// accept/decline - only the invited party, leave - either party
func (r *B2BRequest) CanAct(action B2BAction, userID int64) bool {
	switch action {
	case B2BActionAccept, B2BActionDecline:
		return userID == r.RequesteeID
	case B2BActionLeave:
		return userID == r.RequesterID || userID == r.RequesteeID
	default:
		return false
	}
}

// ParseB2BAction валидирует строковое представление действия
func ParseB2BAction(s string) (B2BAction, error) {
	switch B2BAction(s) {
	case B2BActionAccept, B2BActionDecline, B2BActionLeave:
		return B2BAction(s), nil
	default:
		return "", ErrUnknownAction
	}
}
