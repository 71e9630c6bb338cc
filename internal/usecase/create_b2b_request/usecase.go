package create_b2b_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
	bookingRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/booking"
	"github.com/vlkhvnn/DJ-BookingService/pkg/txmanager"
)

// UseCase use case создания B2B запроса.
// Проверка "не больше одного активного запроса на бронирование" и вставка
// выполняются в одной транзакции с блокировкой строки бронирования.
type UseCase struct {
	bookingRepo BookingRepository
	b2bRepo     B2BRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	b2bRepo B2BRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		b2bRepo:     b2bRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания B2B запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateB2BRequest: booking=%d, requester=%d, partner=%d, initiatedBy=%s",
		req.BookingID, req.RequesterID, req.PartnerID, req.InitiatedBy)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateB2BRequest: validation failed: %v", err)
		return nil, err
	}

	var created *domain.B2BRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем бронирование на время проверки и вставки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CreateB2BRequest: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CreateB2BRequest: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// Определяем стороны по роли инициатора
		requesteeID, err := resolveRequestee(req, booking)
		if err != nil {
			uc.logger.Warn("CreateB2BRequest: %v (booking dj=%d)", err, booking.DJID)
			return err
		}

		// Инвариант: не больше одного активного запроса на бронирование
		if _, err := uc.b2bRepo.GetActiveByBookingID(txCtx, req.BookingID); err == nil {
			uc.logger.Warn("CreateB2BRequest: booking id=%d already has an active request", req.BookingID)
			return ErrDuplicateActiveRequest
		} else if !errors.Is(err, b2bRepo.ErrRequestNotFound) {
			uc.logger.Error("CreateB2BRequest: failed to check active request: %v", err)
			return fmt.Errorf("%w: failed to check active request: %w", ErrInternal, err)
		}

		created, err = uc.b2bRepo.Create(txCtx, &domain.B2BRequest{
			BookingID:   req.BookingID,
			RequesterID: req.RequesterID,
			RequesteeID: requesteeID,
			InitiatedBy: req.InitiatedBy,
			Status:      domain.B2BStatusPending,
		})
		if err != nil {
			uc.logger.Error("CreateB2BRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		// Два конкурентных создания для одного бронирования: проигравший
		// конфликт сериализации эквивалентен дубликату
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateB2BRequest: serialization conflict for booking=%d", req.BookingID)
			return nil, ErrDuplicateActiveRequest
		}
		return nil, err
	}

	uc.logger.Info("CreateB2BRequest: created request id=%d for booking=%d", created.ID, created.BookingID)

	return &Response{
		ID:          created.ID,
		BookingID:   created.BookingID,
		RequesterID: created.RequesterID,
		RequesteeID: created.RequesteeID,
		InitiatedBy: created.InitiatedBy,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}

// resolveRequestee определяет приглашенную сторону и проверяет, что роли
// согласованы с владельцем бронирования:
//   - initiatedBy=requester: инициатор владеет бронированием, приглашается PartnerID;
//   - initiatedBy=requestee: инициатор - третья сторона, согласие дает владелец.
//
// В обоих случаях ровно одна из сторон - владелец бронирования.
func resolveRequestee(req *Request, booking *domain.SlotBooking) (int64, error) {
	switch req.InitiatedBy {
	case domain.InitiatedByRequester:
		if req.RequesterID != booking.DJID {
			return 0, ErrNotAuthorized
		}
		if req.PartnerID == booking.DJID {
			return 0, fmt.Errorf("%w: partner must differ from the booking holder", ErrInvalidInput)
		}
		return req.PartnerID, nil

	case domain.InitiatedByRequestee:
		if req.RequesterID == booking.DJID {
			return 0, fmt.Errorf("%w: booking holder cannot request to join own slot", ErrInvalidInput)
		}
		if req.PartnerID != booking.DJID {
			return 0, fmt.Errorf("%w: partner must be the booking holder", ErrInvalidInput)
		}
		return booking.DJID, nil

	default:
		return 0, fmt.Errorf("%w: unknown initiator role %q", ErrInvalidInput, req.InitiatedBy)
	}
}
