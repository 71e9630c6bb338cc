package respond_b2b_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
)

// UseCase use case применения действия (accept/decline/leave) к B2B запросу.
// Допустимость перехода определяет таблица переходов в domain, а не
// сравнение строк: незаконная пара (статус, действие) не существует в таблице.
//
// Побочные эффекты на бронировании:
//   - accept: второй диджей становится со-участником слота;
//   - decline: бронирование не меняется;
//   - leave: со-участник снимается, слот возвращается к исходному dj_id
//     независимо от того, кто из партнеров ушел.
type UseCase struct {
	b2bRepo     B2BRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	b2bRepo B2BRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		b2bRepo:     b2bRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case. Переход статуса и мутация бронирования
// фиксируются одной транзакцией.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RespondB2BRequest: request=%d, user=%d, action=%s",
		req.RequestID, req.ActingUserID, req.Action)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RespondB2BRequest: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.B2BRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем строку запроса (FOR UPDATE)
		b2bRequest, err := uc.b2bRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, b2bRepo.ErrRequestNotFound) {
				uc.logger.Warn("RespondB2BRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("RespondB2BRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %w", ErrInternal, err)
		}

		// Авторизация: accept/decline - только приглашенный, leave - любой участник
		if !b2bRequest.CanAct(req.Action, req.ActingUserID) {
			uc.logger.Warn("RespondB2BRequest: user=%d not authorized for action=%s on request id=%d",
				req.ActingUserID, req.Action, req.RequestID)
			return ErrNotAuthorized
		}

		// Переход по таблице состояний
		next, err := b2bRequest.Transition(req.Action)
		if err != nil {
			uc.logger.Warn("RespondB2BRequest: illegal transition %s + %s for request id=%d",
				b2bRequest.Status, req.Action, req.RequestID)
			return ErrInvalidState
		}

		// Условный UPDATE со старым статусом в WHERE; под FOR UPDATE
		// конфликт здесь означает только гонку вне транзакции
		if err := uc.b2bRepo.UpdateStatus(txCtx, b2bRequest.ID, b2bRequest.Status, next); err != nil {
			if errors.Is(err, b2bRepo.ErrStatusConflict) {
				uc.logger.Warn("RespondB2BRequest: status of request id=%d changed concurrently", req.RequestID)
				return ErrInvalidState
			}
			uc.logger.Error("RespondB2BRequest: failed to update status of request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		// Побочный эффект на бронировании
		if err := uc.applyBookingEffect(txCtx, b2bRequest, req.Action); err != nil {
			return err
		}

		b2bRequest.Status = next
		updated = b2bRequest
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RespondB2BRequest: request id=%d moved to status=%s", updated.ID, updated.Status)

	return &Response{
		ID:          updated.ID,
		BookingID:   updated.BookingID,
		RequesterID: updated.RequesterID,
		RequesteeID: updated.RequesteeID,
		InitiatedBy: updated.InitiatedBy,
		Status:      updated.Status,
		CreatedAt:   updated.CreatedAt,
		UpdatedAt:   updated.UpdatedAt,
	}, nil
}

// applyBookingEffect применяет к бронированию эффект действия
func (uc *UseCase) applyBookingEffect(txCtx context.Context, b2bRequest *domain.B2BRequest, action domain.B2BAction) error {
	switch action {
	case domain.B2BActionAccept:
		booking, err := uc.bookingRepo.GetByID(txCtx, b2bRequest.BookingID)
		if err != nil {
			uc.logger.Error("RespondB2BRequest: failed to get booking id=%d: %v", b2bRequest.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// Со-участником становится та сторона запроса, которая не владеет
		// бронированием
		partnerID := b2bRequest.RequesterID
		if partnerID == booking.DJID {
			partnerID = b2bRequest.RequesteeID
		}

		if err := uc.bookingRepo.SetPartner(txCtx, booking.ID, &partnerID); err != nil {
			uc.logger.Error("RespondB2BRequest: failed to set partner on booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to set partner: %w", ErrInternal, err)
		}

	case domain.B2BActionLeave:
		// Партнерство распадается: слот возвращается к исходному dj_id
		if err := uc.bookingRepo.SetPartner(txCtx, b2bRequest.BookingID, nil); err != nil {
			uc.logger.Error("RespondB2BRequest: failed to clear partner on booking id=%d: %v", b2bRequest.BookingID, err)
			return fmt.Errorf("%w: failed to clear partner: %w", ErrInternal, err)
		}

	case domain.B2BActionDecline:
		// Отказ не трогает бронирование - владелец остается один
	}

	return nil
}
