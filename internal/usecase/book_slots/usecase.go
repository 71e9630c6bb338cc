package book_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	slotRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/slot"
	userClient "github.com/vlkhvnn/DJ-BookingService/internal/integrations/userservice"
	"github.com/vlkhvnn/DJ-BookingService/pkg/txmanager"
)

// UseCase use case бронирования пакета слотов одним диджеем.
// Пакет атомарен: либо все слоты переходят в booked и на каждый создается
// бронирование, либо не меняется ничего.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования слотов.
// Весь пакет проверяется и фиксируется в одной сериализуемой транзакции;
// гонку за один слот выигрывает ровно одна из конкурентных транзакций,
// проигравшая получает ErrSlotUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlots: dj=%d, slots=%v", req.DJID, req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Защитная проверка статуса аккаунта. Вызывающий слой фильтрует
	// забаненных до нас, но движок не полагается на это.
	user, err := uc.userClient.GetUser(ctx, req.DJID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("BookSlots: dj=%d not found in user directory", req.DJID)
			return nil, ErrPerformerIneligible
		}
		uc.logger.Error("BookSlots: failed to get user id=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}

	if !user.CanBook() {
		uc.logger.Warn("BookSlots: dj=%d is not eligible, status=%v", req.DJID, user.Status)
		return nil, ErrPerformerIneligible
	}

	// 3. Весь пакет - в одной сериализуемой транзакции
	var (
		bookings []*domain.SlotBooking
		slots    []*domain.TimeSlot
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		bookings, slots, txErr = uc.bookBatch(txCtx, req)
		return txErr
	})

	if err != nil {
		// txmanager уже повторил транзакцию один раз со свежими чтениями;
		// устойчивый конфликт сериализации означает проигранную гонку за слот
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("BookSlots: serialization conflict for dj=%d, slots=%v", req.DJID, req.SlotIDs)
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	uc.logger.Info("BookSlots: dj=%d booked %d slots", req.DJID, len(bookings))

	return toResponse(bookings, slots), nil
}

// bookBatch проверяет и бронирует все слоты пакета внутри транзакции.
// Возвращает созданные бронирования и прочитанные слоты в порядке
// входных SlotIDs.
func (uc *UseCase) bookBatch(txCtx context.Context, req *Request) ([]*domain.SlotBooking, []*domain.TimeSlot, error) {
	// Читаем слоты с блокировкой строк (FOR UPDATE)
	slots, err := uc.slotRepo.GetByIDs(txCtx, req.SlotIDs)
	if err != nil {
		uc.logger.Error("BookSlots: failed to get slots: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get slots: %w", ErrInternal, err)
	}

	// Неизвестные ID не попадают в результат
	if len(slots) != len(req.SlotIDs) {
		uc.logger.Warn("BookSlots: %d of %d requested slots not found",
			len(req.SlotIDs)-len(slots), len(req.SlotIDs))
		return nil, nil, ErrSlotNotFound
	}

	// Проверяем весь пакет до первой мутации: один недоступный слот
	// отклоняет весь запрос
	for _, s := range slots {
		if !s.IsBookable() {
			uc.logger.Warn("BookSlots: slot id=%d not bookable (slot=%s, event=%s)",
				s.ID, s.Status, s.EventStatus)
			return nil, nil, ErrSlotUnavailable
		}
	}

	// Бронируем в порядке, заданном вызывающим
	bookings := make([]*domain.SlotBooking, 0, len(slots))
	for _, s := range slots {
		// CAS на статус слота - последняя защита от двойного бронирования
		if err := uc.slotRepo.MarkBooked(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("BookSlots: slot id=%d lost to concurrent booking", s.ID)
				return nil, nil, ErrSlotUnavailable
			}
			uc.logger.Error("BookSlots: failed to mark slot id=%d booked: %v", s.ID, err)
			return nil, nil, fmt.Errorf("%w: failed to mark slot booked: %w", ErrInternal, err)
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.SlotBooking{
			SlotID:  s.ID,
			EventID: s.EventID,
			DJID:    req.DJID,
		})
		if err != nil {
			uc.logger.Error("BookSlots: failed to create booking for slot id=%d: %v", s.ID, err)
			return nil, nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		bookings = append(bookings, created)
	}

	return bookings, slots, nil
}

// toResponse собирает ответ, обогащая бронирования временем слотов.
// bookings и slots идут в одном и том же порядке (порядок входных SlotIDs).
func toResponse(bookings []*domain.SlotBooking, slots []*domain.TimeSlot) *Response {
	resp := &Response{
		Bookings: make([]Booking, len(bookings)),
	}

	for i, b := range bookings {
		resp.Bookings[i] = Booking{
			ID:        b.ID,
			SlotID:    b.SlotID,
			EventID:   b.EventID,
			DJID:      b.DJID,
			StartTime: slots[i].StartTime,
			EndTime:   slots[i].EndTime,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		}
	}

	return resp
}
