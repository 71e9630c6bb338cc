package book_slots

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	slotRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/slot"
	userClient "github.com/vlkhvnn/DJ-BookingService/internal/integrations/userservice"
	"github.com/vlkhvnn/DJ-BookingService/pkg/txmanager"
)

// MockSlotRepo mocks the slot repository
type MockSlotRepo struct {
	mock.Mock
}

func (m *MockSlotRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSlot), args.Error(1)
}

func (m *MockSlotRepo) MarkBooked(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingRepo mocks the booking repository
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.SlotBooking) (*domain.SlotBooking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlotBooking), args.Error(1)
}

// MockUserClient mocks the user directory client
type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) GetUser(ctx context.Context, userID int64) (*userClient.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userClient.User), args.Error(1)
}

// fakeTxManager выполняет функцию транзакции напрямую, без БД
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTxManager повторяет семантику txmanager.DoSerializable:
// один повтор при serialization failure, без реальной БД
type retryingTxManager struct {
	attempts int
}

func (m *retryingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.attempts++
	err := fn(ctx)
	if err != nil && txmanager.IsSerializationFailure(err) {
		m.attempts++
		err = fn(ctx)
	}
	return err
}

// serializationConflict собирает ошибку 40001 так, как её отдает репозиторий
// слотов: цепочка оборачивания должна сохранять *pq.Error
func serializationConflict() error {
	return fmt.Errorf("%w: GetByIDs - execute query: %w",
		slotRepo.ErrExecQuery, &pq.Error{Code: "40001"})
}

// noopLogger глушит логи в тестах
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func bookableSlot(id, eventID int64) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          id,
		EventID:     eventID,
		StartTime:   "18:00",
		EndTime:     "19:00",
		Status:      domain.SlotStatusAvailable,
		EventStatus: domain.EventStatusPublished,
	}
}

func newTestUseCase(slots *MockSlotRepo, bookings *MockBookingRepo, users *MockUserClient) *UseCase {
	return NewUseCase(slots, bookings, users, &fakeTxManager{}, noopLogger{})
}

func TestBookSlots_Success(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7, Username: "dj7"}, nil)
	slots.On("GetByIDs", mock.Anything, []int64{3, 1}).Return([]*domain.TimeSlot{
		bookableSlot(3, 100),
		bookableSlot(1, 100),
	}, nil)
	slots.On("MarkBooked", mock.Anything, int64(3)).Return(nil)
	slots.On("MarkBooked", mock.Anything, int64(1)).Return(nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.SlotBooking) bool {
		return b.SlotID == 3 && b.DJID == 7
	})).Return(&domain.SlotBooking{ID: 11, SlotID: 3, EventID: 100, DJID: 7}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.SlotBooking) bool {
		return b.SlotID == 1 && b.DJID == 7
	})).Return(&domain.SlotBooking{ID: 12, SlotID: 1, EventID: 100, DJID: 7}, nil)

	uc := newTestUseCase(slots, bookings, users)

	resp, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{3, 1}})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	// Бронирования идут в порядке входных slotIDs
	assert.Equal(t, int64(3), resp.Bookings[0].SlotID)
	assert.Equal(t, int64(1), resp.Bookings[1].SlotID)
	assert.Equal(t, int64(11), resp.Bookings[0].ID)
	assert.Equal(t, int64(12), resp.Bookings[1].ID)

	slots.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestBookSlots_SlotNotFound(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)
	// Один из запрошенных слотов не существует
	slots.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*domain.TimeSlot{
		bookableSlot(1, 100),
	}, nil)

	uc := newTestUseCase(slots, bookings, users)

	_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1, 2}})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSlots_AllOrNothing(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)

	// Второй слот уже занят - пакет отклоняется целиком, без единой мутации
	booked := bookableSlot(2, 100)
	booked.Status = domain.SlotStatusBooked
	slots.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*domain.TimeSlot{
		bookableSlot(1, 100),
		booked,
	}, nil)

	uc := newTestUseCase(slots, bookings, users)

	_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1, 2}})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	slots.AssertNotCalled(t, "MarkBooked", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSlots_DraftEventNotBookable(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)

	draft := bookableSlot(1, 100)
	draft.EventStatus = domain.EventStatusDraft
	slots.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.TimeSlot{draft}, nil)

	uc := newTestUseCase(slots, bookings, users)

	_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookSlots_ConcurrentLossOnMark(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)
	slots.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.TimeSlot{bookableSlot(1, 100)}, nil)
	// CAS проиграл гонку за слот
	slots.On("MarkBooked", mock.Anything, int64(1)).Return(slotRepo.ErrSlotNotAvailable)

	uc := newTestUseCase(slots, bookings, users)

	_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSlots_SerializationConflictRetriedThenUnavailable(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)
	// Конфликт сериализации на чтении: обе попытки проигрывают гонку
	slots.On("GetByIDs", mock.Anything, []int64{1}).Return(nil, serializationConflict()).Twice()

	txm := &retryingTxManager{}
	uc := NewUseCase(slots, bookings, users, txm, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 2, txm.attempts)

	slots.AssertExpectations(t)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSlots_SerializationConflictRecoversOnRetry(t *testing.T) {
	slots := new(MockSlotRepo)
	bookings := new(MockBookingRepo)
	users := new(MockUserClient)

	users.On("GetUser", mock.Anything, int64(7)).Return(&userClient.User{ID: 7}, nil)
	// Первая попытка ловит 40001, повтор со свежим чтением проходит
	slots.On("GetByIDs", mock.Anything, []int64{1}).Return(nil, serializationConflict()).Once()
	slots.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.TimeSlot{bookableSlot(1, 100)}, nil).Once()
	slots.On("MarkBooked", mock.Anything, int64(1)).Return(nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.SlotBooking) bool {
		return b.SlotID == 1 && b.DJID == 7
	})).Return(&domain.SlotBooking{ID: 11, SlotID: 1, EventID: 100, DJID: 7}, nil)

	txm := &retryingTxManager{}
	uc := NewUseCase(slots, bookings, users, txm, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1}})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(11), resp.Bookings[0].ID)
	assert.Equal(t, 2, txm.attempts)

	slots.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestBookSlots_PerformerIneligible(t *testing.T) {
	banned := userClient.StatusBanned
	inactive := userClient.StatusInactive

	tests := []struct {
		name string
		user *userClient.User
		err  error
	}{
		{name: "banned", user: &userClient.User{ID: 7, Status: &banned}},
		{name: "inactive", user: &userClient.User{ID: 7, Status: &inactive}},
		{name: "not found", err: userClient.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := new(MockSlotRepo)
			bookings := new(MockBookingRepo)
			users := new(MockUserClient)

			users.On("GetUser", mock.Anything, int64(7)).Return(tt.user, tt.err)

			uc := newTestUseCase(slots, bookings, users)

			_, err := uc.Execute(context.Background(), &Request{DJID: 7, SlotIDs: []int64{1}})
			assert.ErrorIs(t, err, ErrPerformerIneligible)

			slots.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
		})
	}
}

func TestBookSlots_Validation(t *testing.T) {
	uc := newTestUseCase(new(MockSlotRepo), new(MockBookingRepo), new(MockUserClient))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty slot list", req: &Request{DJID: 7}},
		{name: "non-positive dj", req: &Request{DJID: 0, SlotIDs: []int64{1}}},
		{name: "non-positive slot id", req: &Request{DJID: 7, SlotIDs: []int64{0}}},
		{name: "duplicate slot ids", req: &Request{DJID: 7, SlotIDs: []int64{1, 1}}},
		{name: "too many slots", req: &Request{DJID: 7, SlotIDs: manySlotIDs(domain.MaxSlotsPerBooking + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func manySlotIDs(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids
}
