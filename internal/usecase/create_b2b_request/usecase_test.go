package create_b2b_request

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
	bookingRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/booking"
	"github.com/vlkhvnn/DJ-BookingService/pkg/txmanager"
)

// MockBookingRepo mocks the booking repository
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.SlotBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlotBooking), args.Error(1)
}

// MockB2BRepo mocks the b2b request repository
type MockB2BRepo struct {
	mock.Mock
}

func (m *MockB2BRepo) Create(ctx context.Context, req *domain.B2BRequest) (*domain.B2BRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.B2BRequest), args.Error(1)
}

func (m *MockB2BRepo) GetActiveByBookingID(ctx context.Context, bookingID int64) (*domain.B2BRequest, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.B2BRequest), args.Error(1)
}

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

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(bookings *MockBookingRepo, b2b *MockB2BRepo) *UseCase {
	return NewUseCase(bookings, b2b, &fakeTxManager{}, noopLogger{})
}

func TestCreateB2BRequest_HolderInvitesPartner(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	// Владелец бронирования (dj=10) зовет партнера dj=20
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.SlotBooking{ID: 1, DJID: 10}, nil)
	b2b.On("GetActiveByBookingID", mock.Anything, int64(1)).Return(nil, b2bRepo.ErrRequestNotFound)
	b2b.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.B2BRequest) bool {
		return r.BookingID == 1 &&
			r.RequesterID == 10 &&
			r.RequesteeID == 20 &&
			r.InitiatedBy == domain.InitiatedByRequester &&
			r.Status == domain.B2BStatusPending
	})).Return(&domain.B2BRequest{
		ID: 5, BookingID: 1, RequesterID: 10, RequesteeID: 20,
		InitiatedBy: domain.InitiatedByRequester, Status: domain.B2BStatusPending,
	}, nil)

	uc := newTestUseCase(bookings, b2b)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 10,
		PartnerID:   20,
		InitiatedBy: domain.InitiatedByRequester,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(20), resp.RequesteeID)
	assert.Equal(t, domain.B2BStatusPending, resp.Status)

	b2b.AssertExpectations(t)
}

func TestCreateB2BRequest_ThirdPartyAsksToJoin(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	// Третья сторона (dj=30) просится в слот владельца dj=10:
	// согласие дает владелец, он и есть requestee
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.SlotBooking{ID: 1, DJID: 10}, nil)
	b2b.On("GetActiveByBookingID", mock.Anything, int64(1)).Return(nil, b2bRepo.ErrRequestNotFound)
	b2b.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.B2BRequest) bool {
		return r.RequesterID == 30 &&
			r.RequesteeID == 10 &&
			r.InitiatedBy == domain.InitiatedByRequestee
	})).Return(&domain.B2BRequest{
		ID: 6, BookingID: 1, RequesterID: 30, RequesteeID: 10,
		InitiatedBy: domain.InitiatedByRequestee, Status: domain.B2BStatusPending,
	}, nil)

	uc := newTestUseCase(bookings, b2b)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 30,
		PartnerID:   10,
		InitiatedBy: domain.InitiatedByRequestee,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.RequesteeID)

	b2b.AssertExpectations(t)
}

func TestCreateB2BRequest_DuplicateActive(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.SlotBooking{ID: 1, DJID: 10}, nil)
	// Для бронирования уже есть pending запрос
	b2b.On("GetActiveByBookingID", mock.Anything, int64(1)).Return(&domain.B2BRequest{
		ID: 5, BookingID: 1, Status: domain.B2BStatusPending,
	}, nil)

	uc := newTestUseCase(bookings, b2b)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 10,
		PartnerID:   20,
		InitiatedBy: domain.InitiatedByRequester,
	})
	assert.ErrorIs(t, err, ErrDuplicateActiveRequest)

	b2b.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateB2BRequest_BookingNotFound(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	bookings.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	uc := newTestUseCase(bookings, b2b)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   99,
		RequesterID: 10,
		PartnerID:   20,
		InitiatedBy: domain.InitiatedByRequester,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateB2BRequest_NotAuthorized(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	// Инициатор заявляет роль владельца, но бронированием владеет dj=10
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.SlotBooking{ID: 1, DJID: 10}, nil)

	uc := newTestUseCase(bookings, b2b)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 30,
		PartnerID:   20,
		InitiatedBy: domain.InitiatedByRequester,
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCreateB2BRequest_SerializationConflictMapsToDuplicate(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	// Два конкурентных создания для одного бронирования: обе попытки
	// проигравшего завершаются 40001, вызывающий видит дубликат
	conflict := fmt.Errorf("%w: GetByID - execute query: %w",
		bookingRepo.ErrExecQuery, &pq.Error{Code: "40001"})
	bookings.On("GetByID", mock.Anything, int64(1)).Return(nil, conflict).Twice()

	txm := &retryingTxManager{}
	uc := NewUseCase(bookings, b2b, txm, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 10,
		PartnerID:   20,
		InitiatedBy: domain.InitiatedByRequester,
	})
	assert.ErrorIs(t, err, ErrDuplicateActiveRequest)
	assert.Equal(t, 2, txm.attempts)

	bookings.AssertExpectations(t)
	b2b.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateB2BRequest_RoleMismatch(t *testing.T) {
	bookings := new(MockBookingRepo)
	b2b := new(MockB2BRepo)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.SlotBooking{ID: 1, DJID: 10}, nil)

	uc := newTestUseCase(bookings, b2b)

	// initiatedBy=requestee требует, чтобы партнером был владелец бронирования
	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		RequesterID: 30,
		PartnerID:   40,
		InitiatedBy: domain.InitiatedByRequestee,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateB2BRequest_Validation(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepo), new(MockB2BRepo))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "self partnership", req: &Request{BookingID: 1, RequesterID: 10, PartnerID: 10, InitiatedBy: domain.InitiatedByRequester}},
		{name: "non-positive booking", req: &Request{RequesterID: 10, PartnerID: 20, InitiatedBy: domain.InitiatedByRequester}},
		{name: "unknown role", req: &Request{BookingID: 1, RequesterID: 10, PartnerID: 20, InitiatedBy: "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
