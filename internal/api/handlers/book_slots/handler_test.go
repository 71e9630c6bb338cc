package book_slots

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	bookSlots "github.com/vlkhvnn/DJ-BookingService/internal/usecase/book_slots"
)

// MockUseCase mocks the book slots use case
type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *bookSlots.Request) (*bookSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookSlots.Response), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *MockUseCase, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()

	handler := NewHandler(uc, noopLogger{})
	// Прогоняем через Auth, как в боевом роутере
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)

	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *bookSlots.Request) bool {
		return r.DJID == 7 && len(r.SlotIDs) == 2
	})).Return(&bookSlots.Response{
		Bookings: []bookSlots.Booking{
			{ID: 11, SlotID: 3, EventID: 100, DJID: 7, StartTime: "18:00", EndTime: "19:00"},
			{ID: 12, SlotID: 1, EventID: 100, DJID: 7, StartTime: "19:00", EndTime: "20:00"},
		},
	}, nil)

	rec := doRequest(t, uc, "7", BookSlotsRequest{SlotIDs: []int64{3, 1}})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(3), resp.Bookings[0].SlotID)
	assert.Equal(t, "18:00", resp.Bookings[0].StartTime)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := new(MockUseCase)

	rec := doRequest(t, uc, "", BookSlotsRequest{SlotIDs: []int64{1}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "slot not found", err: bookSlots.ErrSlotNotFound, code: http.StatusNotFound},
		{name: "slot unavailable", err: bookSlots.ErrSlotUnavailable, code: http.StatusConflict},
		{name: "performer ineligible", err: bookSlots.ErrPerformerIneligible, code: http.StatusForbidden},
		{name: "invalid input", err: bookSlots.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: bookSlots.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(t, uc, "7", BookSlotsRequest{SlotIDs: []int64{1}})

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
