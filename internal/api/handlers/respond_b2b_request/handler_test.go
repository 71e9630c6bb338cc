package respond_b2b_request

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	respondB2B "github.com/vlkhvnn/DJ-BookingService/internal/usecase/respond_b2b_request"
)

// MockUseCase mocks the respond use case
type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *respondB2B.Request) (*respondB2B.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*respondB2B.Response), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *MockUseCase, requestID, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/b2b-requests/"+requestID, bytes.NewReader(payload))
	req.Header.Set("X-User-ID", userID)
	req = mux.SetURLVars(req, map[string]string{"requestId": requestID})

	rec := httptest.NewRecorder()

	handler := NewHandler(uc, noopLogger{})
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)

	return rec
}

func TestHandle_Accept(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *respondB2B.Request) bool {
		return r.RequestID == 5 && r.ActingUserID == 20 && r.Action == domain.B2BActionAccept
	})).Return(&respondB2B.Response{
		ID: 5, BookingID: 1, RequesterID: 10, RequesteeID: 20,
		InitiatedBy: domain.InitiatedByRequester, Status: domain.B2BStatusAccepted,
	}, nil)

	rec := doRequest(t, uc, "5", "20", RespondB2BRequest{Action: "accept"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp B2BRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)

	uc.AssertExpectations(t)
}

func TestHandle_UnknownAction(t *testing.T) {
	uc := new(MockUseCase)

	rec := doRequest(t, uc, "5", "20", RespondB2BRequest{Action: "cancel"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: respondB2B.ErrRequestNotFound, code: http.StatusNotFound},
		{name: "not authorized", err: respondB2B.ErrNotAuthorized, code: http.StatusForbidden},
		{name: "invalid state", err: respondB2B.ErrInvalidState, code: http.StatusConflict},
		{name: "internal", err: respondB2B.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(t, uc, "5", "20", RespondB2BRequest{Action: "leave"})

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
