package b2b

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
)

// MockB2BRepo mocks the b2b request repository
type MockB2BRepo struct {
	mock.Mock
}

func (m *MockB2BRepo) GetByID(ctx context.Context, id int64) (*domain.B2BRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.B2BRequest), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGetByID(t *testing.T) {
	repo := new(MockB2BRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.B2BRequest{
		ID:          5,
		BookingID:   1,
		RequesterID: 10,
		RequesteeID: 20,
		InitiatedBy: domain.InitiatedByRequester,
		Status:      domain.B2BStatusPending,
	}, nil)

	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "requester", resp.InitiatedBy)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockB2BRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, b2bRepo.ErrRequestNotFound)

	svc := NewService(repo, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
