package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB2BRequest_Transition(t *testing.T) {
	tests := []struct {
		name    string
		status  B2BStatus
		action  B2BAction
		want    B2BStatus
		wantErr bool
	}{
		{name: "pending accept", status: B2BStatusPending, action: B2BActionAccept, want: B2BStatusAccepted},
		{name: "pending decline", status: B2BStatusPending, action: B2BActionDecline, want: B2BStatusDeclined},
		{name: "pending leave is illegal", status: B2BStatusPending, action: B2BActionLeave, wantErr: true},
		{name: "accepted leave", status: B2BStatusAccepted, action: B2BActionLeave, want: B2BStatusLeft},
		{name: "accepted accept is illegal", status: B2BStatusAccepted, action: B2BActionAccept, wantErr: true},
		{name: "accepted decline is illegal", status: B2BStatusAccepted, action: B2BActionDecline, wantErr: true},
		{name: "declined is terminal", status: B2BStatusDeclined, action: B2BActionAccept, wantErr: true},
		{name: "left is terminal", status: B2BStatusLeft, action: B2BActionLeave, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &B2BRequest{Status: tt.status}

			next, err := req.Transition(tt.action)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestB2BRequest_CanAct(t *testing.T) {
	req := &B2BRequest{
		RequesterID: 10,
		RequesteeID: 20,
		Status:      B2BStatusPending,
	}

	// accept/decline - только приглашенная сторона
	assert.True(t, req.CanAct(B2BActionAccept, 20))
	assert.False(t, req.CanAct(B2BActionAccept, 10))
	assert.True(t, req.CanAct(B2BActionDecline, 20))
	assert.False(t, req.CanAct(B2BActionDecline, 10))

	// leave - любой из участников
	assert.True(t, req.CanAct(B2BActionLeave, 10))
	assert.True(t, req.CanAct(B2BActionLeave, 20))

	// посторонний не может ничего
	assert.False(t, req.CanAct(B2BActionAccept, 99))
	assert.False(t, req.CanAct(B2BActionDecline, 99))
	assert.False(t, req.CanAct(B2BActionLeave, 99))
}

func TestB2BRequest_IsActive(t *testing.T) {
	assert.True(t, (&B2BRequest{Status: B2BStatusPending}).IsActive())
	assert.True(t, (&B2BRequest{Status: B2BStatusAccepted}).IsActive())
	assert.False(t, (&B2BRequest{Status: B2BStatusDeclined}).IsActive())
	assert.False(t, (&B2BRequest{Status: B2BStatusLeft}).IsActive())
}

func TestParseB2BAction(t *testing.T) {
	action, err := ParseB2BAction("accept")
	require.NoError(t, err)
	assert.Equal(t, B2BActionAccept, action)

	action, err = ParseB2BAction("leave")
	require.NoError(t, err)
	assert.Equal(t, B2BActionLeave, action)

	_, err = ParseB2BAction("cancel")
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = ParseB2BAction("")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
