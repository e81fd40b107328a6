package resetflow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "client@example.com"

func TestHappyPath(t *testing.T) {
	m := NewManager()
	assert.Equal(t, StateIdle, m.StateOf(testEmail))

	m.Begin(testEmail)
	assert.Equal(t, StateAwaitingOtp, m.StateOf(testEmail))

	require.NoError(t, m.VerifyCode(testEmail, "123456"))
	assert.Equal(t, StateAwaitingNewPassword, m.StateOf(testEmail))

	committed := false
	require.NoError(t, m.Finalize(testEmail, "hunter22hunter", "hunter22hunter", func() error {
		committed = true
		return nil
	}))
	assert.True(t, committed)
	assert.Equal(t, StateIdle, m.StateOf(testEmail), "flow returns to idle after success")
}

func TestVerifyCodeRejections(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		code    string
		wantErr error
	}{
		{name: "no session for email", email: "other@example.com", code: "123456", wantErr: ErrNoSession},
		{name: "too short", email: testEmail, code: "12345", wantErr: ErrBadCodeShape},
		{name: "too long", email: testEmail, code: "1234567", wantErr: ErrBadCodeShape},
		{name: "non-digits", email: testEmail, code: "12a456", wantErr: ErrBadCodeShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.Begin(testEmail)

			err := m.VerifyCode(tt.email, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StateAwaitingOtp, m.StateOf(testEmail), "rejection must not advance the flow")
		})
	}
}

func TestVerifyCodeWrongStage(t *testing.T) {
	m := NewManager()
	m.Begin(testEmail)
	require.NoError(t, m.VerifyCode(testEmail, "123456"))

	// Re-submitting the code after advancing is a stage error.
	assert.ErrorIs(t, m.VerifyCode(testEmail, "123456"), ErrWrongStage)
}

func TestFinalizeRejections(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "no session", email: "other@example.com", password: "hunter22", confirm: "hunter22", wantErr: ErrNoSession},
		{name: "password too short", email: testEmail, password: "short7!", confirm: "short7!", wantErr: ErrPasswordTooShort},
		{name: "password mismatch", email: testEmail, password: "hunter22", confirm: "hunter23", wantErr: ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.Begin(testEmail)
			require.NoError(t, m.VerifyCode(testEmail, "123456"))

			err := m.Finalize(tt.email, tt.password, tt.confirm, func() error {
				t.Fatal("commit must not run on a rejected request")
				return nil
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StateAwaitingNewPassword, m.StateOf(testEmail))
		})
	}
}

func TestFinalizeBeforeVerifyIsWrongStage(t *testing.T) {
	m := NewManager()
	m.Begin(testEmail)

	err := m.Finalize(testEmail, "hunter22", "hunter22", func() error { return nil })
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestFinalizeCommitFailureKeepsSession(t *testing.T) {
	m := NewManager()
	m.Begin(testEmail)
	require.NoError(t, m.VerifyCode(testEmail, "123456"))

	commitErr := fmt.Errorf("invalid or expired code")
	err := m.Finalize(testEmail, "hunter22", "hunter22", func() error { return commitErr })
	assert.ErrorIs(t, err, commitErr)

	// A failed commit leaves the flow where it was so the user can retry.
	assert.Equal(t, StateAwaitingNewPassword, m.StateOf(testEmail))
}

func TestCancelIsIdempotent(t *testing.T) {
	m := NewManager()

	m.Cancel(testEmail)
	assert.Equal(t, StateIdle, m.StateOf(testEmail))

	m.Begin(testEmail)
	m.Cancel(testEmail)
	assert.Equal(t, StateIdle, m.StateOf(testEmail))

	m.Cancel(testEmail)
	assert.Equal(t, StateIdle, m.StateOf(testEmail))
}

func TestSessionExpiry(t *testing.T) {
	current := time.Now()
	m := NewManager()
	m.now = func() time.Time { return current }

	m.Begin(testEmail)
	assert.Equal(t, StateAwaitingOtp, m.StateOf(testEmail))

	current = current.Add(SessionTTL + time.Second)
	assert.Equal(t, StateIdle, m.StateOf(testEmail))
	assert.ErrorIs(t, m.VerifyCode(testEmail, "123456"), ErrNoSession)
}

func TestSessionsAreIndependentPerEmail(t *testing.T) {
	m := NewManager()
	other := "second@example.com"

	m.Begin(testEmail)
	m.Begin(other)
	require.NoError(t, m.VerifyCode(testEmail, "123456"))

	assert.Equal(t, StateAwaitingNewPassword, m.StateOf(testEmail))
	assert.Equal(t, StateAwaitingOtp, m.StateOf(other))

	m.Cancel(other)
	assert.Equal(t, StateAwaitingNewPassword, m.StateOf(testEmail))
}

func TestBeginRestartsTheFlow(t *testing.T) {
	m := NewManager()
	m.Begin(testEmail)
	require.NoError(t, m.VerifyCode(testEmail, "123456"))

	// Asking for a new code abandons the old session's progress.
	m.Begin(testEmail)
	assert.Equal(t, StateAwaitingOtp, m.StateOf(testEmail))
}
