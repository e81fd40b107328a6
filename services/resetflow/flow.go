// Package resetflow owns the three-stage password-reset session:
//
//	Idle -> AwaitingOtp -> AwaitingNewPassword -> Idle(done)
//
// with Cancel available from any non-idle stage. Sessions are explicit,
// in-memory and keyed by the reset-target email, so stale cross-tab state
// can never leak between flows. The code-submission stage deliberately
// checks only the code's shape and the target email; the stored OTP is
// validated once, by the final commit.
package resetflow

import (
	"fmt"
	"regexp"
	"sync"
	"time"
)

// State is the stage a reset session is in.
type State string

const (
	StateIdle                State = "idle"
	StateAwaitingOtp         State = "awaiting_otp"
	StateAwaitingNewPassword State = "awaiting_new_password"
)

// SessionTTL bounds how long an abandoned reset session is honored.
const SessionTTL = 15 * time.Minute

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

var (
	ErrNoSession        = fmt.Errorf("no reset is in progress for this email")
	ErrWrongStage       = fmt.Errorf("reset flow is not at this stage")
	ErrBadCodeShape     = fmt.Errorf("code must be exactly 6 digits")
	ErrPasswordTooShort = fmt.Errorf("password must be at least 8 characters")
	ErrPasswordMismatch = fmt.Errorf("passwords do not match")
)

type session struct {
	state     State
	startedAt time.Time
}

// Manager tracks the active reset session per target email.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

// NewManager creates an empty reset-session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Begin records that a code was issued for email and moves the flow to
// AwaitingOtp. Call only after the code was actually created and sent;
// a send failure leaves the flow Idle.
func (m *Manager) Begin(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[email] = &session{state: StateAwaitingOtp, startedAt: m.now()}
}

// StateOf reports the current stage for email. Expired sessions read as Idle.
func (m *Manager) StateOf(email string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.live(email)
	if s == nil {
		return StateIdle
	}
	return s.state
}

// VerifyCode advances AwaitingOtp -> AwaitingNewPassword. The check is
// local-only: the code must be exactly 6 digits and email must match the
// session's target. Code correctness against the store is deferred to
// Finalize.
func (m *Manager) VerifyCode(email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.live(email)
	if s == nil {
		return ErrNoSession
	}
	if s.state != StateAwaitingOtp {
		return ErrWrongStage
	}
	if !codePattern.MatchString(code) {
		return ErrBadCodeShape
	}
	s.state = StateAwaitingNewPassword
	return nil
}

// Finalize runs the last stage: validates the new-password pair, then runs
// commit (the atomic verify-OTP-and-update-password operation). The session
// is cleared only when commit succeeds; on any failure the flow stays at
// AwaitingNewPassword.
func (m *Manager) Finalize(email, newPassword, confirmNewPassword string, commit func() error) error {
	m.mu.Lock()
	s := m.live(email)
	if s == nil {
		m.mu.Unlock()
		return ErrNoSession
	}
	if s.state != StateAwaitingNewPassword {
		m.mu.Unlock()
		return ErrWrongStage
	}
	if len(newPassword) < 8 {
		m.mu.Unlock()
		return ErrPasswordTooShort
	}
	if newPassword != confirmNewPassword {
		m.mu.Unlock()
		return ErrPasswordMismatch
	}
	m.mu.Unlock()

	// Commit runs outside the lock: it hits the OTP store and credential row.
	if err := commit(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, email)
	m.mu.Unlock()
	return nil
}

// Cancel clears any session for email and returns the flow to Idle.
// Idempotent: cancelling an idle flow is a no-op.
func (m *Manager) Cancel(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, email)
}

// live returns the unexpired session for email, pruning it if stale.
// Caller holds the lock.
func (m *Manager) live(email string) *session {
	s, ok := m.sessions[email]
	if !ok {
		return nil
	}
	if m.now().Sub(s.startedAt) > SessionTTL {
		delete(m.sessions, email)
		return nil
	}
	return s
}
