package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"adwhey-portal/services/resetflow"
	"adwhey-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	configured bool
	sendErr    error
}

func (s *stubMailer) Configured() bool { return s.configured }

func (s *stubMailer) SendOTP(email, code string) error { return s.sendErr }

func TestRelayFailed(t *testing.T) {
	tests := []struct {
		name      string
		mailer    *stubMailer
		delivered bool
		want      bool
	}{
		{name: "configured relay failed to send", mailer: &stubMailer{configured: true}, delivered: false, want: true},
		{name: "configured relay delivered", mailer: &stubMailer{configured: true}, delivered: true, want: false},
		{name: "unconfigured relay", mailer: &stubMailer{configured: false}, delivered: false, want: false},
		{name: "no relay at all", mailer: nil, delivered: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mailer == nil {
				assert.Equal(t, tt.want, relayFailed(nil, tt.delivered))
				return
			}
			assert.Equal(t, tt.want, relayFailed(tt.mailer, tt.delivered))
		})
	}
}

func TestRelayFailedWithSendError(t *testing.T) {
	// The undelivered flag is what matters; a configured relay whose send
	// errored must never reach the echo path.
	m := &stubMailer{configured: true, sendErr: fmt.Errorf("resend: 503")}
	assert.Error(t, m.SendOTP("client@example.com", "123456"))
	assert.True(t, relayFailed(m, false))
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, types.ApiResponse) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope types.ApiResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestResetPasswordRejectsInvalidPayload(t *testing.T) {
	// Malformed requests must fail request validation before the reset
	// session is even consulted.
	h := NewAuthController(nil, nil, resetflow.NewManager(), nil)
	app := fiber.New()
	app.Post("/reset-password", h.ResetPassword)

	resp, envelope := postJSON(t, app, "/reset-password", map[string]string{
		"email":                "not-an-email",
		"otp":                  "123456",
		"new_password":         "hunter22",
		"confirm_new_password": "hunter22",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Message, "valid email")

	resp, envelope = postJSON(t, app, "/reset-password", map[string]string{
		"email":                "a@b.com",
		"otp":                  "123456",
		"new_password":         "hunter22",
		"confirm_new_password": "hunter23",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Message, "do not match")
}
