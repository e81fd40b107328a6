package otp

// SendOTPResponse is returned by the forgot-password step. OTP and Warning
// are only populated on the unconfigured-mail-relay fallback path, where
// the code is echoed back instead of delivered.
type SendOTPResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at,omitempty"`
	OTP       string `json:"otp,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// VerifyOTPResponse is returned by the reset steps.
type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
