package auth

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterRequest is the payload for email/password sign-up.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

func (r RegisterRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// LoginRequest is the payload for email/password sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ForgotPasswordRequest asks for a reset code to be mailed.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ForgotPasswordRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}
	return nil
}

// VerifyResetCodeRequest advances the reset flow past the code step.
type VerifyResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

func (r VerifyResetCodeRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

// ResetPasswordRequest is the final, atomic verify-and-update step.
type ResetPasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	OTP                string `json:"otp" validate:"required,len=6"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,min=8"`
}

func (r ResetPasswordRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}
	if r.OTP == "" {
		return fmt.Errorf("otp is required")
	}
	if len(r.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.NewPassword != r.ConfirmNewPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
