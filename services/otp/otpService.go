package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"adwhey-portal/logger"
	"adwhey-portal/models/otp"

	"gorm.io/gorm"
)

// Mailer delivers reset codes. Satisfied by httpServices/mailer.
type Mailer interface {
	Configured() bool
	SendOTP(email, code string) error
}

// Service handles OTP operations
type Service struct {
	DB     *gorm.DB
	Mailer Mailer
}

// NewOTPService creates a new OTP service
func NewOTPService(db *gorm.DB, mailer Mailer) *Service {
	return &Service{
		DB:     db,
		Mailer: mailer,
	}
}

// GenerateOTP generates a random 6-digit OTP
func (s *Service) GenerateOTP() (string, error) {
	max := big.NewInt(999999)
	min := big.NewInt(100000)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	// Ensure the number is at least 6 digits
	n.Add(n, min)
	if n.Cmp(max) > 0 {
		n.Sub(n, max)
		n.Add(n, min)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendOTP creates and stores an OTP for the given email with retry
// handling, then attempts delivery through the mail relay. The returned
// delivered flag is false when the relay is unconfigured or the send
// failed; the OTP record is still valid either way.
func (s *Service) SendOTP(email string, purpose otp.OTPPurpose) (*otp.OTP, bool, error) {
	existingOTP, err := s.GetOTPStatus(email, purpose)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing OTP: %w", err)
	}

	// An unexpired code is still in flight; don't mint another
	if existingOTP != nil && !existingOTP.IsExpired() && !existingOTP.IsUsed {
		return nil, false, fmt.Errorf("a reset code for this email is still active. Please wait until it expires or use the existing code")
	}

	if existingOTP != nil && existingOTP.IsCurrentlyBlocked() {
		blockTime := "permanently"
		if existingOTP.BlockedUntil != nil {
			blockTime = fmt.Sprintf("until %s", existingOTP.BlockedUntil.Format("15:04:05"))
		}
		return nil, false, fmt.Errorf("reset requests are blocked %s due to too many failed attempts", blockTime)
	}

	otpCode, err := s.GenerateOTP()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate OTP: %w", err)
	}

	// Invalidate any existing unused OTPs for this email and purpose
	err = s.DB.Model(&otp.OTP{}).
		Where("email = ? AND purpose = ? AND is_used = false", email, purpose).
		Update("is_used", true).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to invalidate existing OTPs: %w", err)
	}

	newOTP := &otp.OTP{
		Email:      email,
		OTPCode:    otpCode,
		Purpose:    purpose,
		IsUsed:     false,
		RetryCount: 0,
		MaxRetries: 3,
		IsBlocked:  false,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
	}

	if err := s.DB.Create(newOTP).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create OTP record: %w", err)
	}

	delivered := false
	if s.Mailer != nil && s.Mailer.Configured() {
		if err := s.Mailer.SendOTP(email, otpCode); err != nil {
			logger.Error("Failed to deliver reset code email", err)
		} else {
			delivered = true
		}
	}

	return newOTP, delivered, nil
}

// VerifyOTP verifies the provided code for the given email and purpose
// with retry handling. A matching code is marked used so it can never be
// replayed.
func (s *Service) VerifyOTP(email, otpCode string, purpose otp.OTPPurpose) (bool, error) {
	var otpRecord otp.OTP

	err := s.DB.Where("email = ? AND purpose = ? AND is_used = false",
		email, purpose).
		Order("created_at DESC").
		First(&otpRecord).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil // No OTP found
		}
		return false, fmt.Errorf("failed to find OTP record: %w", err)
	}

	if otpRecord.IsCurrentlyBlocked() {
		blockTime := "permanently"
		if otpRecord.BlockedUntil != nil {
			blockTime = fmt.Sprintf("until %s", otpRecord.BlockedUntil.Format("15:04:05"))
		}
		return false, fmt.Errorf("OTP verification is blocked %s due to too many failed attempts", blockTime)
	}

	if otpRecord.IsExpired() {
		return false, fmt.Errorf("OTP has expired")
	}

	if otpRecord.OTPCode != otpCode {
		otpRecord.IncrementRetry()
		if err := s.DB.Save(&otpRecord).Error; err != nil {
			return false, fmt.Errorf("failed to update retry count: %w", err)
		}

		remainingAttempts := otpRecord.MaxRetries - otpRecord.RetryCount
		if remainingAttempts <= 0 {
			return false, fmt.Errorf("invalid OTP. Maximum attempts exceeded. OTP is now blocked")
		}
		return false, fmt.Errorf("invalid OTP. %d attempts remaining", remainingAttempts)
	}

	otpRecord.IsUsed = true
	if err := s.DB.Save(&otpRecord).Error; err != nil {
		return false, fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	return true, nil
}

// GetOTPStatus returns the latest unexpired, unused OTP for the email and
// purpose, or nil when none exists.
func (s *Service) GetOTPStatus(email string, purpose otp.OTPPurpose) (*otp.OTP, error) {
	var otpRecord otp.OTP

	err := s.DB.Where("email = ? AND purpose = ? AND is_used = false AND expires_at > ?",
		email, purpose, time.Now()).
		Order("created_at DESC").
		First(&otpRecord).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find OTP record: %w", err)
	}

	return &otpRecord, nil
}

// CleanupExpiredOTPs removes expired OTP records from the database
func (s *Service) CleanupExpiredOTPs() error {
	return s.DB.Where("expires_at < ?", time.Now()).Delete(&otp.OTP{}).Error
}
