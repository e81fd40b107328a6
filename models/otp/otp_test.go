package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveOTP() OTP {
	return OTP{
		Email:      "client@example.com",
		OTPCode:    "123456",
		Purpose:    OTPPurposePasswordReset,
		MaxRetries: 3,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
	}
}

func TestIsExpired(t *testing.T) {
	o := liveOTP()
	assert.False(t, o.IsExpired())

	o.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, o.IsExpired())
	assert.False(t, o.IsValid())
}

func TestIsValid(t *testing.T) {
	o := liveOTP()
	assert.True(t, o.IsValid())

	used := liveOTP()
	used.IsUsed = true
	assert.False(t, used.IsValid())

	blocked := liveOTP()
	blocked.IsBlocked = true
	assert.False(t, blocked.IsValid())
}

func TestIncrementRetryBlocksAtMax(t *testing.T) {
	o := liveOTP()

	o.IncrementRetry()
	o.IncrementRetry()
	assert.False(t, o.IsBlocked)
	assert.True(t, o.CanRetry())

	o.IncrementRetry()
	assert.True(t, o.IsBlocked)
	assert.False(t, o.CanRetry())
	require.NotNil(t, o.BlockedUntil)

	// The block lapses after 15 minutes.
	until := *o.BlockedUntil
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), until, time.Minute)
}

func TestIsCurrentlyBlocked(t *testing.T) {
	o := liveOTP()
	assert.False(t, o.IsCurrentlyBlocked())

	o.IsBlocked = true
	o.BlockedUntil = nil
	assert.True(t, o.IsCurrentlyBlocked(), "nil BlockedUntil never lapses")

	past := time.Now().Add(-time.Minute)
	o.BlockedUntil = &past
	assert.False(t, o.IsCurrentlyBlocked(), "lapsed block no longer applies")

	future := time.Now().Add(time.Minute)
	o.BlockedUntil = &future
	assert.True(t, o.IsCurrentlyBlocked())
}

func TestReset(t *testing.T) {
	o := liveOTP()
	o.IncrementRetry()
	o.IncrementRetry()
	o.IncrementRetry()
	require.True(t, o.IsBlocked)

	o.Reset()
	assert.Zero(t, o.RetryCount)
	assert.False(t, o.IsBlocked)
	assert.Nil(t, o.BlockedUntil)
	assert.Nil(t, o.LastAttemptAt)
	assert.True(t, o.CanRetry())
}
