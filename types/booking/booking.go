package booking

import (
	"fmt"
	"regexp"
	"strings"

	"adwhey-portal/constants"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{6,15}$`)
)

// BookingSubmitRequest is the payload for creating or editing a booking.
// Mobile carries the local digits only; the dial code is derived from
// Country and attached server-side.
type BookingSubmitRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"required,min=6,max=15"`
	Country string `json:"country" validate:"required,len=2"`
	Service string `json:"service" validate:"required"`
	Budget  string `json:"budget" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

func (b BookingSubmitRequest) Validate() error {
	if len(strings.TrimSpace(b.Name)) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if !emailPattern.MatchString(b.Email) {
		return fmt.Errorf("a valid email is required")
	}
	if !mobilePattern.MatchString(strings.TrimSpace(b.Mobile)) {
		return fmt.Errorf("mobile must be at least 6 digits")
	}
	if _, ok := constants.Countries[strings.ToUpper(b.Country)]; !ok {
		return fmt.Errorf("country %q is not supported", b.Country)
	}
	if !constants.IsValidService(b.Service) {
		return fmt.Errorf("service is required")
	}
	if !constants.IsValidBudgetRange(b.Budget) {
		return fmt.Errorf("budget is required")
	}
	if len(b.Message) < 10 {
		return fmt.Errorf("message must be at least 10 characters")
	}
	return nil
}

// BookingStatusUpdateRequest is the payload for the admin status set.
type BookingStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted confirmed completed"`
}

func (b BookingStatusUpdateRequest) Validate() error {
	if b.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
