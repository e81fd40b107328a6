package user

import (
	"fmt"
)

// ProfileSaveRequest is the payload for the self-service profile editor.
// Email is intentionally absent: it is an immutable display field sourced
// from the session.
type ProfileSaveRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,max=255"`
	CompanyName string `json:"company_name" validate:"omitempty,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Bio         string `json:"bio" validate:"omitempty"`
}

func (r ProfileSaveRequest) Validate() error {
	if len(r.FullName) > 255 {
		return fmt.Errorf("full name is too long")
	}
	if len(r.CompanyName) > 255 {
		return fmt.Errorf("company name is too long")
	}
	if len(r.Phone) > 20 {
		return fmt.Errorf("phone is too long")
	}
	return nil
}
