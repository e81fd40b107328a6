package user

import (
	"time"
)

// User holds both the sign-in credential and the self-service profile.
// Profile fields are optional and filled in lazily by the profile editor.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	FullName    string `gorm:"type:varchar(255)" json:"full_name"`
	CompanyName string `gorm:"type:varchar(255)" json:"company_name"`
	Phone       string `gorm:"type:varchar(20)" json:"phone"`
	Bio         string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
