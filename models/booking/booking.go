package booking

import (
	"time"
)

// Booking represents a lead/inquiry record submitted through the booking form.
// Mobile is always stored with its dial code prefix ("+91 9876543210") and
// Budget is always stored as a currency-tagged range ("INR:10k-25k").
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null;index" json:"email"`
	Mobile  string `gorm:"type:varchar(30)" json:"mobile"`
	Service string `gorm:"type:varchar(100);not null" json:"service"`
	Budget  string `gorm:"type:varchar(100);not null" json:"budget"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status BookingStatus `gorm:"type:varchar(50);not null" json:"status"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string     `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
