package booking

import (
	"time"
)

// BookingStatusEvent records one admin-driven status change. Status moves
// are direct sets with no enforced ordering, so the event trail is the only
// way to reconstruct how a lead was triaged.
type BookingStatusEvent struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uint `gorm:"not null;index" json:"booking_id"`

	FromStatus BookingStatus `gorm:"type:varchar(50);not null" json:"from_status"`
	ToStatus   BookingStatus `gorm:"type:varchar(50);not null" json:"to_status"`

	ChangedBy string    `gorm:"type:varchar(255);not null" json:"changed_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
