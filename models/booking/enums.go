package booking

// BookingStatus is the triage state an admin moves a lead through.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusContacted BookingStatus = "contacted"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusContacted, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the booking is in its terminal state
func (bs BookingStatus) IsCompleted() bool {
	return bs == BookingStatusCompleted
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusContacted,
		BookingStatusConfirmed,
		BookingStatusCompleted,
	}
}
