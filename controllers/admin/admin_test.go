package admin

import (
	"testing"

	bookingModel "adwhey-portal/models/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusUpdatePayloadTouchesOnlyStatusColumns(t *testing.T) {
	payload := statusUpdatePayload(bookingModel.BookingStatusConfirmed, "admin@example.com")

	require.Len(t, payload, 2, "a status change must not touch any other booking field")
	assert.Equal(t, bookingModel.BookingStatusConfirmed, payload["status"])
	assert.Equal(t, "admin@example.com", payload["updated_by"])
}

func TestMatchesSearch(t *testing.T) {
	b := bookingModel.Booking{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Mobile:  "+91 9876543210",
		Service: "social-ads",
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term matches everything", term: "", want: true},
		{name: "name substring", term: "asha", want: true},
		{name: "uppercase term", term: "ASHA", want: true},
		{name: "email substring", term: "@example", want: true},
		{name: "mobile substring", term: "98765", want: true},
		{name: "service substring", term: "ads", want: true},
		{name: "no hit", term: "zzz", want: false},
		{name: "message field is not searched", term: "budget", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSearch(b, tt.term))
		})
	}
}
