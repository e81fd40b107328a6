package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	bookingModel "adwhey-portal/models/booking"
	userModel "adwhey-portal/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, time.August, 29, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "bookings_2026-08-29.csv", Filename(TabBookings, at))
	assert.Equal(t, "users_2026-08-29.csv", Filename(TabUsers, at))
}

func TestBookingsCSV(t *testing.T) {
	created := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	bookings := []bookingModel.Booking{
		{
			Name:      "Asha Rao",
			Email:     "asha@example.com",
			Mobile:    "+91 9876543210",
			Service:   "social-ads",
			Budget:    "USD:under-10k",
			Status:    bookingModel.BookingStatusPending,
			CreatedAt: created,
		},
		{
			Name:      "Legacy Row",
			Email:     "legacy@example.com",
			Mobile:    "+91 9000000000",
			Service:   "social-strategy",
			Budget:    "10k-25k",
			Status:    bookingModel.BookingStatusConfirmed,
			CreatedAt: created,
		},
	}

	data, err := BookingsCSV(bookings)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Mobile", "Service", "Budget(INR)", "Budget(Original)", "Status", "Date"}, rows[0])

	tagged := rows[1]
	assert.Equal(t, "Asha Rao", tagged[0])
	assert.Equal(t, "under ₹8.3L", tagged[4])
	assert.Equal(t, "USD under-10k", tagged[5])
	assert.Equal(t, "pending", tagged[6])
	assert.Equal(t, created.Format(time.RFC3339), tagged[7])

	// Untagged legacy budgets ship as-is in both budget columns.
	legacy := rows[2]
	assert.Equal(t, "10k-25k", legacy[4])
	assert.Equal(t, "10k-25k", legacy[5])
	assert.Equal(t, "confirmed", legacy[6])
}

func TestUsersCSV(t *testing.T) {
	created := time.Date(2026, time.July, 15, 9, 0, 0, 0, time.UTC)
	users := []userModel.User{
		{
			FullName:    "Asha Rao",
			Email:       "asha@example.com",
			CompanyName: "Rao Estates",
			Phone:       "+91 9876543210",
			CreatedAt:   created,
		},
	}

	data, err := UsersCSV(users)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Email", "Full Name", "Company", "Date"}, rows[0])
	assert.Equal(t, []string{"asha@example.com", "Asha Rao", "Rao Estates", created.Format(time.RFC3339)}, rows[1])
}

func TestCSVHandlesEmptyDatasets(t *testing.T) {
	data, err := BookingsCSV(nil)
	require.NoError(t, err)
	assert.Len(t, parseCSV(t, data), 1, "header only")

	data, err = UsersCSV(nil)
	require.NoError(t, err)
	assert.Len(t, parseCSV(t, data), 1, "header only")
}
