// Package export materializes the admin view's datasets as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"time"

	bookingModel "adwhey-portal/models/booking"
	userModel "adwhey-portal/models/user"
	"adwhey-portal/services/budget"
)

// Tab names accepted by the export endpoint.
const (
	TabBookings = "bookings"
	TabUsers    = "users"
)

// Filename builds the download name: "<tab>_<ISO-date>.csv".
func Filename(tab string, at time.Time) string {
	return tab + "_" + at.Format("2006-01-02") + ".csv"
}

// BookingsCSV renders the bookings tab. The stored budget tag is split
// into its original currency/range plus the approximate INR equivalent;
// legacy untagged budgets appear as-is in both budget columns.
func BookingsCSV(bookings []bookingModel.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Email", "Mobile", "Service", "Budget(INR)", "Budget(Original)", "Status", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, b := range bookings {
		inr := b.Budget
		original := b.Budget
		if parsed := budget.ParseStoredBudget(b.Budget); parsed != nil {
			inr = budget.ConvertRangeToINR(parsed.Currency, parsed.Range)
			original = parsed.Currency + " " + parsed.Range
		}
		row := []string{
			b.Name,
			b.Email,
			b.Mobile,
			b.Service,
			inr,
			original,
			b.Status.String(),
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// UsersCSV renders the users tab.
func UsersCSV(users []userModel.User) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Email", "Full Name", "Company", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, u := range users {
		row := []string{
			u.Email,
			u.FullName,
			u.CompanyName,
			u.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
