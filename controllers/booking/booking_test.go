package booking

import (
	"testing"

	bookingModel "adwhey-portal/models/booking"
	bookingTypes "adwhey-portal/types/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest() bookingTypes.BookingSubmitRequest {
	return bookingTypes.BookingSubmitRequest{
		Name:    "Asha Rao",
		Email:   "Asha@Example.COM ",
		Mobile:  "9876543210",
		Country: "IN",
		Service: "social-ads",
		Budget:  "10k-25k",
		Message: "Need a lead-gen campaign for two launches.",
	}
}

func TestBuildRecordNormalization(t *testing.T) {
	rec, err := buildRecord(submitRequest())
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", rec.Name)
	assert.Equal(t, "asha@example.com", rec.Email, "email is stored trimmed and lowercased")
	assert.Equal(t, "+91 9876543210", rec.Mobile, "dial code is attached from the country")
	assert.Equal(t, "INR:10k-25k", rec.Budget, "budget is stored currency-tagged")
	assert.Equal(t, bookingModel.BookingStatusPending, rec.Status)
}

func TestBuildRecordCurrencyPerCountry(t *testing.T) {
	tests := []struct {
		country    string
		wantMobile string
		wantBudget string
	}{
		{country: "IN", wantMobile: "+91 9876543210", wantBudget: "INR:10k-25k"},
		{country: "US", wantMobile: "+1 9876543210", wantBudget: "USD:10k-25k"},
		{country: "GB", wantMobile: "+44 9876543210", wantBudget: "GBP:10k-25k"},
		{country: "AE", wantMobile: "+971 9876543210", wantBudget: "AED:10k-25k"},
		{country: "sg", wantMobile: "+65 9876543210", wantBudget: "SGD:10k-25k"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			req := submitRequest()
			req.Country = tt.country

			rec, err := buildRecord(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMobile, rec.Mobile)
			assert.Equal(t, tt.wantBudget, rec.Budget)
		})
	}
}

func TestBuildRecordUnknownCountry(t *testing.T) {
	req := submitRequest()
	req.Country = "ZZ"

	_, err := buildRecord(req)
	assert.Error(t, err)
}
