package budget

import (
	"testing"

	"adwhey-portal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParseRoundTrip(t *testing.T) {
	for code := range constants.Countries {
		for _, rangeLabel := range constants.BudgetRanges {
			currency := CurrencyForCountry(code)
			tag := BuildStoredBudget(currency, rangeLabel)

			parsed := ParseStoredBudget(tag)
			require.NotNil(t, parsed, "tag %q should parse", tag)
			assert.Equal(t, currency, parsed.Currency)
			assert.Equal(t, rangeLabel, parsed.Range)
		}
	}
}

func TestParseStoredBudgetRejectsUntagged(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{name: "empty", tag: ""},
		{name: "legacy untagged range", tag: "10k-25k"},
		{name: "missing currency", tag: ":10k-25k"},
		{name: "missing range", tag: "INR:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseStoredBudget(tt.tag))
		})
	}
}

func TestCurrencyForCountry(t *testing.T) {
	assert.Equal(t, "INR", CurrencyForCountry("IN"))
	assert.Equal(t, "USD", CurrencyForCountry("US"))
	assert.Equal(t, "USD", CurrencyForCountry("us"), "country codes are case-insensitive")
	assert.Equal(t, "INR", CurrencyForCountry("ZZ"), "unknown countries fall back to INR")
}

func TestConvertRangeToINR(t *testing.T) {
	tests := []struct {
		name       string
		currency   string
		rangeLabel string
		want       string
	}{
		{name: "inr passthrough range", currency: "INR", rangeLabel: "10k-25k", want: "₹10k - ₹25k"},
		{name: "inr under", currency: "INR", rangeLabel: "under-10k", want: "under ₹10k"},
		{name: "inr plus", currency: "INR", rangeLabel: "100k-plus", want: "₹1L+"},
		{name: "usd under converts to lakhs", currency: "USD", rangeLabel: "under-10k", want: "under ₹8.3L"},
		{name: "aud range", currency: "AUD", rangeLabel: "50k-100k", want: "₹27.5L - ₹55L"},
		{name: "lowercase currency", currency: "usd", rangeLabel: "under-10k", want: "under ₹8.3L"},
		{name: "unknown currency unchanged", currency: "XYZ", rangeLabel: "10k-25k", want: "10k-25k"},
		{name: "unparseable label unchanged", currency: "INR", rangeLabel: "call-us", want: "call-us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertRangeToINR(tt.currency, tt.rangeLabel))
		})
	}
}

func TestConvertRangeToINRCoversCatalog(t *testing.T) {
	// Every offered range must convert for every supported currency;
	// an unchanged label here would mean a bad catalog entry.
	for _, c := range constants.Countries {
		for _, rangeLabel := range constants.BudgetRanges {
			got := ConvertRangeToINR(c.Currency, rangeLabel)
			assert.NotEqual(t, rangeLabel, got, "currency %s range %s", c.Currency, rangeLabel)
			assert.Contains(t, got, "₹")
		}
	}
}
