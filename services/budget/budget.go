// Package budget normalizes booking budgets. A budget is stored as a
// currency-tagged range ("INR:10k-25k") so the admin view can always tell
// what currency a range was quoted in. The INR conversion uses a fixed
// illustrative rate table, not a live exchange-rate feed.
package budget

import (
	"fmt"
	"strconv"
	"strings"

	"adwhey-portal/constants"
)

// StoredBudget is the decoded form of a budget tag.
type StoredBudget struct {
	Currency string
	Range    string
}

// Fixed approximate rates to INR used for admin reporting.
var inrRates = map[string]float64{
	"INR": 1,
	"USD": 83,
	"GBP": 105,
	"AED": 23,
	"AUD": 55,
	"CAD": 61,
	"SGD": 62,
}

// BuildStoredBudget composes the stored "<currency>:<range>" tag.
func BuildStoredBudget(currency, rangeLabel string) string {
	return currency + ":" + rangeLabel
}

// ParseStoredBudget decodes a stored budget tag. Returns nil for legacy
// untagged values or anything else that is not a two-part tag.
func ParseStoredBudget(tag string) *StoredBudget {
	parts := strings.SplitN(tag, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	return &StoredBudget{Currency: parts[0], Range: parts[1]}
}

// CurrencyForCountry returns the budget currency for a booking-form
// country code, defaulting to INR for unknown countries.
func CurrencyForCountry(country string) string {
	if c, ok := constants.Countries[strings.ToUpper(country)]; ok {
		return c.Currency
	}
	return "INR"
}

// ConvertRangeToINR renders a range label quoted in currency as an
// approximate INR display string. Range labels it cannot parse (or
// currencies without a rate) come back unchanged.
func ConvertRangeToINR(currency, rangeLabel string) string {
	rate, ok := inrRates[strings.ToUpper(currency)]
	if !ok {
		return rangeLabel
	}

	switch {
	case strings.HasPrefix(rangeLabel, "under-"):
		v, ok := parseAmount(strings.TrimPrefix(rangeLabel, "under-"))
		if !ok {
			return rangeLabel
		}
		return "under " + formatINR(v*rate)
	case strings.HasSuffix(rangeLabel, "-plus"):
		v, ok := parseAmount(strings.TrimSuffix(rangeLabel, "-plus"))
		if !ok {
			return rangeLabel
		}
		return formatINR(v*rate) + "+"
	default:
		parts := strings.SplitN(rangeLabel, "-", 2)
		if len(parts) != 2 {
			return rangeLabel
		}
		lo, okLo := parseAmount(parts[0])
		hi, okHi := parseAmount(parts[1])
		if !okLo || !okHi {
			return rangeLabel
		}
		return formatINR(lo*rate) + " - " + formatINR(hi*rate)
	}
}

// parseAmount reads a form amount like "10k" or "25000".
func parseAmount(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	mult := 1.0
	if strings.HasSuffix(s, "k") {
		mult = 1000
		s = strings.TrimSuffix(s, "k")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * mult, true
}

// formatINR renders an amount in Indian reading units: thousands (k),
// lakhs (L) and crores (Cr).
func formatINR(v float64) string {
	switch {
	case v >= 1e7:
		return "₹" + trimZero(fmt.Sprintf("%.1f", v/1e7)) + "Cr"
	case v >= 1e5:
		return "₹" + trimZero(fmt.Sprintf("%.1f", v/1e5)) + "L"
	case v >= 1e3:
		return "₹" + trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	default:
		return "₹" + trimZero(fmt.Sprintf("%.0f", v))
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
