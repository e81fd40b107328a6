package constants

// Service tags offered on the booking form.
const (
	ServiceSocialStrategy     = "social-strategy"
	ServiceContentProduction  = "content-production"
	ServiceSocialAds          = "social-ads"
	ServiceVideoProduction    = "video-production"
	ServicePropertyCampaign   = "property-campaign"
	ServiceAnalyticsReporting = "analytics-reporting"
)

// ServiceCatalog lists every bookable service tag.
var ServiceCatalog = []string{
	ServiceSocialStrategy,
	ServiceContentProduction,
	ServiceSocialAds,
	ServiceVideoProduction,
	ServicePropertyCampaign,
	ServiceAnalyticsReporting,
}

// IsValidService reports whether tag is in the service catalog.
func IsValidService(tag string) bool {
	for _, s := range ServiceCatalog {
		if s == tag {
			return true
		}
	}
	return false
}

// Country describes a supported booking-form country: the dial code
// prefixed onto stored mobile numbers and the currency used to tag budgets.
type Country struct {
	DialCode string
	Currency string
}

// Countries maps ISO 3166-1 alpha-2 codes to their dial code and currency.
var Countries = map[string]Country{
	"IN": {DialCode: "+91", Currency: "INR"},
	"US": {DialCode: "+1", Currency: "USD"},
	"GB": {DialCode: "+44", Currency: "GBP"},
	"AE": {DialCode: "+971", Currency: "AED"},
	"AU": {DialCode: "+61", Currency: "AUD"},
	"CA": {DialCode: "+1", Currency: "CAD"},
	"SG": {DialCode: "+65", Currency: "SGD"},
}

// BudgetRanges lists the range labels the booking form offers.
var BudgetRanges = []string{
	"under-10k",
	"10k-25k",
	"25k-50k",
	"50k-100k",
	"100k-plus",
}

// IsValidBudgetRange reports whether label is an offered budget range.
func IsValidBudgetRange(label string) bool {
	for _, r := range BudgetRanges {
		if r == label {
			return true
		}
	}
	return false
}
