// Package formats implements the closed set of branded string formats
// spec.md §6 names: validators for strings tagged with a special name,
// checked against a fixed grammar rather than a user-supplied pattern.
//
// No example repo in the retrieval pack carries a dedicated string-format or
// struct-validation library (the closest candidates, go-playground/validator
// pulled in transitively by unrelated HTTP middleware, are never imported
// for this purpose by any pack repo's own code); the fixed grammars here are
// short enough, and few enough, that reaching for an external validator
// framework would add a dependency without displacing any meaningful amount
// of hand-written logic, so this one corner of the module stays on
// regexp/strconv/time from the standard library.
package formats

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// "+1 followed by exactly 10 digits", per spec.md §6.
	phoneRe = regexp.MustCompile(`^\+1\d{10}$`)

	ssnRe    = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	postalRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	uuidRe   = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// "0, -?[1-9][0-9]*, or -?[0-9]+.[0-9]+", per spec.md §6.
	numericRe = regexp.MustCompile(`^(0|-?[1-9][0-9]*|-?[0-9]+\.[0-9]+)$`)

	usStates     = map[string]bool{}
	countryCodes = map[string]bool{}
)

func init() {
	for _, s := range []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		"DC",
	} {
		usStates[s] = true
	}
	for _, s := range []string{
		"AFG", "ALB", "DZA", "AND", "AGO", "ARG", "ARM", "AUS", "AUT", "AZE",
		"BHS", "BHR", "BGD", "BRB", "BLR", "BEL", "BLZ", "BEN", "BTN", "BOL",
		"BIH", "BWA", "BRA", "BRN", "BGR", "BFA", "BDI", "KHM", "CMR", "CAN",
		"CPV", "CAF", "TCD", "CHL", "CHN", "COL", "COM", "COG", "COD", "CRI",
		"HRV", "CUB", "CYP", "CZE", "DNK", "DJI", "DMA", "DOM", "ECU", "EGY",
		"SLV", "GNQ", "ERI", "EST", "SWZ", "ETH", "FJI", "FIN", "FRA", "GAB",
		"GMB", "GEO", "DEU", "GHA", "GRC", "GRD", "GTM", "GIN", "GNB", "GUY",
		"HTI", "HND", "HUN", "ISL", "IND", "IDN", "IRN", "IRQ", "IRL", "ISR",
		"ITA", "JAM", "JPN", "JOR", "KAZ", "KEN", "KIR", "KWT", "KGZ", "LAO",
		"LVA", "LBN", "LSO", "LBR", "LBY", "LIE", "LTU", "LUX", "MDG", "MWI",
		"MYS", "MDV", "MLI", "MLT", "MHL", "MRT", "MUS", "MEX", "FSM", "MDA",
		"MCO", "MNG", "MNE", "MAR", "MOZ", "MMR", "NAM", "NRU", "NPL", "NLD",
		"NZL", "NIC", "NER", "NGA", "PRK", "MKD", "NOR", "OMN", "PAK", "PLW",
		"PAN", "PNG", "PRY", "PER", "PHL", "POL", "PRT", "QAT", "ROU", "RUS",
		"RWA", "KNA", "LCA", "VCT", "WSM", "SMR", "STP", "SAU", "SEN", "SRB",
		"SYC", "SLE", "SGP", "SVK", "SVN", "SLB", "SOM", "ZAF", "KOR", "SSD",
		"ESP", "LKA", "SDN", "SUR", "SWE", "CHE", "SYR", "TJK", "TZA", "THA",
		"TLS", "TGO", "TON", "TTO", "TUN", "TUR", "TKM", "TUV", "UGA", "UKR",
		"ARE", "GBR", "USA", "URY", "UZB", "VUT", "VAT", "VEN", "VNM", "YEM",
		"ZMB", "ZWE",
	} {
		countryCodes[s] = true
	}
}

// Validate checks s against the grammar named by format. ok is false and msg
// explains why when s does not match; format names outside the closed set
// are reported as a failure too (the schema referenced an unknown format).
func Validate(format, s string) (msg string, ok bool) {
	switch format {
	case "IsoDate":
		return validateIsoDate(s)
	case "IsoDatetime":
		return validateIsoDatetime(s)
	case "TrimmedString":
		return validateTrimmedString(s)
	case "Email":
		return validateEmail(s)
	case "PhoneNumber":
		return validateRegex(phoneRe, s, "+1 followed by exactly 10 digits")
	case "SocialSecurityNumber":
		return validateRegex(ssnRe, s, "a social security number of the form 123-45-6789")
	case "PostalCode":
		return validateRegex(postalRe, s, "a US postal code of the form 12345 or 12345-6789")
	case "Uuid":
		return validateRegex(uuidRe, s, "a UUID")
	case "NumericString":
		return validateNumericString(s)
	case "DollarAmount":
		return validateDollarAmount(s)
	case "UsState":
		return validateUsState(s)
	case "CountryCode":
		return validateCountryCode(s)
	default:
		return "unknown string format '" + format + "'", false
	}
}

func validateRegex(re *regexp.Regexp, s, want string) (string, bool) {
	if re.MatchString(s) {
		return "", true
	}
	return "expected " + want + ", got '" + s + "'", false
}

func validateIsoDate(s string) (string, bool) {
	if !isoDateRe.MatchString(s) {
		return "expected an ISO-8601 date (YYYY-MM-DD), got '" + s + "'", false
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "expected an ISO-8601 date (YYYY-MM-DD), got '" + s + "'", false
	}
	return "", true
}

// validateIsoDatetime requires at least hours and minutes, rejecting a bare
// date, per spec.md §6.
func validateIsoDatetime(s string) (string, bool) {
	formats := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05"}
	for _, f := range formats {
		if _, err := time.Parse(f, s); err == nil {
			return "", true
		}
	}
	return "expected an ISO-8601 datetime with at least hours and minutes, got '" + s + "'", false
}

func validateTrimmedString(s string) (string, bool) {
	if s == "" {
		return "expected a non-empty string", false
	}
	if len(s) > 100 {
		return "expected at most 100 characters, got " + strconv.Itoa(len(s)), false
	}
	if s != strings.TrimSpace(s) {
		return "expected no leading or trailing whitespace, got '" + s + "'", false
	}
	return "", true
}

func validateEmail(s string) (string, bool) {
	if s == "" {
		return "expected a non-empty string", false
	}
	if s != strings.TrimSpace(s) {
		return "expected no leading or trailing whitespace, got '" + s + "'", false
	}
	if !emailRe.MatchString(s) {
		return "expected a valid email address, got '" + s + "'", false
	}
	return "", true
}

func validateNumericString(s string) (string, bool) {
	if !numericRe.MatchString(s) {
		return "expected a numeric string (0, -?[1-9][0-9]*, or -?[0-9]+.[0-9]+), got '" + s + "'", false
	}
	return "", true
}

// validateDollarAmount requires a NumericString that is non-negative and has
// at most two fractional digits, per spec.md §6.
func validateDollarAmount(s string) (string, bool) {
	if msg, ok := validateNumericString(s); !ok {
		return msg, false
	}
	if strings.HasPrefix(s, "-") {
		return "expected a non-negative amount, got '" + s + "'", false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if len(s)-i-1 > 2 {
			return "expected at most two fractional digits, got '" + s + "'", false
		}
	}
	return "", true
}

func validateUsState(s string) (string, bool) {
	if !usStates[strings.ToUpper(s)] {
		return "expected a two-letter US state abbreviation, got '" + s + "'", false
	}
	return "", true
}

func validateCountryCode(s string) (string, bool) {
	if !countryCodes[strings.ToUpper(s)] {
		return "expected an ISO 3166-1 alpha-3 country code, got '" + s + "'", false
	}
	return "", true
}
