package domain

// Country identifies the issuing jurisdiction of a national identifier.
// The zero value is CountryUnknown.
type Country string

// Supported countries.
const (
	CountryUnknown Country = ""
	CountryCA      Country = "CA"
	CountryUS      Country = "US"
)

var validCountries = map[Country]bool{
	CountryCA: true,
	CountryUS: true,
}

// ParseCountry maps external input onto a Country. Input is case-insensitive.
// Unrecognized input yields CountryUnknown rather than an error; callers at the
// public boundary treat unknown combinations as "nothing to do".
func ParseCountry(s string) Country {
	c := Country(NormalizeCode(s))
	if !validCountries[c] {
		return CountryUnknown
	}
	return c
}

// IsValid reports whether c is a supported country.
func (c Country) IsValid() bool {
	return validCountries[c]
}

func (c Country) String() string {
	return string(c)
}

// SupportedCountries returns every supported country.
func SupportedCountries() []Country {
	return []Country{CountryCA, CountryUS}
}
