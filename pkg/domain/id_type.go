package domain

// IDType identifies the kind of national identifier.
type IDType string

// Supported identifier kinds.
const (
	IDTypeUnknown IDType = ""
	IDTypeSIN     IDType = "SIN" // Canadian Social Insurance Number
	IDTypeSSN     IDType = "SSN" // US Social Security Number
)

// issuers ties each identifier kind to the only country that issues it.
var issuers = map[IDType]Country{
	IDTypeSIN: CountryCA,
	IDTypeSSN: CountryUS,
}

// ParseIDType maps external input onto an IDType, case-insensitively.
// Unrecognized input yields IDTypeUnknown.
func ParseIDType(s string) IDType {
	t := IDType(NormalizeCode(s))
	if _, ok := issuers[t]; !ok {
		return IDTypeUnknown
	}
	return t
}

// IssuedBy reports whether t is issued by country c.
func (t IDType) IssuedBy(c Country) bool {
	issuer, ok := issuers[t]
	return ok && issuer == c
}

func (t IDType) String() string {
	return string(t)
}

// DefaultIDType returns the identifier kind issued by c, or IDTypeUnknown.
func DefaultIDType(c Country) IDType {
	for t, issuer := range issuers {
		if issuer == c {
			return t
		}
	}
	return IDTypeUnknown
}
