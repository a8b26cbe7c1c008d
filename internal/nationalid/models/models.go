package models

import "strings"

// Length is the digit count of a well-formed SIN or SSN.
const Length = 9

// ErrorKind tags why a number failed structural validation. It carries no
// payload; callers map it to messages.
type ErrorKind int

const (
	// ErrorNone is also reported for a SIN whose check digit does not match.
	ErrorNone ErrorKind = iota
	ErrorInvalidLength
	// ErrorInvalidCheckDigit is reported for a SIN with reserved leading digit 0 or 8.
	ErrorInvalidCheckDigit
	ErrorInvalidAreaNumber
	ErrorInvalidGroupCode
	ErrorInvalidSerialNumber
)

var errorKindNames = map[ErrorKind]string{
	ErrorNone:                "",
	ErrorInvalidLength:       "invalid_length",
	ErrorInvalidCheckDigit:   "invalid_check_digit",
	ErrorInvalidAreaNumber:   "invalid_area_number",
	ErrorInvalidGroupCode:    "invalid_group_code",
	ErrorInvalidSerialNumber: "invalid_serial_number",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ValidationOutcome is the result of validating one number.
type ValidationOutcome struct {
	Valid            bool
	ErrorKind        ErrorKind
	NormalizedNumber string
	Region           string
}

// Invalid builds a failed outcome for the normalized number.
func Invalid(normalized string, kind ErrorKind) ValidationOutcome {
	return ValidationOutcome{ErrorKind: kind, NormalizedNumber: normalized}
}

// Normalize strips every character that is not an ASCII digit.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatGroups normalizes raw and joins consecutive digit groups of the given
// sizes with '-'. Groups are clipped to the digits available, so short input
// yields empty groups and surplus digits are dropped.
func FormatGroups(raw string, sizes ...int) string {
	digits := Normalize(raw)
	parts := make([]string, len(sizes))
	start := 0
	for i, size := range sizes {
		end := min(start+size, len(digits))
		if start < end {
			parts[i] = digits[start:end]
		}
		start += size
	}
	return strings.Join(parts, "-")
}

// Mask hides every digit except the last four, keeping separators in place:
// "123-45-6789" becomes "***-**-6789".
func Mask(s string) string {
	digits := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
		}
	}
	out := []byte(s)
	for i := 0; i < len(out) && digits > 4; i++ {
		if out[i] >= '0' && out[i] <= '9' {
			out[i] = '*'
			digits--
		}
	}
	return string(out)
}
