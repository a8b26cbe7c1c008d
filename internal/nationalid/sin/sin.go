// Package sin formats, generates and validates Canadian Social Insurance Numbers.
//
// A SIN is nine digits: a leading digit identifying the issuing province
// group, seven body digits and a mod-10 check digit (see package checksum).
package sin

import (
	"natid/internal/nationalid/checksum"
	"natid/internal/nationalid/models"
	"natid/internal/nationalid/region"
	"natid/pkg/platform/random"
)

// Format renders raw as DDD-DDD-DDD. Malformed input is formatted best-effort.
func Format(raw string) string {
	return models.FormatGroups(raw, 3, 3, 3)
}

// Generate synthesizes a SIN whose leading digit matches the province hint.
// An empty or unknown hint picks a leading digit from 1 through 7. Body digits
// are drawn from 1-9. The result always passes Validate.
func Generate(src random.Source, hint string) string {
	digits := make([]byte, 0, models.Length)
	lead := random.Pick(src, region.SINLeadingDigits(region.ParseProvince(hint)))
	digits = append(digits, byte('0'+lead))
	for len(digits) < models.Length-1 {
		digits = append(digits, byte('0'+random.Between(src, 1, 9)))
	}
	digits = append(digits, checksum.CheckDigit(string(digits)))
	return string(digits)
}

// Validate checks raw structurally and resolves its province group.
//
// A reserved leading digit (0 or 8) reports ErrorInvalidCheckDigit before the
// checksum is examined. A checksum mismatch reports Valid=false with
// ErrorNone; callers must not read ErrorNone as success.
func Validate(raw string) models.ValidationOutcome {
	n := models.Normalize(raw)
	if len(n) != models.Length {
		return models.Invalid(n, models.ErrorInvalidLength)
	}
	if region.IsReservedSINDigit(n[0]) {
		return models.Invalid(n, models.ErrorInvalidCheckDigit)
	}
	if !checksum.IsValid(n, checksum.DefaultModulus) {
		return models.Invalid(n, models.ErrorNone)
	}
	return models.ValidationOutcome{
		Valid:            true,
		NormalizedNumber: n,
		Region:           region.SINRegion(n[0]),
	}
}
