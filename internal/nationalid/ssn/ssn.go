// Package ssn formats, generates and validates US Social Security Numbers.
//
// An SSN is AAA-GG-SSSS: a 3-digit area number (historically the issuing
// state), a 2-digit group code and a 4-digit serial. There is no check digit.
package ssn

import (
	"fmt"
	"strconv"

	"natid/internal/nationalid/models"
	"natid/internal/nationalid/region"
	"natid/pkg/platform/random"
)

const (
	maxRandomArea = 899
	// areaSubstitute replaces a randomly drawn 666.
	areaSubstitute = 601
)

// Format renders raw as DDD-DD-DDDD. Malformed input is formatted best-effort.
func Format(raw string) string {
	return models.FormatGroups(raw, 3, 2, 4)
}

// Generate synthesizes an SSN whose area number lies in the hinted state's
// ranges. For an empty or unknown hint the area is drawn from 1-899, with 666
// replaced by 601. Group (1-99) and serial (1-9999) are never all zeros.
//
// Generated numbers are not guaranteed to validate: areas drawn for an unknown
// hint may fall in unassigned spans and resolve to an empty region.
func Generate(src random.Source, hint string) string {
	area := generateArea(src, region.ParseState(hint))
	group := random.Between(src, 1, 99)
	serial := random.Between(src, 1, 9999)
	return fmt.Sprintf("%03d%02d%04d", area, group, serial)
}

func generateArea(src random.Source, state region.State) int {
	if ranges := region.AreaRanges(state); len(ranges) > 0 {
		r := random.Pick(src, ranges)
		return random.Between(src, r.Low, r.High)
	}
	area := random.Between(src, 1, maxRandomArea)
	if area == 666 {
		area = areaSubstitute
	}
	return area
}

// Validate checks raw structurally and resolves the issuing state from the
// area number. Checks run in order: length, area, group, serial.
func Validate(raw string) models.ValidationOutcome {
	n := models.Normalize(raw)
	if len(n) != models.Length {
		return models.Invalid(n, models.ErrorInvalidLength)
	}
	area, group, serial := n[:3], n[3:5], n[5:]
	areaNum, _ := strconv.Atoi(area)
	if !validArea(area, areaNum) {
		return models.Invalid(n, models.ErrorInvalidAreaNumber)
	}
	if group == "00" {
		return models.Invalid(n, models.ErrorInvalidGroupCode)
	}
	if serial == "0000" {
		return models.Invalid(n, models.ErrorInvalidSerialNumber)
	}
	return models.ValidationOutcome{
		Valid:            true,
		NormalizedNumber: n,
		Region:           string(region.StateForArea(areaNum)),
	}
}

func validArea(area string, n int) bool {
	return area != "000" && area != "666" && n < 900
}
