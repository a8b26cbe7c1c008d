package region

import (
	"slices"
	"strings"

	"natid/pkg/domain"
)

// Province is a Canadian province or territory code as used by SIN issuance.
// NF and YU are the historical codes for Newfoundland and Yukon; ZZ marks
// numbers issued to temporary residents.
type Province string

// ProvinceUnknown is the fallback for unrecognized hints.
const ProvinceUnknown Province = ""

const (
	ProvinceNB Province = "NB"
	ProvinceNF Province = "NF"
	ProvinceNS Province = "NS"
	ProvincePE Province = "PE"
	ProvinceQC Province = "QC"
	ProvinceON Province = "ON"
	ProvinceAB Province = "AB"
	ProvinceMB Province = "MB"
	ProvinceSK Province = "SK"
	ProvinceNT Province = "NT"
	ProvinceNU Province = "NU"
	ProvinceBC Province = "BC"
	ProvinceYU Province = "YU"
	ProvinceZZ Province = "ZZ"
)

// sinDigitProvinces maps a SIN leading digit to the provinces sharing it.
// Digits 0 and 8 are reserved and have no entry.
var sinDigitProvinces = map[byte][]Province{
	'1': {ProvinceNB, ProvinceNF, ProvinceNS, ProvincePE},
	'2': {ProvinceQC},
	'3': {ProvinceQC},
	'4': {ProvinceON},
	'5': {ProvinceON},
	'6': {ProvinceAB, ProvinceMB, ProvinceSK, ProvinceNT, ProvinceNU},
	'7': {ProvinceBC, ProvinceYU},
	'9': {ProvinceZZ},
}

// provinceDigits is the reverse of sinDigitProvinces, built once at init.
var provinceDigits = func() map[Province][]int {
	m := make(map[Province][]int)
	for d := byte('0'); d <= '9'; d++ {
		for _, p := range sinDigitProvinces[d] {
			m[p] = append(m[p], int(d-'0'))
		}
	}
	return m
}()

// fallbackSINDigits are drawn from when the hint is empty or unknown.
var fallbackSINDigits = []int{1, 2, 3, 4, 5, 6, 7}

// IsReservedSINDigit reports whether d can never lead a valid SIN.
func IsReservedSINDigit(d byte) bool {
	return d == '0' || d == '8'
}

// ProvincesForDigit returns the provinces sharing SIN leading digit d, or nil.
func ProvincesForDigit(d byte) []Province {
	return slices.Clone(sinDigitProvinces[d])
}

// SINRegion returns the comma-joined province group for leading digit d
// ("NB,NF,NS,PE"), or "" for reserved or non-digit input.
func SINRegion(d byte) string {
	provinces := sinDigitProvinces[d]
	codes := make([]string, len(provinces))
	for i, p := range provinces {
		codes[i] = string(p)
	}
	return strings.Join(codes, ",")
}

// SINLeadingDigits returns the candidate leading digits for a province hint.
// ProvinceUnknown yields 1 through 7.
func SINLeadingDigits(p Province) []int {
	if digits, ok := provinceDigits[p]; ok {
		return slices.Clone(digits)
	}
	return slices.Clone(fallbackSINDigits)
}

// ParseProvince maps a hint onto a Province, case-insensitively.
func ParseProvince(s string) Province {
	p := Province(domain.NormalizeCode(s))
	if _, ok := provinceDigits[p]; !ok {
		return ProvinceUnknown
	}
	return p
}

// Provinces returns every province code accepted as a hint, sorted.
func Provinces() []Province {
	out := make([]Province, 0, len(provinceDigits))
	for p := range provinceDigits {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
