package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSINRegion(t *testing.T) {
	tests := []struct {
		digit byte
		want  string
	}{
		{'1', "NB,NF,NS,PE"},
		{'2', "QC"},
		{'3', "QC"},
		{'4', "ON"},
		{'5', "ON"},
		{'6', "AB,MB,SK,NT,NU"},
		{'7', "BC,YU"},
		{'9', "ZZ"},
		{'0', ""},
		{'8', ""},
		{'x', ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.digit), func(t *testing.T) {
			assert.Equal(t, tt.want, SINRegion(tt.digit))
		})
	}
}

func TestReservedSINDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		reserved := d == '0' || d == '8'
		assert.Equal(t, reserved, IsReservedSINDigit(d), string(d))
		assert.Equal(t, reserved, ProvincesForDigit(d) == nil, string(d))
	}
}

func TestSINLeadingDigits(t *testing.T) {
	tests := []struct {
		hint string
		want []int
	}{
		{"ON", []int{4, 5}},
		{"qc", []int{2, 3}},
		{"NB", []int{1}},
		{"NF", []int{1}},
		{"NS", []int{1}},
		{"PE", []int{1}},
		{"AB", []int{6}},
		{"NU", []int{6}},
		{"BC", []int{7}},
		{"YU", []int{7}},
		{"ZZ", []int{9}},
		{"", []int{1, 2, 3, 4, 5, 6, 7}},
		{"XX", []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			assert.Equal(t, tt.want, SINLeadingDigits(ParseProvince(tt.hint)))
		})
	}
}

func TestSINLeadingDigitsReturnsCopy(t *testing.T) {
	digits := SINLeadingDigits(ProvinceON)
	digits[0] = 0
	assert.Equal(t, []int{4, 5}, SINLeadingDigits(ProvinceON))
}

func TestProvinces(t *testing.T) {
	provinces := Provinces()
	assert.Len(t, provinces, 14)
	assert.Equal(t, ProvinceAB, provinces[0])
	assert.Contains(t, provinces, ProvinceZZ)
}

func TestStateForArea(t *testing.T) {
	tests := []struct {
		area int
		want State
	}{
		{0, StateUnknown},
		{1, "NH"},
		{3, "NH"},
		{4, "ME"},
		{123, "NY"},
		{134, "NY"},
		{135, "NJ"},
		{520, "WY"},
		{525, "NM"},
		{574, "AK"},
		{580, "VI"},
		{585, "NM"},
		{586, "PI"},
		{601, "AZ"},
		{649, "NM"},
		{650, StateUnknown},
		{700, StateUnknown},
		{728, StateUnknown},
		{899, StateUnknown},
		{999, StateUnknown},
		{-1, StateUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StateForArea(tt.area), "area %d", tt.area)
	}
}

// The table must cover 001-649 without gaps or overlaps.
func TestAreaTableIsContiguous(t *testing.T) {
	require.Equal(t, 1, areaRanges[0].Low)
	for i := 1; i < len(areaRanges); i++ {
		prev, cur := areaRanges[i-1], areaRanges[i]
		require.LessOrEqual(t, cur.Low, cur.High, "range %d", i)
		require.Equal(t, prev.High+1, cur.Low, "gap or overlap before %v", cur)
	}
	require.Equal(t, 649, areaRanges[len(areaRanges)-1].High)
}

func TestAreaRanges(t *testing.T) {
	multi := map[State][]AreaRange{
		"AZ": {{526, 527, "AZ"}, {600, 601, "AZ"}},
		"CA": {{545, 573, "CA"}, {602, 626, "CA"}},
		"FL": {{261, 267, "FL"}, {589, 595, "FL"}},
		"MS": {{425, 428, "MS"}, {587, 588, "MS"}},
		"NM": {{525, 525, "NM"}, {585, 585, "NM"}, {648, 649, "NM"}},
		"PR": {{581, 584, "PR"}, {596, 599, "PR"}},
		"TX": {{449, 467, "TX"}, {627, 645, "TX"}},
		"UT": {{528, 529, "UT"}, {646, 647, "UT"}},
	}
	for state, want := range multi {
		assert.Equal(t, want, AreaRanges(state), string(state))
	}

	assert.Equal(t, []AreaRange{{50, 134, "NY"}}, AreaRanges(ParseState("ny")))
	assert.Nil(t, AreaRanges(StateUnknown))
}

func TestParseState(t *testing.T) {
	assert.Equal(t, State("TX"), ParseState(" tx"))
	assert.Equal(t, StateUnknown, ParseState("ZZ"))
	assert.Equal(t, StateUnknown, ParseState(""))
}

func TestStates(t *testing.T) {
	states := States()
	assert.Len(t, states, 54)
	assert.Equal(t, State("AK"), states[0])
	assert.Equal(t, State("WY"), states[len(states)-1])
}
