package region

import (
	"slices"
	"sort"

	"natid/pkg/domain"
)

// State is a two-letter US state, district or territory code.
type State string

// StateUnknown is returned for unassigned areas and unrecognized hints.
const StateUnknown State = ""

// AreaRange is an inclusive span of SSN area numbers assigned to one state.
type AreaRange struct {
	Low   int
	High  int
	State State
}

// Contains reports whether area falls within r.
func (r AreaRange) Contains(area int) bool {
	return area >= r.Low && area <= r.High
}

// areaRanges is the historical area-number allocation, ordered and disjoint.
// Areas 650 and above are not assigned to any state.
var areaRanges = []AreaRange{
	{1, 3, "NH"}, {4, 7, "ME"}, {8, 9, "VT"}, {10, 34, "MA"}, {35, 39, "RI"},
	{40, 49, "CT"}, {50, 134, "NY"}, {135, 158, "NJ"}, {159, 211, "PA"},
	{212, 220, "MD"}, {221, 222, "DE"}, {223, 231, "VA"}, {232, 236, "WV"},
	{237, 246, "NC"}, {247, 251, "SC"}, {252, 260, "GA"}, {261, 267, "FL"},
	{268, 302, "OH"}, {303, 317, "IN"}, {318, 361, "IL"}, {362, 386, "MI"},
	{387, 399, "WI"}, {400, 407, "KY"}, {408, 415, "TN"}, {416, 424, "AL"},
	{425, 428, "MS"}, {429, 432, "AR"}, {433, 439, "LA"}, {440, 448, "OK"},
	{449, 467, "TX"}, {468, 477, "MN"}, {478, 485, "IA"}, {486, 500, "MO"},
	{501, 502, "ND"}, {503, 504, "SD"}, {505, 508, "NE"}, {509, 515, "KS"},
	{516, 517, "MT"}, {518, 519, "ID"}, {520, 520, "WY"}, {521, 524, "CO"},
	{525, 525, "NM"}, {526, 527, "AZ"}, {528, 529, "UT"}, {530, 530, "NV"},
	{531, 539, "WA"}, {540, 544, "OR"}, {545, 573, "CA"}, {574, 574, "AK"},
	{575, 576, "HI"}, {577, 579, "DC"}, {580, 580, "VI"}, {581, 584, "PR"},
	{585, 585, "NM"}, {586, 586, "PI"}, {587, 588, "MS"}, {589, 595, "FL"},
	{596, 599, "PR"}, {600, 601, "AZ"}, {602, 626, "CA"}, {627, 645, "TX"},
	{646, 647, "UT"}, {648, 649, "NM"},
}

// stateRanges indexes areaRanges by state, preserving table order.
var stateRanges = func() map[State][]AreaRange {
	m := make(map[State][]AreaRange)
	for _, r := range areaRanges {
		m[r.State] = append(m[r.State], r)
	}
	return m
}()

// StateForArea returns the state assigned area, or StateUnknown for gaps and
// out-of-table values.
func StateForArea(area int) State {
	i := sort.Search(len(areaRanges), func(i int) bool {
		return areaRanges[i].High >= area
	})
	if i < len(areaRanges) && areaRanges[i].Contains(area) {
		return areaRanges[i].State
	}
	return StateUnknown
}

// AreaRanges returns every range assigned to s in table order, or nil.
func AreaRanges(s State) []AreaRange {
	return slices.Clone(stateRanges[s])
}

// ParseState maps a hint onto a State, case-insensitively.
func ParseState(s string) State {
	st := State(domain.NormalizeCode(s))
	if _, ok := stateRanges[st]; !ok {
		return StateUnknown
	}
	return st
}

// States returns every state code accepted as a hint, sorted.
func States() []State {
	out := make([]State, 0, len(stateRanges))
	for s := range stateRanges {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
