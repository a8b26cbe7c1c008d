package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var upper = cases.Upper(language.Und)

// NormalizeCode canonicalizes a caller-supplied code ("ca", " Ｕｓ ") for lookup:
// compatibility-normalized, trimmed and upper-cased.
func NormalizeCode(s string) string {
	return upper.String(strings.TrimSpace(norm.NFKC.String(s)))
}
