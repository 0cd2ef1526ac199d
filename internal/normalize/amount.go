// Package normalize converts locale-formatted amount and date tokens into
// canonical values. PDF text extraction yields Polish-style numbers
// ("1 234,56" with non-breaking spaces) next to US-style ones ("1,234.56"),
// and dates in numeric, English and Polish textual forms.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// spaceStripper removes every whitespace flavor PDF extraction inserts as a
// thousands separator: regular, non-breaking (U+00A0), narrow non-breaking
// (U+202F), and tabs.
var spaceStripper = strings.NewReplacer(" ", "", " ", "", " ", "", "\t", "")

// ParseAmount converts a locale-formatted numeric token into a decimal.
//
// Comma/period roles are disambiguated by presence: when a comma appears it
// is the decimal separator and any periods are thousands markers
// ("1.234,56" -> 1234.56, "1234,56" -> 1234.56); pure-dot tokens pass
// through unchanged. Returns ok=false for unparseable tokens.
func ParseAmount(token string) (decimal.Decimal, bool) {
	s := spaceStripper.Replace(strings.TrimSpace(token))
	if s == "" {
		return decimal.Decimal{}, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseTotal is ParseAmount restricted to positive values. A printed total of
// exactly zero is treated the same as a miss, so a parsing failure cannot
// masquerade as a free invoice.
func ParseTotal(token string) (decimal.Decimal, bool) {
	d, ok := ParseAmount(token)
	if !ok || d.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return d, true
}
