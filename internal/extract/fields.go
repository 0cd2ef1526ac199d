package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/normalize"
)

// firstMatch runs the ordered candidate patterns against the text and returns
// the first non-empty capture of the first pattern that matches. First match
// wins even when a later pattern would capture something longer or more
// specific; list order is the priority.
func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if g := strings.TrimSpace(group); g != "" {
				return g, true
			}
		}
	}
	return "", false
}

// stringField extracts a free-text field, nil on miss.
func stringField(text string, rules map[Field][]*regexp.Regexp, f Field) *string {
	v, ok := firstMatch(text, rules[f])
	if !ok {
		return nil
	}
	v = collapseSpaces(v)
	return &v
}

// dateField extracts and normalizes a date field. A token that matches a
// pattern but fails date normalization counts as a miss, same as no match.
func dateField(text string, rules map[Field][]*regexp.Regexp, f Field) *time.Time {
	tok, ok := firstMatch(text, rules[f])
	if !ok {
		return nil
	}
	t, ok := normalize.ParseDate(tok)
	if !ok {
		return nil
	}
	return &t
}

// amountField extracts and normalizes a monetary field, zero on miss.
// Totals go through ParseTotal so a printed 0 is treated as unresolved.
func amountField(text string, rules map[Field][]*regexp.Regexp, f Field) decimal.Decimal {
	tok, ok := firstMatch(text, rules[f])
	if !ok {
		return decimal.Decimal{}
	}
	parse := normalize.ParseAmount
	if f == FieldTotal {
		parse = normalize.ParseTotal
	}
	d, ok := parse(tok)
	if !ok {
		return decimal.Decimal{}
	}
	return d
}

// currencyIndicators pair a symbol or code with its ISO currency. Scan order
// matters: the bare "$" comes last because it shows up in otherwise
// PLN/EUR-denominated documents quoting USD list prices.
var currencyIndicators = []struct {
	re   *regexp.Regexp
	code string
}{
	{rx(`(?i)\bPLN\b|zł`), "PLN"},
	{rx(`(?i)\bEUR\b|€`), "EUR"},
	{rx(`(?i)\bGBP\b|£`), "GBP"},
	{rx(`(?i)\bUSD\b|\$`), "USD"},
}

// detectCurrency scans the raw text for a currency indicator and falls back
// to the vendor tag's default when none is present.
func detectCurrency(text string, format constants.SourceFormat) string {
	for _, ind := range currencyIndicators {
		if ind.re.MatchString(text) {
			return ind.code
		}
	}
	return format.DefaultCurrency()
}

var reMultiSpace = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}
