package constants

import "strings"

// SourceFormat identifies the invoice layout convention that produced a
// source document. The set is closed; anything else parses as FormatGeneric.
type SourceFormat string

const (
	FormatCursor    SourceFormat = "CURSOR"
	FormatAnthropic SourceFormat = "ANTHROPIC"
	FormatOpenAI    SourceFormat = "OPENAI"
	FormatGoogle    SourceFormat = "GOOGLE"
	FormatOVHCSV    SourceFormat = "OVH_CSV"
	FormatGeneric   SourceFormat = "GENERIC"
)

// SourceFormats holds the allowed values for the source_format field.
var SourceFormats = []string{
	string(FormatCursor),
	string(FormatAnthropic),
	string(FormatOpenAI),
	string(FormatGoogle),
	string(FormatOVHCSV),
	string(FormatGeneric),
}

// ParseFormat maps a free-form tag ("openai", "Ovh_Csv", ...) to a
// SourceFormat. Unknown tags fall back to FormatGeneric, which carries the
// loosest mixed Polish/English rule set.
func ParseFormat(s string) SourceFormat {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(FormatCursor):
		return FormatCursor
	case string(FormatAnthropic):
		return FormatAnthropic
	case string(FormatOpenAI):
		return FormatOpenAI
	case string(FormatGoogle):
		return FormatGoogle
	case string(FormatOVHCSV), "OVH":
		return FormatOVHCSV
	default:
		return FormatGeneric
	}
}

// HasTaxBreakdown reports whether the format prints separate net and VAT
// lines. Formats without a breakdown get subtotal backfilled from total.
func (f SourceFormat) HasTaxBreakdown() bool {
	return f == FormatGoogle || f == FormatGeneric
}

// DefaultCurrency is the fallback when no currency indicator appears in the
// document text.
func (f SourceFormat) DefaultCurrency() string {
	switch f {
	case FormatCursor, FormatAnthropic, FormatOpenAI:
		return "USD"
	case FormatOVHCSV:
		return "EUR"
	default:
		return "PLN"
	}
}
