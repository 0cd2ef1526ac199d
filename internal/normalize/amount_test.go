package normalize

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{name: "polish with space thousands", token: "1 234,56", want: "1234.56", ok: true},
		{name: "non-breaking space thousands", token: "12 345,00", want: "12345", ok: true},
		{name: "narrow non-breaking space", token: "1 234,56", want: "1234.56", ok: true},
		{name: "dot thousands comma decimal", token: "1.234,56", want: "1234.56", ok: true},
		{name: "comma decimal only", token: "1234,56", want: "1234.56", ok: true},
		{name: "pure dot passthrough", token: "1234.56", want: "1234.56", ok: true},
		{name: "plain integer", token: "20", want: "20", ok: true},
		{name: "negative", token: "-12,30", want: "-12.3", ok: true},
		{name: "currency junk", token: "abc", ok: false},
		{name: "empty", token: "", ok: false},
		{name: "whitespace only", token: "   ", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAmount(tc.token)
			if ok != tc.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tc.token, ok, tc.ok)
			}
			if !tc.ok {
				return
			}
			want, err := decimal.NewFromString(tc.want)
			if err != nil {
				t.Fatalf("bad want value %q: %v", tc.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.token, got, want)
			}
		})
	}
}

func TestParseTotalRejectsNonPositive(t *testing.T) {
	for _, token := range []string{"0", "0,00", "0.00", "-5,00", "garbage", ""} {
		if _, ok := ParseTotal(token); ok {
			t.Errorf("ParseTotal(%q) = ok, want miss", token)
		}
	}
	if d, ok := ParseTotal("20,00"); !ok || !d.Equal(decimal.NewFromInt(20)) {
		t.Errorf("ParseTotal(\"20,00\") = %s, %v; want 20, true", d, ok)
	}
}

// Formatting any two-decimal value in Polish style and parsing it back must
// return the original value.
func TestParseAmountPolishRoundTrip(t *testing.T) {
	values := []string{"0.01", "1.00", "12.30", "999.99", "1234.56", "987654.32", "20.00"}
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := ParseAmount(formatPolish(d))
		if !ok {
			t.Fatalf("round trip of %s: parse failed on %q", v, formatPolish(d))
		}
		if !got.Equal(d) {
			t.Errorf("round trip of %s: got %s via %q", v, got, formatPolish(d))
		}
	}
}

// formatPolish renders a decimal as "1 234,56".
func formatPolish(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	var grouped []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, c)
	}
	return fmt.Sprintf("%s,%s", grouped, frac)
}
