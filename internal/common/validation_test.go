package common

import (
	"strings"
	"testing"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("currency_code", "eur", Required, CurrencyCode).
		Field("invoice_number", "", Required)

	if !v.HasErrors() {
		t.Fatal("HasErrors() = false, want true")
	}
	if got := len(v.Errors()); got != 2 {
		t.Fatalf("len(Errors()) = %d, want 2", got)
	}
	msg := v.ErrorMessage()
	for _, want := range []string{"currency_code", "invoice_number"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ErrorMessage() %q missing field %q", msg, want)
		}
	}
}

func TestValidatorCleanRecord(t *testing.T) {
	v := NewValidator().
		Field("currency_code", "PLN", Required, CurrencyCode).
		Field("issue_date", "2025-02-28", DateYMD)
	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
	if err := ValidateAndReturnError(v); err != nil {
		t.Fatalf("ValidateAndReturnError() = %v, want nil", err)
	}
}

func TestCurrencyCode(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"USD", true},
		{"EUR", true},
		{"usd", false},
		{"EU", false},
		{"EURO", false},
		{"12E", false},
	}
	for _, tc := range tests {
		err := CurrencyCode("currency_code", tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("CurrencyCode(%q) = %v, want ok=%v", tc.value, err, tc.ok)
		}
	}
}

func TestDateYMD(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2025-01-31", true},
		{"", true}, // empty passes, pair with Required
		{"31-01-2025", false},
		{"2025/01/31", false},
		{"2025-1-31", false},
	}
	for _, tc := range tests {
		err := DateYMD("from", tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("DateYMD(%q) = %v, want ok=%v", tc.value, err, tc.ok)
		}
	}
}

func TestMaxLengthRule(t *testing.T) {
	rule := MaxLengthRule(5)
	if err := rule("invoice_number", "INV-1"); err != nil {
		t.Fatalf("rule(5 chars) = %v, want nil", err)
	}
	if err := rule("invoice_number", "INV-123"); err == nil {
		t.Fatal("rule(7 chars) = nil, want error")
	}
}
