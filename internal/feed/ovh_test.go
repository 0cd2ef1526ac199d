package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

const sampleFeed = "id_invoice;date;price_without_tax;price_with_tax;debt_state;url\n" +
	"INV-1;2025-01-15T00:00:00+01:00;10,00;12,30;PAID;https://example.test/INV-1\n" +
	"INV-2;2025-02-01T00:00:00+01:00;40,65;50,00;;https://example.test/INV-2\n"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseAll(t *testing.T) {
	invoices, err := ParseAll(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("invoices = %d, want 2", len(invoices))
	}

	first := invoices[0]
	if first.InvoiceNumber == nil || *first.InvoiceNumber != "INV-1" {
		t.Errorf("InvoiceNumber = %v, want INV-1", first.InvoiceNumber)
	}
	if first.SourceFormat != constants.FormatOVHCSV {
		t.Errorf("SourceFormat = %q", first.SourceFormat)
	}
	if first.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", first.Currency)
	}
	wantDay := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if first.InvoiceDate == nil || !first.InvoiceDate.Equal(wantDay) {
		t.Errorf("InvoiceDate = %v, want %v", first.InvoiceDate, wantDay)
	}
	if first.IssueDate == nil || !first.IssueDate.Equal(wantDay) {
		t.Errorf("IssueDate = %v, want %v", first.IssueDate, wantDay)
	}
	if !first.Subtotal.Equal(dec("10.00")) {
		t.Errorf("Subtotal = %s, want 10.00", first.Subtotal)
	}
	if !first.TotalAmount.Equal(dec("12.30")) {
		t.Errorf("TotalAmount = %s, want 12.30", first.TotalAmount)
	}
	// tax is derived from the two price columns
	if !first.TaxAmount.Equal(dec("2.30")) {
		t.Errorf("TaxAmount = %s, want 2.30", first.TaxAmount)
	}
	if first.PaymentStatus != constants.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %q, want paid", first.PaymentStatus)
	}

	second := invoices[1]
	if second.PaymentStatus != constants.PaymentStatusPending {
		t.Errorf("PaymentStatus = %q, want pending", second.PaymentStatus)
	}
	if !second.TaxAmount.Equal(dec("9.35")) {
		t.Errorf("TaxAmount = %s, want 9.35", second.TaxAmount)
	}
}

func TestParseAllHeaderCaseInsensitive(t *testing.T) {
	data := "ID_Invoice; Date ;Price_Without_Tax;PRICE_WITH_TAX\n" +
		"INV-9;2025-03-01T00:00:00Z;1,00;1,23\n"

	invoices, err := ParseAll(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("invoices = %d, want 1", len(invoices))
	}
}

func TestParseAllMissingColumns(t *testing.T) {
	data := "id_invoice;date;url\nINV-1;2025-01-15T00:00:00Z;https://example.test\n"

	_, err := ParseAll(strings.NewReader(data))
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingColumnsError", err)
	}
	want := []string{"price_with_tax", "price_without_tax"}
	if len(missing.Columns) != len(want) {
		t.Fatalf("Columns = %v, want %v", missing.Columns, want)
	}
	for i := range want {
		if missing.Columns[i] != want[i] {
			t.Errorf("Columns[%d] = %q, want %q", i, missing.Columns[i], want[i])
		}
	}
}

func TestParseAllSkipsEmptyID(t *testing.T) {
	data := "id_invoice;date;price_without_tax;price_with_tax\n" +
		";2025-01-15T00:00:00Z;1,00;1,23\n" +
		"INV-1;2025-01-15T00:00:00Z;1,00;1,23\n"

	invoices, err := ParseAll(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("invoices = %d, want 1", len(invoices))
	}
}

func TestParseAllKeepsDuplicateIDs(t *testing.T) {
	data := "id_invoice;date;price_without_tax;price_with_tax\n" +
		"INV-1;2025-01-15T00:00:00Z;1,00;1,23\n" +
		"INV-1;2025-01-15T00:00:00Z;1,00;1,23\n"

	invoices, err := ParseAll(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("invoices = %d, want 2 (dedup belongs to the caller)", len(invoices))
	}
}

func TestParseRowBadDateAndAmounts(t *testing.T) {
	data := "id_invoice;date;price_without_tax;price_with_tax\n" +
		"INV-1;not-a-date;abc;xyz\n"

	invoices, err := ParseAll(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	inv := invoices[0]
	if inv.InvoiceDate != nil {
		t.Errorf("InvoiceDate = %v, want nil", inv.InvoiceDate)
	}
	if !inv.Subtotal.IsZero() || !inv.TotalAmount.IsZero() || !inv.TaxAmount.IsZero() {
		t.Errorf("amounts = %s/%s/%s, want all zero", inv.Subtotal, inv.TaxAmount, inv.TotalAmount)
	}
	// zero total reads as settled
	if inv.PaymentStatus != constants.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %q, want paid", inv.PaymentStatus)
	}
}

func TestClassifyDebtState(t *testing.T) {
	tests := []struct {
		state string
		total string
		want  constants.PaymentStatus
	}{
		{"PAID", "10", constants.PaymentStatusPaid},
		{"paid", "10", constants.PaymentStatusPaid},
		{"OVERDUE", "10", constants.PaymentStatusOverdue},
		{"", "10", constants.PaymentStatusPending},
		{"UNKNOWN", "10", constants.PaymentStatusPending},
		{"OVERDUE", "0", constants.PaymentStatusPaid},
	}
	for _, tt := range tests {
		if got := classifyDebtState(tt.state, dec(tt.total)); got != tt.want {
			t.Errorf("classifyDebtState(%q, %s) = %q, want %q", tt.state, tt.total, got, tt.want)
		}
	}
}
