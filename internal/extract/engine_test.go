package extract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/feed"
)

func TestExtractTextDocument(t *testing.T) {
	e := NewEngine(nil)

	invoices, err := e.Extract([]byte(anthropicInvoice), "invoice.pdf", constants.FormatAnthropic)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("invoices = %d, want 1", len(invoices))
	}
	inv := invoices[0]
	if inv.SourceFormat != constants.FormatAnthropic {
		t.Errorf("SourceFormat = %q", inv.SourceFormat)
	}
	if deref(inv.InvoiceNumber) != "MEWD1577-0004" {
		t.Errorf("InvoiceNumber = %q", deref(inv.InvoiceNumber))
	}
	if inv.RawExcerpt != anthropicInvoice {
		t.Errorf("RawExcerpt does not round-trip the document text")
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := NewEngine(nil)

	first := e.ExtractText(googleInvoice, constants.FormatGoogle)
	second := e.ExtractText(googleInvoice, constants.FormatGoogle)

	if deref(first.InvoiceNumber) != deref(second.InvoiceNumber) {
		t.Errorf("InvoiceNumber differs across runs")
	}
	if !first.TotalAmount.Equal(second.TotalAmount) ||
		!first.Subtotal.Equal(second.Subtotal) ||
		!first.TaxAmount.Equal(second.TaxAmount) {
		t.Errorf("amounts differ across runs")
	}
	if len(first.LineItems) != len(second.LineItems) {
		t.Errorf("line items differ across runs: %d vs %d",
			len(first.LineItems), len(second.LineItems))
	}
}

func TestExtractGarbageYieldsEmptyRecord(t *testing.T) {
	e := NewEngine(nil)

	invoices, err := e.Extract([]byte("lorem ipsum dolor sit amet\nnothing invoice-like here\n"), "note.txt", constants.FormatGeneric)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	inv := invoices[0]
	if inv.InvoiceNumber != nil {
		t.Errorf("InvoiceNumber = %q, want nil", *inv.InvoiceNumber)
	}
	if inv.InvoiceDate != nil || inv.DueDate != nil {
		t.Errorf("dates set on garbage input")
	}
	if !inv.TotalAmount.IsZero() {
		t.Errorf("TotalAmount = %s, want 0", inv.TotalAmount)
	}
	if len(inv.LineItems) != 0 {
		t.Errorf("LineItems = %d, want 0", len(inv.LineItems))
	}
	if len(inv.MissingFields()) == 0 {
		t.Errorf("MissingFields() empty on garbage input")
	}
}

func TestExtractInvalidEncoding(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.Extract([]byte{0xff, 0xfe, 0x00, 0x81}, "scan.pdf", constants.FormatGeneric)
	if !errors.Is(err, ErrDocumentUnreadable) {
		t.Fatalf("err = %v, want ErrDocumentUnreadable", err)
	}
}

func TestExtractRoutesCSVToFeed(t *testing.T) {
	e := NewEngine(nil)
	data := "id_invoice;date;price_without_tax;price_with_tax;debt_state\n" +
		"INV-1;2025-02-01T00:00:00+01:00;10,00;12,30;PAID\n"

	// a .csv file goes through the feed parser even under a generic tag
	invoices, err := e.Extract([]byte(data), "billing.csv", constants.FormatGeneric)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("invoices = %d, want 1", len(invoices))
	}
	if invoices[0].SourceFormat != constants.FormatOVHCSV {
		t.Errorf("SourceFormat = %q, want %q", invoices[0].SourceFormat, constants.FormatOVHCSV)
	}
}

func TestExtractFeedMissingColumns(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.Extract([]byte("id_invoice;date\nINV-1;2025-02-01T00:00:00Z\n"), "billing.csv", constants.FormatOVHCSV)
	var missing *feed.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingColumnsError", err)
	}
	if errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("missing columns must not be reported as an unreadable document")
	}
}

func TestExcerptBound(t *testing.T) {
	long := strings.Repeat("ż", rawExcerptLimit) // 2 bytes per rune

	got := excerpt(long)
	if len(got) > rawExcerptLimit {
		t.Fatalf("excerpt length = %d, want <= %d", len(got), rawExcerptLimit)
	}
	for _, r := range got {
		if r != 'ż' {
			t.Fatalf("excerpt split a multi-byte rune: %q", r)
		}
	}

	short := "short document"
	if excerpt(short) != short {
		t.Errorf("excerpt truncated text under the limit")
	}
}

func TestExtractValidatesAgainstSchema(t *testing.T) {
	e := NewEngine(nil)

	for _, text := range []string{anthropicInvoice, googleInvoice} {
		inv := e.ExtractText(text, constants.FormatGeneric)
		data, err := json.Marshal(inv)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := ValidateInvoiceJSON(data); err != nil {
			t.Errorf("extracted record fails its own schema: %v", err)
		}
	}
}
