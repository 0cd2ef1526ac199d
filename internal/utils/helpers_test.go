package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent"
)

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2025-02-01")
	if err != nil {
		t.Fatalf("ParseYMD() error: %v", err)
	}
	want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseYMD() = %v, want %v", got, want)
	}
	if _, err := ParseYMD("01.02.2025"); err == nil {
		t.Fatal("ParseYMD(01.02.2025) = nil error, want error")
	}
}

func TestToInvoiceMapsRow(t *testing.T) {
	strp := func(s string) *string { return &s }
	id := uuid.New()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	row := &ent.Invoice{
		ID:            id,
		InvoiceNumber: strp("INV-9"),
		InvoiceDate:   &day,
		SellerName:    strp("OVH"),
		Subtotal:      10,
		TaxAmount:     2.3,
		TotalAmount:   12.3,
		CurrencyCode:  "EUR",
		PaymentStatus: strp("paid"),
		SourceFormat:  "OVH_CSV",
	}
	lines := []*ent.InvoiceLine{{
		InvoiceID:   id,
		Position:    1,
		Name:        "Hosting",
		Quantity:    1,
		UnitPrice:   10,
		NetAmount:   10,
		TaxRate:     23,
		TaxAmount:   2.3,
		GrossAmount: 12.3,
	}}

	inv := ToInvoice(row, lines)

	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-9" {
		t.Fatalf("InvoiceNumber = %v, want INV-9", inv.InvoiceNumber)
	}
	if inv.SourceFormat != constants.FormatOVHCSV {
		t.Errorf("SourceFormat = %q, want %q", inv.SourceFormat, constants.FormatOVHCSV)
	}
	if inv.PaymentStatus != constants.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %q, want paid", inv.PaymentStatus)
	}
	if !inv.TotalAmount.Equal(inv.Subtotal.Add(inv.TaxAmount)) {
		t.Errorf("amounts do not reconcile: %s + %s != %s", inv.Subtotal, inv.TaxAmount, inv.TotalAmount)
	}
	if len(inv.LineItems) != 1 {
		t.Fatalf("len(LineItems) = %d, want 1", len(inv.LineItems))
	}
	li := inv.LineItems[0]
	if li.Name != "Hosting" || li.Position != 1 {
		t.Errorf("line = %+v", li)
	}
	if !li.GrossAmount.Equal(li.NetAmount.Add(li.TaxAmount)) {
		t.Errorf("line amounts do not reconcile: %+v", li)
	}
}

func TestToInvoiceNilOptionalFields(t *testing.T) {
	inv := ToInvoice(&ent.Invoice{CurrencyCode: "USD", SourceFormat: "CURSOR"}, nil)
	if inv.InvoiceNumber != nil || inv.Seller.Name != nil || inv.PaymentStatus != "" {
		t.Fatalf("optional fields not empty: %+v", inv)
	}
	if len(inv.LineItems) != 0 {
		t.Fatalf("len(LineItems) = %d, want 0", len(inv.LineItems))
	}
}
