package repository

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
)

func validRecord() *entity.Invoice {
	num := "INV-2025-001"
	return &entity.Invoice{
		InvoiceNumber: &num,
		Subtotal:      decimal.NewFromInt(100),
		TaxAmount:     decimal.NewFromInt(23),
		TotalAmount:   decimal.NewFromInt(123),
		Currency:      "PLN",
		SourceFormat:  constants.FormatGoogle,
	}
}

func TestValidateInvoiceAcceptsNormalizedRecord(t *testing.T) {
	if err := validateInvoice(validRecord()); err != nil {
		t.Fatalf("validateInvoice() = %v, want nil", err)
	}
}

func TestValidateInvoiceAcceptsMissingNumber(t *testing.T) {
	inv := validRecord()
	inv.InvoiceNumber = nil
	if err := validateInvoice(inv); err != nil {
		t.Fatalf("validateInvoice() = %v, want nil", err)
	}
}

func TestValidateInvoiceRejections(t *testing.T) {
	longNum := strings.Repeat("X", 129)
	blank := "  "

	tests := []struct {
		name   string
		mutate func(*entity.Invoice)
		field  string
	}{
		{"empty currency", func(i *entity.Invoice) { i.Currency = "" }, "currency_code"},
		{"lowercase currency", func(i *entity.Invoice) { i.Currency = "pln" }, "currency_code"},
		{"long currency", func(i *entity.Invoice) { i.Currency = "EURO" }, "currency_code"},
		{"blank invoice number", func(i *entity.Invoice) { i.InvoiceNumber = &blank }, "invoice_number"},
		{"overlong invoice number", func(i *entity.Invoice) { i.InvoiceNumber = &longNum }, "invoice_number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := validRecord()
			tc.mutate(inv)
			err := validateInvoice(inv)
			if err == nil {
				t.Fatal("validateInvoice() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error %q does not name field %q", err, tc.field)
			}
		})
	}
}
