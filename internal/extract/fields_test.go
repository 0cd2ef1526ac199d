package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

const anthropicInvoice = `Invoice
Anthropic, PBC
548 Market St
San Francisco, California 94104
support@anthropic.com

Invoice number MEWD1577-0004
Date of issue March 1, 2025
Date due March 1, 2025

Bill to
Octadecimal AI Sp. z o.o.
ul. Prosta 20
00-850 Warszawa
billing@octadecimal.ai
PL VAT 5213999999

Description Qty Unit price Amount
Claude Max subscription 1 $90.00 USD $90.00 USD

Subtotal $90.00
Total $90.00
Amount due $90.00
Visa •••• 4242
`

const googleInvoice = `Google Cloud Poland sp. z o.o.
ul. Emilii Plater 53
00-113 Warszawa
NIP: 5252822767

Numer faktury: GCP-2025-0042
Data faktury: 31.01.2025
Data wystawienia: 31.01.2025
Termin płatności: 14 lutego 2025

Nabywca:
Octadecimal AI Sp. z o.o.
ul. Prosta 20, 00-850 Warszawa
NIP nabywcy: 5213999999

Opis Ilość Cena netto VAT Wartość
(01.01.2025 - 31.01.2025)
Compute Engine 1 100,00 23% 123,00
Cloud Storage 2 50,00 23% 123,00

Suma netto: 200,00 zł
VAT (23%): 46,00 zł
Do zapłaty: 246,00 zł
Sposób płatności: przelew
`

func TestFieldExtractionAnthropic(t *testing.T) {
	e := NewEngine(nil)
	inv := e.ExtractText(anthropicInvoice, constants.FormatAnthropic)

	if got := deref(inv.InvoiceNumber); got != "MEWD1577-0004" {
		t.Errorf("invoice number = %q", got)
	}
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if inv.IssueDate == nil || !inv.IssueDate.Equal(want) {
		t.Errorf("issue date = %v, want %s", inv.IssueDate, want)
	}
	if inv.DueDate == nil || !inv.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %s", inv.DueDate, want)
	}
	if got := deref(inv.Seller.Name); got != "Anthropic, PBC" {
		t.Errorf("seller name = %q", got)
	}
	if got := deref(inv.Seller.Address); got != "548 Market St" {
		t.Errorf("seller address = %q", got)
	}
	if got := deref(inv.Seller.Email); got != "support@anthropic.com" {
		t.Errorf("seller email = %q", got)
	}
	if got := deref(inv.Buyer.Name); got != "Octadecimal AI Sp. z o.o." {
		t.Errorf("buyer name = %q", got)
	}
	if got := deref(inv.Buyer.TaxID); got != "5213999999" {
		t.Errorf("buyer tax id = %q", got)
	}
	if !inv.Subtotal.Equal(dec("90.00")) || !inv.TotalAmount.Equal(dec("90.00")) {
		t.Errorf("subtotal/total = %s/%s, want 90/90", inv.Subtotal, inv.TotalAmount)
	}
	if !inv.TaxAmount.IsZero() {
		t.Errorf("tax = %s, want 0", inv.TaxAmount)
	}
	if inv.Currency != "USD" {
		t.Errorf("currency = %q, want USD", inv.Currency)
	}
	if got := deref(inv.PaymentMethod); got != "Visa" {
		t.Errorf("payment method = %q", got)
	}
}

func TestFieldExtractionGoogle(t *testing.T) {
	e := NewEngine(nil)
	inv := e.ExtractText(googleInvoice, constants.FormatGoogle)

	if got := deref(inv.InvoiceNumber); got != "GCP-2025-0042" {
		t.Errorf("invoice number = %q", got)
	}
	if got := deref(inv.Seller.Name); got != "Google Cloud Poland sp. z o.o." {
		t.Errorf("seller name = %q", got)
	}
	if got := deref(inv.Seller.TaxID); got != "5252822767" {
		t.Errorf("seller tax id = %q", got)
	}
	if got := deref(inv.Buyer.TaxID); got != "5213999999" {
		t.Errorf("buyer tax id = %q", got)
	}
	wantDue := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	if inv.DueDate == nil || !inv.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %s", inv.DueDate, wantDue)
	}
	if !inv.Subtotal.Equal(dec("200.00")) {
		t.Errorf("subtotal = %s, want 200", inv.Subtotal)
	}
	if !inv.TaxAmount.Equal(dec("46.00")) {
		t.Errorf("tax = %s, want 46", inv.TaxAmount)
	}
	if !inv.TotalAmount.Equal(dec("246.00")) {
		t.Errorf("total = %s, want 246", inv.TotalAmount)
	}
	if inv.Currency != "PLN" {
		t.Errorf("currency = %q, want PLN", inv.Currency)
	}
	if got := deref(inv.PaymentMethod); got != "przelew" {
		t.Errorf("payment method = %q", got)
	}
}

// A collapsed label/value boundary ("Invoice numberX") must still match.
func TestCollapsedLabelWhitespace(t *testing.T) {
	e := NewEngine(nil)
	inv := e.ExtractText("Invoice numberF7A2-0019\nTotal $12.00\n", constants.FormatOpenAI)
	if got := deref(inv.InvoiceNumber); got != "F7A2-0019" {
		t.Errorf("invoice number = %q, want F7A2-0019", got)
	}
}

// When two patterns for the same field both match, the one listed first for
// the vendor tag wins, regardless of match position or specificity.
func TestFirstMatchWins(t *testing.T) {
	text := "Numer faktury: SECOND/2025\nFaktura nr FIRST/2025\n"
	e := NewEngine(nil)
	inv := e.ExtractText(text, constants.FormatGeneric)
	if got := deref(inv.InvoiceNumber); got != "FIRST/2025" {
		t.Errorf("invoice number = %q, want FIRST/2025 (first-listed pattern)", got)
	}
}

// Formats without a tax breakdown backfill subtotal from total; formats with
// one keep the miss visible.
func TestSubtotalFallback(t *testing.T) {
	e := NewEngine(nil)

	inv := e.ExtractText("Total $20.00\n", constants.FormatCursor)
	if !inv.Subtotal.Equal(dec("20.00")) {
		t.Errorf("cursor subtotal = %s, want 20.00", inv.Subtotal)
	}
	if !inv.TaxAmount.IsZero() {
		t.Errorf("cursor tax = %s, want 0", inv.TaxAmount)
	}

	inv = e.ExtractText("Do zapłaty: 20,00 zł\n", constants.FormatGoogle)
	if !inv.Subtotal.IsZero() {
		t.Errorf("google subtotal = %s, want unresolved 0", inv.Subtotal)
	}
	if !inv.TotalAmount.Equal(dec("20.00")) {
		t.Errorf("google total = %s, want 20.00", inv.TotalAmount)
	}
}

func TestCurrencyDetection(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format constants.SourceFormat
		want   string
	}{
		{name: "zloty symbol", text: "Do zapłaty: 100,00 zł", format: constants.FormatCursor, want: "PLN"},
		{name: "euro code", text: "Total 10.00 EUR", format: constants.FormatCursor, want: "EUR"},
		{name: "pound symbol", text: "Total £10.00", format: constants.FormatGeneric, want: "GBP"},
		{name: "dollar", text: "Total $10.00", format: constants.FormatGeneric, want: "USD"},
		{name: "fallback usd", text: "no money here", format: constants.FormatOpenAI, want: "USD"},
		{name: "fallback pln", text: "no money here", format: constants.FormatGeneric, want: "PLN"},
		{name: "fallback eur", text: "no money here", format: constants.FormatOVHCSV, want: "EUR"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectCurrency(tc.text, tc.format); got != tc.want {
				t.Errorf("detectCurrency = %q, want %q", got, tc.want)
			}
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
