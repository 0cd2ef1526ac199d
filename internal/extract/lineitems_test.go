package extract

import (
	"testing"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

func TestSingleLineItems(t *testing.T) {
	text := "Invoice number MEWD1577-0004\n" +
		"Description Qty Unit price Amount\n" +
		"Claude Max subscription 1 $90.00 USD $90.00 USD\n" +
		"\n" +
		"Subtotal $90.00\n"

	items := reconstructLineItems(text, constants.FormatAnthropic)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	it := items[0]
	if it.Position != 1 {
		t.Errorf("Position = %d, want 1", it.Position)
	}
	if it.Name != "Claude Max subscription" {
		t.Errorf("Name = %q", it.Name)
	}
	if !it.Quantity.Equal(dec("1")) {
		t.Errorf("Quantity = %s", it.Quantity)
	}
	if !it.UnitPrice.Equal(dec("90.00")) {
		t.Errorf("UnitPrice = %s", it.UnitPrice)
	}
	if !it.NetAmount.Equal(dec("90.00")) || !it.GrossAmount.Equal(dec("90.00")) {
		t.Errorf("net/gross = %s/%s, want 90.00/90.00", it.NetAmount, it.GrossAmount)
	}
	if !it.TaxRate.IsZero() || !it.TaxAmount.IsZero() {
		t.Errorf("tax rate/amount = %s/%s, want zero", it.TaxRate, it.TaxAmount)
	}
}

func TestPercentTaxItems(t *testing.T) {
	text := "Opis Ilość Cena netto VAT Wartość\n" +
		"(01.01.2025 - 31.01.2025)\n" +
		"Usługa chmurowa 1 szt. 16,26 23% 20,00\n" +
		"Wsparcie techniczne 2 50,00 23% 123,00\n" +
		"Suma netto: 116,26 zł\n"

	items := reconstructLineItems(text, constants.FormatGoogle)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	first := items[0]
	if first.Name != "Usługa chmurowa" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Unit == nil || *first.Unit != "szt" {
		t.Errorf("Unit = %v, want szt", first.Unit)
	}
	if first.Description == nil || *first.Description != "(01.01.2025 - 31.01.2025)" {
		t.Errorf("Description = %v", first.Description)
	}
	if !first.TaxRate.Equal(dec("23")) {
		t.Errorf("TaxRate = %s", first.TaxRate)
	}
	// gross 20.00 at 23%: net rounds to 16.26, tax is the remainder
	if !first.GrossAmount.Equal(dec("20.00")) {
		t.Errorf("GrossAmount = %s", first.GrossAmount)
	}
	if !first.NetAmount.Equal(dec("16.26")) {
		t.Errorf("NetAmount = %s, want 16.26", first.NetAmount)
	}
	if !first.TaxAmount.Equal(dec("3.74")) {
		t.Errorf("TaxAmount = %s, want 3.74", first.TaxAmount)
	}

	second := items[1]
	if second.Position != 2 {
		t.Errorf("Position = %d, want 2", second.Position)
	}
	if second.Description != nil {
		t.Errorf("Description = %q, want nil", *second.Description)
	}
	if !second.NetAmount.Equal(dec("100.00")) || !second.TaxAmount.Equal(dec("23.00")) {
		t.Errorf("net/tax = %s/%s, want 100.00/23.00", second.NetAmount, second.TaxAmount)
	}
}

func TestPercentTaxLayoutNeedsTaxBreakdownFormat(t *testing.T) {
	text := "Description Qty Unit price VAT Amount\n" +
		"Cloud service 1 16,26 23% 20,00\n" +
		"Total $20.00\n"

	// Cursor invoices never print a VAT column; a stray percent line must
	// not be read as one.
	if items := reconstructLineItems(text, constants.FormatCursor); len(items) != 0 {
		t.Fatalf("items = %d, want 0", len(items))
	}
	if items := reconstructLineItems(text, constants.FormatGoogle); len(items) != 1 {
		t.Fatalf("google items = %d, want 1", len(items))
	}
}

func TestWalkItems(t *testing.T) {
	text := "Description Qty Amount\n" +
		"Pro subscription\n" +
		"Feb 1, 2025 – Feb 28, 2025\n" +
		"1 $20.00 USD\n" +
		"On-demand usage\n" +
		"2 $5.00 USD\n" +
		"Total $25.00\n"

	items := reconstructLineItems(text, constants.FormatCursor)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	first := items[0]
	if first.Name != "Pro subscription" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Description == nil || *first.Description != "Feb 1, 2025 – Feb 28, 2025" {
		t.Errorf("Description = %v", first.Description)
	}
	if !first.Quantity.Equal(dec("1")) || !first.NetAmount.Equal(dec("20.00")) {
		t.Errorf("qty/net = %s/%s", first.Quantity, first.NetAmount)
	}
	if !first.UnitPrice.Equal(dec("20.00")) {
		t.Errorf("UnitPrice = %s", first.UnitPrice)
	}
	if !first.GrossAmount.Equal(dec("20.00")) {
		t.Errorf("GrossAmount = %s", first.GrossAmount)
	}

	second := items[1]
	if second.Name != "On-demand usage" {
		t.Errorf("Name = %q", second.Name)
	}
	if second.Description != nil {
		t.Errorf("Description = %q, want nil", *second.Description)
	}
	if !second.UnitPrice.Equal(dec("2.50")) {
		t.Errorf("UnitPrice = %s, want 2.50", second.UnitPrice)
	}
}

func TestWalkDropsUnownedDataRow(t *testing.T) {
	text := "Description Qty Amount\n" +
		"1 $20.00 USD\n" +
		"Real item\n" +
		"1 $5.00 USD\n" +
		"Total $25.00\n"

	items := reconstructLineItems(text, constants.FormatCursor)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Name != "Real item" {
		t.Errorf("Name = %q", items[0].Name)
	}
}

func TestReconstructNoMatch(t *testing.T) {
	for _, text := range []string{
		"",
		"Invoice number ABC-123\nTotal $10.00\n",
		"Qty Description Amount\nTotal $10.00\n",
	} {
		if items := reconstructLineItems(text, constants.FormatGeneric); len(items) != 0 {
			t.Errorf("reconstructLineItems(%q) = %d items, want 0", text, len(items))
		}
	}
}

func TestSplitGross(t *testing.T) {
	tests := []struct {
		gross, rate, net, tax string
	}{
		{"20.00", "23", "16.26", "3.74"},
		{"123.00", "23", "100.00", "23.00"},
		{"108.00", "8", "100.00", "8.00"},
		{"50.00", "0", "50.00", "0"},
	}
	for _, tt := range tests {
		net, tax := splitGross(dec(tt.gross), dec(tt.rate))
		if !net.Equal(dec(tt.net)) || !tax.Equal(dec(tt.tax)) {
			t.Errorf("splitGross(%s, %s%%) = %s, %s; want %s, %s",
				tt.gross, tt.rate, net, tax, tt.net, tt.tax)
		}
	}
}
