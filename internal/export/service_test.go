package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
)

type stubInvoiceRepo struct {
	rows  []*ent.Invoice
	lines map[uuid.UUID][]*ent.InvoiceLine
}

func (s *stubInvoiceRepo) Upsert(context.Context, uuid.UUID, *entity.Invoice) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubInvoiceRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Invoice, error) {
	return s.rows, nil
}

func (s *stubInvoiceRepo) ListLines(_ context.Context, id uuid.UUID) ([]*ent.InvoiceLine, error) {
	return s.lines[id], nil
}

func strp(s string) *string { return &s }

func TestExportInvoicesXLSX(t *testing.T) {
	id := uuid.New()
	day := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubInvoiceRepo{
		rows: []*ent.Invoice{{
			ID:            id,
			InvoiceNumber: strp("INV-2025-007"),
			InvoiceDate:   &day,
			SellerName:    strp("Google Cloud Poland"),
			BuyerName:     strp("Octadecimal"),
			Subtotal:      100,
			TaxAmount:     23,
			TotalAmount:   123,
			CurrencyCode:  "PLN",
			PaymentStatus: strp("paid"),
			SourceFormat:  "GOOGLE",
		}},
		lines: map[uuid.UUID][]*ent.InvoiceLine{
			id: {{
				InvoiceID:   id,
				Position:    1,
				Name:        "Usługa chmurowa",
				Unit:        strp("szt"),
				Quantity:    1,
				UnitPrice:   100,
				NetAmount:   100,
				TaxRate:     23,
				TaxAmount:   23,
				GrossAmount: 123,
			}},
		},
	}

	svc := NewService(repo, nil)
	data, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportInvoicesXLSX() error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	check := func(sheet, cell, want string) {
		t.Helper()
		got, err := wb.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", sheet, cell, err)
		}
		if got != want {
			t.Errorf("%s!%s = %q, want %q", sheet, cell, got, want)
		}
	}

	check("Invoices", "A1", "Invoice Number")
	check("Invoices", "A2", "INV-2025-007")
	check("Invoices", "B2", "2025-02-01")
	check("Invoices", "D2", "Google Cloud Poland")
	check("Invoices", "H2", "123")
	check("Invoices", "I2", "PLN")
	check("Invoices", "J2", "paid")
	check("Invoices", "K2", "GOOGLE")

	check("Lines", "A2", "INV-2025-007")
	check("Lines", "C2", "Usługa chmurowa")
	check("Lines", "F2", "szt")
	check("Lines", "I2", "23")
	check("Lines", "K2", "123")
}

func TestExportEmptyWindow(t *testing.T) {
	svc := NewService(&stubInvoiceRepo{}, nil)
	data, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportInvoicesXLSX() error: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	if got, _ := wb.GetCellValue("Invoices", "A2"); got != "" {
		t.Errorf("Invoices!A2 = %q, want empty", got)
	}
}
