package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/repository"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/utils"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewService(repo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: repo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given date
// window: one sheet of invoices, one of their lines.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.invoicesRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	invoices := make([]*entity.Invoice, 0, len(recs))
	for _, r := range recs {
		lines, err := s.invoicesRepo.ListLines(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("query lines: %w", err)
		}
		invoices = append(invoices, utils.ToInvoice(r, lines))
	}

	f := excelize.NewFile()
	if err := s.writeInvoiceSheet(f, invoices); err != nil {
		return nil, err
	}
	if err := s.writeLineSheet(f, invoices); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeInvoiceSheet(f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Number",
		"Invoice Date",
		"Due Date",
		"Seller",
		"Buyer",
		"Subtotal",
		"Tax",
		"Total",
		"Currency",
		"Payment Status",
		"Source Format",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, strOrEmpty(inv.InvoiceNumber))
		write(2, dateOrEmpty(inv.InvoiceDate))
		write(3, dateOrEmpty(inv.DueDate))
		write(4, strOrEmpty(inv.Seller.Name))
		write(5, strOrEmpty(inv.Buyer.Name))
		write(6, inv.Subtotal.InexactFloat64())
		write(7, inv.TaxAmount.InexactFloat64())
		write(8, inv.TotalAmount.InexactFloat64())
		write(9, inv.Currency)
		write(10, string(inv.PaymentStatus))
		write(11, string(inv.SourceFormat))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // number
	_ = f.SetColWidth(sheet, "B", "C", 14) // dates
	_ = f.SetColWidth(sheet, "D", "E", 32) // parties
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts
	_ = f.SetColWidth(sheet, "K", "K", 14) // format
	return nil
}

func (s *Service) writeLineSheet(f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "Lines"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	headers := []string{
		"Invoice Number",
		"Position",
		"Item/Service",
		"Description",
		"Quantity",
		"Unit",
		"Unit Price",
		"Net",
		"VAT %",
		"VAT",
		"Gross",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		for _, l := range inv.LineItems {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, strOrEmpty(inv.InvoiceNumber))
			write(2, l.Position)
			write(3, l.Name)
			write(4, truncate(strOrEmpty(l.Description), 140))
			write(5, l.Quantity.InexactFloat64())
			write(6, strOrEmpty(l.Unit))
			write(7, l.UnitPrice.InexactFloat64())
			write(8, l.NetAmount.InexactFloat64())
			write(9, l.TaxRate.InexactFloat64())
			write(10, l.TaxAmount.InexactFloat64())
			write(11, l.GrossAmount.InexactFloat64())

			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "C", "D", 36)
	return nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
