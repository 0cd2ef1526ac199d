// Package feed parses the structured OVH billing export: a ;-delimited file
// with named columns covering one or many invoices. Columns are resolved by
// name, never by position, and no layout heuristics are involved.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/normalize"
)

// Required and optional column names, matched case-insensitively.
const (
	colInvoiceID    = "id_invoice"
	colDate         = "date"
	colPriceWithout = "price_without_tax"
	colPriceWith    = "price_with_tax"
	colDebtState    = "debt_state" // optional
	colURL          = "url"        // optional
)

var requiredColumns = []string{colInvoiceID, colDate, colPriceWithout, colPriceWith}

// feedCurrency is fixed: OVH bills Polish accounts from its EU entity.
const feedCurrency = "EUR"

// MissingColumnsError reports a feed whose header lacks required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("feed is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ParseAll reads the whole feed and returns one invoice per row with a
// non-empty invoice id. Duplicate ids are kept as-is; deduplication belongs
// to the caller. Rows with an unparseable date or amounts still yield a
// record with those fields unset, consistent with the field-miss policy.
func ParseAll(r io.Reader) ([]*entity.Invoice, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read feed header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var invoices []*entity.Invoice
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read feed row: %w", err)
		}
		id := cell(row, colInvoiceID)
		if id == "" {
			continue
		}
		invoices = append(invoices, parseRow(id, row, cell))
	}
	return invoices, nil
}

func parseRow(id string, row []string, cell func([]string, string) string) *entity.Invoice {
	number := id
	inv := &entity.Invoice{
		InvoiceNumber: &number,
		Currency:      feedCurrency,
		RawExcerpt:    strings.Join(row, ";"),
		SourceFormat:  constants.FormatOVHCSV,
	}

	// ISO-8601 with a trailing zone marker; this feed is fully structured,
	// so no heuristic date normalization.
	if t, err := time.Parse(time.RFC3339, cell(row, colDate)); err == nil {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		inv.InvoiceDate = &day
		inv.IssueDate = &day
	}

	without, okWithout := normalize.ParseAmount(cell(row, colPriceWithout))
	with, okWith := normalize.ParseAmount(cell(row, colPriceWith))
	if okWithout {
		inv.Subtotal = without
	}
	if okWith {
		inv.TotalAmount = with
	}
	if okWithout && okWith {
		// tax is always derived, never read from a column
		inv.TaxAmount = with.Sub(without)
	}

	inv.PaymentStatus = classifyDebtState(cell(row, colDebtState), inv.TotalAmount)
	return inv
}

// classifyDebtState maps the feed's settlement column to a payment status.
// A zero total counts as paid regardless of the column value.
func classifyDebtState(state string, total decimal.Decimal) constants.PaymentStatus {
	switch {
	case strings.EqualFold(state, "PAID") || total.IsZero():
		return constants.PaymentStatusPaid
	case strings.EqualFold(state, "OVERDUE"):
		return constants.PaymentStatusOverdue
	default:
		return constants.PaymentStatusPending
	}
}
