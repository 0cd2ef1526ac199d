// Package extract converts raw invoice documents into normalized records.
//
// The engine is a pure transformation: no I/O, no shared mutable state. The
// per-vendor pattern tables are built once at init, so a single Engine is
// safe for concurrent use across documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/feed"
)

// ErrDocumentUnreadable means the raw content could not be decoded to text
// or rows at all. Field misses are never errors; this is.
var ErrDocumentUnreadable = errors.New("document unreadable")

// rawExcerptLimit bounds the audit prefix kept on each record.
const rawExcerptLimit = 2000

// Engine dispatches a document to the right parsing path for its vendor tag
// and assembles the normalized record.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Extract parses raw document content under the given vendor tag. Text
// documents yield exactly one record; the delimited feed yields one per
// invoice row. The filename only supplies the pdf-vs-csv routing hint and
// provenance; a .csv document reaches the feed parser even when invoked
// through a generic tag.
//
// Partial (even empty) records are successful results. The only failures are
// structural: content that cannot be decoded at all, or a feed missing
// required columns.
func (e *Engine) Extract(content []byte, filename string, format constants.SourceFormat) ([]*entity.Invoice, error) {
	if format == constants.FormatOVHCSV || constants.KindForFile(filename) == constants.KindCSV {
		invoices, err := feed.ParseAll(bytes.NewReader(content))
		if err != nil {
			var missing *feed.MissingColumnsError
			if errors.As(err, &missing) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
		}
		e.logger.Debug("parsed delimited feed", "file", filename, "invoices", len(invoices))
		return invoices, nil
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid text", ErrDocumentUnreadable)
	}
	inv := e.ExtractText(string(content), format)
	return []*entity.Invoice{inv}, nil
}

// ExtractText runs every field extractor and the line-item reconstructor
// against already-decoded text. Each extractor works independently on the
// same text; a miss leaves its field nil or zero.
func (e *Engine) ExtractText(text string, format constants.SourceFormat) *entity.Invoice {
	format = constants.ParseFormat(string(format))
	rules := rulesFor(format)

	inv := &entity.Invoice{
		InvoiceNumber: stringField(text, rules, FieldInvoiceNumber),
		InvoiceDate:   dateField(text, rules, FieldInvoiceDate),
		IssueDate:     dateField(text, rules, FieldIssueDate),
		DueDate:       dateField(text, rules, FieldDueDate),
		Seller: entity.Party{
			Name:          stringField(text, rules, FieldSellerName),
			TaxID:         stringField(text, rules, FieldSellerTaxID),
			Address:       stringField(text, rules, FieldSellerAddress),
			Email:         stringField(text, rules, FieldSellerEmail),
			Phone:         stringField(text, rules, FieldSellerPhone),
			AccountNumber: stringField(text, rules, FieldSellerAccount),
		},
		Buyer: entity.Party{
			Name:    stringField(text, rules, FieldBuyerName),
			TaxID:   stringField(text, rules, FieldBuyerTaxID),
			Address: stringField(text, rules, FieldBuyerAddress),
			Email:   stringField(text, rules, FieldBuyerEmail),
			Phone:   stringField(text, rules, FieldBuyerPhone),
		},
		Subtotal:      amountField(text, rules, FieldSubtotal),
		TaxAmount:     amountField(text, rules, FieldTax),
		TotalAmount:   amountField(text, rules, FieldTotal),
		Currency:      detectCurrency(text, format),
		PaymentMethod: stringField(text, rules, FieldPaymentMethod),
		LineItems:     reconstructLineItems(text, format),
		RawExcerpt:    excerpt(text),
		SourceFormat:  format,
	}

	// Formats without a printed tax breakdown show only the gross total;
	// net equals it. Formats with a breakdown keep the miss visible.
	if inv.Subtotal.IsZero() && !format.HasTaxBreakdown() && inv.TotalAmount.Sign() > 0 {
		inv.Subtotal = inv.TotalAmount
	}

	if missing := inv.MissingFields(); len(missing) > 0 {
		e.logger.Debug("unresolved fields", "format", format, "fields", missing)
	}
	return inv
}

func excerpt(text string) string {
	if len(text) <= rawExcerptLimit {
		return text
	}
	cut := text[:rawExcerptLimit]
	// don't split a UTF-8 sequence
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
