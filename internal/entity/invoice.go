package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

// Party identifies one side of an invoice. Every field is optional; an
// extractor that finds nothing leaves the pointer nil.
type Party struct {
	Name          *string `json:"name,omitempty"`
	TaxID         *string `json:"tax_id,omitempty"`
	Address       *string `json:"address,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"` // seller side only
}

// LineItem is one reconstructed row of the invoice's item table.
type LineItem struct {
	Position    int             `json:"position"` // 1-based
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        *string         `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // percent
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

// Invoice is the normalized record produced by the extraction engine.
// It is built once per document and not mutated after return; identity and
// dedup keys belong to the persistence layer, not to this type.
//
// A record with zero resolved fields is still valid output: pattern misses
// are an expected outcome given document diversity, not an error.
type Invoice struct {
	InvoiceNumber *string    `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"` // ISO 4217

	PaymentMethod *string                 `json:"payment_method,omitempty"`
	PaymentStatus constants.PaymentStatus `json:"payment_status,omitempty"` // structured feeds only

	LineItems []LineItem `json:"line_items"`

	// Provenance for audit; never consulted by downstream computation.
	RawExcerpt   string                 `json:"raw_excerpt"`
	SourceFormat constants.SourceFormat `json:"source_format"`
}

// MissingFields lists the optional fields that stayed unresolved. Callers use
// it as a completeness metric; the engine itself never treats misses as
// failures.
func (inv *Invoice) MissingFields() []string {
	var missing []string
	add := func(name string, absent bool) {
		if absent {
			missing = append(missing, name)
		}
	}
	add("invoice_number", inv.InvoiceNumber == nil)
	add("invoice_date", inv.InvoiceDate == nil)
	add("issue_date", inv.IssueDate == nil)
	add("due_date", inv.DueDate == nil)
	add("seller.name", inv.Seller.Name == nil)
	add("seller.tax_id", inv.Seller.TaxID == nil)
	add("buyer.name", inv.Buyer.Name == nil)
	add("buyer.tax_id", inv.Buyer.TaxID == nil)
	add("subtotal", inv.Subtotal.IsZero())
	add("tax_amount", inv.TaxAmount.IsZero())
	add("total_amount", inv.TotalAmount.IsZero())
	add("payment_method", inv.PaymentMethod == nil)
	add("line_items", len(inv.LineItems) == 0)
	return missing
}
