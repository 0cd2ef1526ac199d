package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
)

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ToInvoice maps a stored row back to the engine's record shape.
func ToInvoice(e *ent.Invoice, lines []*ent.InvoiceLine) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber: e.InvoiceNumber,
		InvoiceDate:   e.InvoiceDate,
		IssueDate:     e.IssueDate,
		DueDate:       e.DueDate,
		Seller: entity.Party{
			Name:          e.SellerName,
			TaxID:         e.SellerTaxID,
			Address:       e.SellerAddress,
			Email:         e.SellerEmail,
			Phone:         e.SellerPhone,
			AccountNumber: e.SellerAccountNumber,
		},
		Buyer: entity.Party{
			Name:    e.BuyerName,
			TaxID:   e.BuyerTaxID,
			Address: e.BuyerAddress,
			Email:   e.BuyerEmail,
			Phone:   e.BuyerPhone,
		},
		Subtotal:      decimal.NewFromFloat(e.Subtotal),
		TaxAmount:     decimal.NewFromFloat(e.TaxAmount),
		TotalAmount:   decimal.NewFromFloat(e.TotalAmount),
		Currency:      e.CurrencyCode,
		PaymentMethod: e.PaymentMethod,
		RawExcerpt:    e.RawExcerpt,
		SourceFormat:  constants.ParseFormat(e.SourceFormat),
	}
	if e.PaymentStatus != nil {
		inv.PaymentStatus = constants.PaymentStatus(*e.PaymentStatus)
	}
	for _, l := range lines {
		inv.LineItems = append(inv.LineItems, ToLineItem(l))
	}
	return inv
}

func ToLineItem(l *ent.InvoiceLine) entity.LineItem {
	return entity.LineItem{
		Position:    l.Position,
		Name:        l.Name,
		Description: l.Description,
		Quantity:    decimal.NewFromFloat(l.Quantity),
		Unit:        l.Unit,
		UnitPrice:   decimal.NewFromFloat(l.UnitPrice),
		NetAmount:   decimal.NewFromFloat(l.NetAmount),
		TaxRate:     decimal.NewFromFloat(l.TaxRate),
		TaxAmount:   decimal.NewFromFloat(l.TaxAmount),
		GrossAmount: decimal.NewFromFloat(l.GrossAmount),
	}
}
