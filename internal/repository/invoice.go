package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/common"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
)

// InvoiceRepository persists normalized invoices. The dedup key is
// (invoice_number, source_format): re-importing the same document replaces
// the stored record and its lines instead of duplicating them.
type InvoiceRepository interface {
	Upsert(ctx context.Context, jobID uuid.UUID, inv *entity.Invoice) (uuid.UUID, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Invoice, error)
	ListLines(ctx context.Context, invoiceID uuid.UUID) ([]*ent.InvoiceLine, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Upsert(ctx context.Context, jobID uuid.UUID, inv *entity.Invoice) (uuid.UUID, error) {
	if err := validateInvoice(inv); err != nil {
		r.logger.Error("invoice rejected", "job_id", jobID, "error", err)
		return uuid.Nil, err
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := r.upsertTx(ctx, tx, jobID, inv)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("rollback failed", "error", rbErr)
		}
		r.logger.Error("invoice upsert failed", "job_id", jobID, "error", err)
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	r.logger.Info("invoice stored",
		"invoice_id", id,
		"job_id", jobID,
		"request_id", common.RequestIDFromContext(ctx),
		"lines", len(inv.LineItems),
	)
	return id, nil
}

// validateInvoice rejects records that would violate column constraints before
// a transaction is opened.
func validateInvoice(inv *entity.Invoice) error {
	v := common.NewValidator().
		Field("currency_code", inv.Currency, common.Required, common.CurrencyCode).
		Field("source_format", string(inv.SourceFormat), common.Required)
	if inv.InvoiceNumber != nil {
		v.Field("invoice_number", *inv.InvoiceNumber, common.Required, common.MaxLengthRule(128))
	}
	return common.ValidateAndReturnError(v)
}

func (r *invoiceRepository) upsertTx(ctx context.Context, tx *ent.Tx, jobID uuid.UUID, inv *entity.Invoice) (uuid.UUID, error) {
	var existing *ent.Invoice
	if inv.InvoiceNumber != nil {
		found, err := tx.Invoice.Query().
			Where(
				invoice.InvoiceNumber(*inv.InvoiceNumber),
				invoice.SourceFormat(string(inv.SourceFormat)),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return uuid.Nil, err
		}
		existing = found
	}

	var id uuid.UUID
	if existing != nil {
		id = existing.ID
		if _, err := tx.InvoiceLine.Delete().
			Where(invoiceline.InvoiceID(id)).
			Exec(ctx); err != nil {
			return uuid.Nil, err
		}
		if err := r.fillUpdate(tx.Invoice.UpdateOneID(id), jobID, inv).Exec(ctx); err != nil {
			return uuid.Nil, err
		}
	} else {
		created, err := r.fillCreate(tx.Invoice.Create(), jobID, inv).Save(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		id = created.ID
	}

	for _, item := range inv.LineItems {
		builder := tx.InvoiceLine.Create().
			SetInvoiceID(id).
			SetPosition(item.Position).
			SetName(item.Name).
			SetNillableDescription(item.Description).
			SetNillableUnit(item.Unit).
			SetQuantity(item.Quantity.InexactFloat64()).
			SetUnitPrice(item.UnitPrice.InexactFloat64()).
			SetNetAmount(item.NetAmount.InexactFloat64()).
			SetTaxRate(item.TaxRate.InexactFloat64()).
			SetTaxAmount(item.TaxAmount.InexactFloat64()).
			SetGrossAmount(item.GrossAmount.InexactFloat64())
		if _, err := builder.Save(ctx); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

func (r *invoiceRepository) fillCreate(b *ent.InvoiceCreate, jobID uuid.UUID, inv *entity.Invoice) *ent.InvoiceCreate {
	b = b.
		SetJobID(jobID).
		SetNillableInvoiceNumber(inv.InvoiceNumber).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableIssueDate(inv.IssueDate).
		SetNillableDueDate(inv.DueDate).
		SetNillableSellerName(inv.Seller.Name).
		SetNillableSellerTaxID(inv.Seller.TaxID).
		SetNillableSellerAddress(inv.Seller.Address).
		SetNillableSellerEmail(inv.Seller.Email).
		SetNillableSellerPhone(inv.Seller.Phone).
		SetNillableSellerAccountNumber(inv.Seller.AccountNumber).
		SetNillableBuyerName(inv.Buyer.Name).
		SetNillableBuyerTaxID(inv.Buyer.TaxID).
		SetNillableBuyerAddress(inv.Buyer.Address).
		SetNillableBuyerEmail(inv.Buyer.Email).
		SetNillableBuyerPhone(inv.Buyer.Phone).
		SetSubtotal(inv.Subtotal.InexactFloat64()).
		SetTaxAmount(inv.TaxAmount.InexactFloat64()).
		SetTotalAmount(inv.TotalAmount.InexactFloat64()).
		SetCurrencyCode(inv.Currency).
		SetNillablePaymentMethod(inv.PaymentMethod).
		SetSourceFormat(string(inv.SourceFormat)).
		SetRawExcerpt(inv.RawExcerpt)
	if inv.PaymentStatus != "" {
		b = b.SetPaymentStatus(string(inv.PaymentStatus))
	}
	return b
}

func (r *invoiceRepository) fillUpdate(b *ent.InvoiceUpdateOne, jobID uuid.UUID, inv *entity.Invoice) *ent.InvoiceUpdateOne {
	b = b.
		SetJobID(jobID).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableIssueDate(inv.IssueDate).
		SetNillableDueDate(inv.DueDate).
		SetNillableSellerName(inv.Seller.Name).
		SetNillableSellerTaxID(inv.Seller.TaxID).
		SetNillableSellerAddress(inv.Seller.Address).
		SetNillableSellerEmail(inv.Seller.Email).
		SetNillableSellerPhone(inv.Seller.Phone).
		SetNillableSellerAccountNumber(inv.Seller.AccountNumber).
		SetNillableBuyerName(inv.Buyer.Name).
		SetNillableBuyerTaxID(inv.Buyer.TaxID).
		SetNillableBuyerAddress(inv.Buyer.Address).
		SetNillableBuyerEmail(inv.Buyer.Email).
		SetNillableBuyerPhone(inv.Buyer.Phone).
		SetSubtotal(inv.Subtotal.InexactFloat64()).
		SetTaxAmount(inv.TaxAmount.InexactFloat64()).
		SetTotalAmount(inv.TotalAmount.InexactFloat64()).
		SetCurrencyCode(inv.Currency).
		SetNillablePaymentMethod(inv.PaymentMethod).
		SetRawExcerpt(inv.RawExcerpt)
	if inv.PaymentStatus != "" {
		b = b.SetPaymentStatus(string(inv.PaymentStatus))
	}
	return b
}

func (r *invoiceRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Invoice, error) {
	q := r.client.Invoice.Query()
	if fromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*toDate))
	}
	recs, err := q.Order(invoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}
	return recs, nil
}

func (r *invoiceRepository) ListLines(ctx context.Context, invoiceID uuid.UUID) ([]*ent.InvoiceLine, error) {
	lines, err := r.client.InvoiceLine.Query().
		Where(invoiceline.InvoiceID(invoiceID)).
		Order(invoiceline.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoice lines", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	return lines, nil
}
