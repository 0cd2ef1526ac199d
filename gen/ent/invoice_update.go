// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceUpdate) SetJobID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableJobID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *InvoiceUpdate) ClearJobID() *InvoiceUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdate) SetIssueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIssueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *InvoiceUpdate) ClearIssueDate() *InvoiceUpdate {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdate) SetSellerName(v string) *InvoiceUpdate {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// ClearSellerName clears the value of the "seller_name" field.
func (_u *InvoiceUpdate) ClearSellerName() *InvoiceUpdate {
	_u.mutation.ClearSellerName()
	return _u
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_u *InvoiceUpdate) SetSellerTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetSellerTaxID(v)
	return _u
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerTaxID(*v)
	}
	return _u
}

// ClearSellerTaxID clears the value of the "seller_tax_id" field.
func (_u *InvoiceUpdate) ClearSellerTaxID() *InvoiceUpdate {
	_u.mutation.ClearSellerTaxID()
	return _u
}

// SetSellerAddress sets the "seller_address" field.
func (_u *InvoiceUpdate) SetSellerAddress(v string) *InvoiceUpdate {
	_u.mutation.SetSellerAddress(v)
	return _u
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerAddress(*v)
	}
	return _u
}

// ClearSellerAddress clears the value of the "seller_address" field.
func (_u *InvoiceUpdate) ClearSellerAddress() *InvoiceUpdate {
	_u.mutation.ClearSellerAddress()
	return _u
}

// SetSellerEmail sets the "seller_email" field.
func (_u *InvoiceUpdate) SetSellerEmail(v string) *InvoiceUpdate {
	_u.mutation.SetSellerEmail(v)
	return _u
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerEmail(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerEmail(*v)
	}
	return _u
}

// ClearSellerEmail clears the value of the "seller_email" field.
func (_u *InvoiceUpdate) ClearSellerEmail() *InvoiceUpdate {
	_u.mutation.ClearSellerEmail()
	return _u
}

// SetSellerPhone sets the "seller_phone" field.
func (_u *InvoiceUpdate) SetSellerPhone(v string) *InvoiceUpdate {
	_u.mutation.SetSellerPhone(v)
	return _u
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerPhone(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerPhone(*v)
	}
	return _u
}

// ClearSellerPhone clears the value of the "seller_phone" field.
func (_u *InvoiceUpdate) ClearSellerPhone() *InvoiceUpdate {
	_u.mutation.ClearSellerPhone()
	return _u
}

// SetSellerAccountNumber sets the "seller_account_number" field.
func (_u *InvoiceUpdate) SetSellerAccountNumber(v string) *InvoiceUpdate {
	_u.mutation.SetSellerAccountNumber(v)
	return _u
}

// SetNillableSellerAccountNumber sets the "seller_account_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerAccountNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerAccountNumber(*v)
	}
	return _u
}

// ClearSellerAccountNumber clears the value of the "seller_account_number" field.
func (_u *InvoiceUpdate) ClearSellerAccountNumber() *InvoiceUpdate {
	_u.mutation.ClearSellerAccountNumber()
	return _u
}

// SetBuyerName sets the "buyer_name" field.
func (_u *InvoiceUpdate) SetBuyerName(v string) *InvoiceUpdate {
	_u.mutation.SetBuyerName(v)
	return _u
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyerName(*v)
	}
	return _u
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (_u *InvoiceUpdate) ClearBuyerName() *InvoiceUpdate {
	_u.mutation.ClearBuyerName()
	return _u
}

// SetBuyerTaxID sets the "buyer_tax_id" field.
func (_u *InvoiceUpdate) SetBuyerTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetBuyerTaxID(v)
	return _u
}

// SetNillableBuyerTaxID sets the "buyer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyerTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyerTaxID(*v)
	}
	return _u
}

// ClearBuyerTaxID clears the value of the "buyer_tax_id" field.
func (_u *InvoiceUpdate) ClearBuyerTaxID() *InvoiceUpdate {
	_u.mutation.ClearBuyerTaxID()
	return _u
}

// SetBuyerAddress sets the "buyer_address" field.
func (_u *InvoiceUpdate) SetBuyerAddress(v string) *InvoiceUpdate {
	_u.mutation.SetBuyerAddress(v)
	return _u
}

// SetNillableBuyerAddress sets the "buyer_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyerAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyerAddress(*v)
	}
	return _u
}

// ClearBuyerAddress clears the value of the "buyer_address" field.
func (_u *InvoiceUpdate) ClearBuyerAddress() *InvoiceUpdate {
	_u.mutation.ClearBuyerAddress()
	return _u
}

// SetBuyerEmail sets the "buyer_email" field.
func (_u *InvoiceUpdate) SetBuyerEmail(v string) *InvoiceUpdate {
	_u.mutation.SetBuyerEmail(v)
	return _u
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyerEmail(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyerEmail(*v)
	}
	return _u
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (_u *InvoiceUpdate) ClearBuyerEmail() *InvoiceUpdate {
	_u.mutation.ClearBuyerEmail()
	return _u
}

// SetBuyerPhone sets the "buyer_phone" field.
func (_u *InvoiceUpdate) SetBuyerPhone(v string) *InvoiceUpdate {
	_u.mutation.SetBuyerPhone(v)
	return _u
}

// SetNillableBuyerPhone sets the "buyer_phone" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyerPhone(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyerPhone(*v)
	}
	return _u
}

// ClearBuyerPhone clears the value of the "buyer_phone" field.
func (_u *InvoiceUpdate) ClearBuyerPhone() *InvoiceUpdate {
	_u.mutation.ClearBuyerPhone()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *InvoiceUpdate) SetPaymentMethod(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentMethod(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *InvoiceUpdate) ClearPaymentMethod() *InvoiceUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *InvoiceUpdate) SetPaymentStatus(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// ClearPaymentStatus clears the value of the "payment_status" field.
func (_u *InvoiceUpdate) ClearPaymentStatus() *InvoiceUpdate {
	_u.mutation.ClearPaymentStatus()
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *InvoiceUpdate) SetSourceFormat(v string) *InvoiceUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSourceFormat(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetRawExcerpt sets the "raw_excerpt" field.
func (_u *InvoiceUpdate) SetRawExcerpt(v string) *InvoiceUpdate {
	_u.mutation.SetRawExcerpt(v)
	return _u
}

// SetNillableRawExcerpt sets the "raw_excerpt" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawExcerpt(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawExcerpt(*v)
	}
	return _u
}

// ClearRawExcerpt clears the value of the "raw_excerpt" field.
func (_u *InvoiceUpdate) ClearRawExcerpt() *InvoiceUpdate {
	_u.mutation.ClearRawExcerpt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_u *InvoiceUpdate) SetJob(v *ImportJob) *InvoiceUpdate {
	return _u.SetJobID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdate) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) AddLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (_u *InvoiceUpdate) ClearJob() *InvoiceUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) ClearLines() *InvoiceUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdate) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdate) RemoveLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := invoice.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_format": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(invoice.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if _u.mutation.SellerNameCleared() {
		_spec.ClearField(invoice.FieldSellerName, field.TypeString)
	}
	if value, ok := _u.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
	}
	if _u.mutation.SellerTaxIDCleared() {
		_spec.ClearField(invoice.FieldSellerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
	}
	if _u.mutation.SellerAddressCleared() {
		_spec.ClearField(invoice.FieldSellerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
	}
	if _u.mutation.SellerEmailCleared() {
		_spec.ClearField(invoice.FieldSellerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
	}
	if _u.mutation.SellerPhoneCleared() {
		_spec.ClearField(invoice.FieldSellerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAccountNumber(); ok {
		_spec.SetField(invoice.FieldSellerAccountNumber, field.TypeString, value)
	}
	if _u.mutation.SellerAccountNumberCleared() {
		_spec.ClearField(invoice.FieldSellerAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerName(); ok {
		_spec.SetField(invoice.FieldBuyerName, field.TypeString, value)
	}
	if _u.mutation.BuyerNameCleared() {
		_spec.ClearField(invoice.FieldBuyerName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerTaxID(); ok {
		_spec.SetField(invoice.FieldBuyerTaxID, field.TypeString, value)
	}
	if _u.mutation.BuyerTaxIDCleared() {
		_spec.ClearField(invoice.FieldBuyerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerAddress(); ok {
		_spec.SetField(invoice.FieldBuyerAddress, field.TypeString, value)
	}
	if _u.mutation.BuyerAddressCleared() {
		_spec.ClearField(invoice.FieldBuyerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerEmail(); ok {
		_spec.SetField(invoice.FieldBuyerEmail, field.TypeString, value)
	}
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(invoice.FieldBuyerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerPhone(); ok {
		_spec.SetField(invoice.FieldBuyerPhone, field.TypeString, value)
	}
	if _u.mutation.BuyerPhoneCleared() {
		_spec.ClearField(invoice.FieldBuyerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if _u.mutation.PaymentStatusCleared() {
		_spec.ClearField(invoice.FieldPaymentStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(invoice.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExcerpt(); ok {
		_spec.SetField(invoice.FieldRawExcerpt, field.TypeString, value)
	}
	if _u.mutation.RawExcerptCleared() {
		_spec.ClearField(invoice.FieldRawExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceUpdateOne) SetJobID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableJobID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *InvoiceUpdateOne) ClearJobID() *InvoiceUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdateOne) SetIssueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIssueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *InvoiceUpdateOne) ClearIssueDate() *InvoiceUpdateOne {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdateOne) SetSellerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// ClearSellerName clears the value of the "seller_name" field.
func (_u *InvoiceUpdateOne) ClearSellerName() *InvoiceUpdateOne {
	_u.mutation.ClearSellerName()
	return _u
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_u *InvoiceUpdateOne) SetSellerTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerTaxID(v)
	return _u
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerTaxID(*v)
	}
	return _u
}

// ClearSellerTaxID clears the value of the "seller_tax_id" field.
func (_u *InvoiceUpdateOne) ClearSellerTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearSellerTaxID()
	return _u
}

// SetSellerAddress sets the "seller_address" field.
func (_u *InvoiceUpdateOne) SetSellerAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerAddress(v)
	return _u
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerAddress(*v)
	}
	return _u
}

// ClearSellerAddress clears the value of the "seller_address" field.
func (_u *InvoiceUpdateOne) ClearSellerAddress() *InvoiceUpdateOne {
	_u.mutation.ClearSellerAddress()
	return _u
}

// SetSellerEmail sets the "seller_email" field.
func (_u *InvoiceUpdateOne) SetSellerEmail(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerEmail(v)
	return _u
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerEmail(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerEmail(*v)
	}
	return _u
}

// ClearSellerEmail clears the value of the "seller_email" field.
func (_u *InvoiceUpdateOne) ClearSellerEmail() *InvoiceUpdateOne {
	_u.mutation.ClearSellerEmail()
	return _u
}

// SetSellerPhone sets the "seller_phone" field.
func (_u *InvoiceUpdateOne) SetSellerPhone(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerPhone(v)
	return _u
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerPhone(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerPhone(*v)
	}
	return _u
}

// ClearSellerPhone clears the value of the "seller_phone" field.
func (_u *InvoiceUpdateOne) ClearSellerPhone() *InvoiceUpdateOne {
	_u.mutation.ClearSellerPhone()
	return _u
}

// SetSellerAccountNumber sets the "seller_account_number" field.
func (_u *InvoiceUpdateOne) SetSellerAccountNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerAccountNumber(v)
	return _u
}

// SetNillableSellerAccountNumber sets the "seller_account_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerAccountNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerAccountNumber(*v)
	}
	return _u
}

// ClearSellerAccountNumber clears the value of the "seller_account_number" field.
func (_u *InvoiceUpdateOne) ClearSellerAccountNumber() *InvoiceUpdateOne {
	_u.mutation.ClearSellerAccountNumber()
	return _u
}

// SetBuyerName sets the "buyer_name" field.
func (_u *InvoiceUpdateOne) SetBuyerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyerName(v)
	return _u
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyerName(*v)
	}
	return _u
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (_u *InvoiceUpdateOne) ClearBuyerName() *InvoiceUpdateOne {
	_u.mutation.ClearBuyerName()
	return _u
}

// SetBuyerTaxID sets the "buyer_tax_id" field.
func (_u *InvoiceUpdateOne) SetBuyerTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyerTaxID(v)
	return _u
}

// SetNillableBuyerTaxID sets the "buyer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyerTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyerTaxID(*v)
	}
	return _u
}

// ClearBuyerTaxID clears the value of the "buyer_tax_id" field.
func (_u *InvoiceUpdateOne) ClearBuyerTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearBuyerTaxID()
	return _u
}

// SetBuyerAddress sets the "buyer_address" field.
func (_u *InvoiceUpdateOne) SetBuyerAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyerAddress(v)
	return _u
}

// SetNillableBuyerAddress sets the "buyer_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyerAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyerAddress(*v)
	}
	return _u
}

// ClearBuyerAddress clears the value of the "buyer_address" field.
func (_u *InvoiceUpdateOne) ClearBuyerAddress() *InvoiceUpdateOne {
	_u.mutation.ClearBuyerAddress()
	return _u
}

// SetBuyerEmail sets the "buyer_email" field.
func (_u *InvoiceUpdateOne) SetBuyerEmail(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyerEmail(v)
	return _u
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyerEmail(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyerEmail(*v)
	}
	return _u
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (_u *InvoiceUpdateOne) ClearBuyerEmail() *InvoiceUpdateOne {
	_u.mutation.ClearBuyerEmail()
	return _u
}

// SetBuyerPhone sets the "buyer_phone" field.
func (_u *InvoiceUpdateOne) SetBuyerPhone(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyerPhone(v)
	return _u
}

// SetNillableBuyerPhone sets the "buyer_phone" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyerPhone(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyerPhone(*v)
	}
	return _u
}

// ClearBuyerPhone clears the value of the "buyer_phone" field.
func (_u *InvoiceUpdateOne) ClearBuyerPhone() *InvoiceUpdateOne {
	_u.mutation.ClearBuyerPhone()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *InvoiceUpdateOne) SetPaymentMethod(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentMethod(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *InvoiceUpdateOne) ClearPaymentMethod() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *InvoiceUpdateOne) SetPaymentStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// ClearPaymentStatus clears the value of the "payment_status" field.
func (_u *InvoiceUpdateOne) ClearPaymentStatus() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentStatus()
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *InvoiceUpdateOne) SetSourceFormat(v string) *InvoiceUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSourceFormat(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetRawExcerpt sets the "raw_excerpt" field.
func (_u *InvoiceUpdateOne) SetRawExcerpt(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawExcerpt(v)
	return _u
}

// SetNillableRawExcerpt sets the "raw_excerpt" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawExcerpt(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawExcerpt(*v)
	}
	return _u
}

// ClearRawExcerpt clears the value of the "raw_excerpt" field.
func (_u *InvoiceUpdateOne) ClearRawExcerpt() *InvoiceUpdateOne {
	_u.mutation.ClearRawExcerpt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_u *InvoiceUpdateOne) SetJob(v *ImportJob) *InvoiceUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdateOne) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) AddLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (_u *InvoiceUpdateOne) ClearJob() *InvoiceUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) ClearLines() *InvoiceUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdateOne) RemoveLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := invoice.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_format": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(invoice.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if _u.mutation.SellerNameCleared() {
		_spec.ClearField(invoice.FieldSellerName, field.TypeString)
	}
	if value, ok := _u.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
	}
	if _u.mutation.SellerTaxIDCleared() {
		_spec.ClearField(invoice.FieldSellerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
	}
	if _u.mutation.SellerAddressCleared() {
		_spec.ClearField(invoice.FieldSellerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
	}
	if _u.mutation.SellerEmailCleared() {
		_spec.ClearField(invoice.FieldSellerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
	}
	if _u.mutation.SellerPhoneCleared() {
		_spec.ClearField(invoice.FieldSellerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAccountNumber(); ok {
		_spec.SetField(invoice.FieldSellerAccountNumber, field.TypeString, value)
	}
	if _u.mutation.SellerAccountNumberCleared() {
		_spec.ClearField(invoice.FieldSellerAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerName(); ok {
		_spec.SetField(invoice.FieldBuyerName, field.TypeString, value)
	}
	if _u.mutation.BuyerNameCleared() {
		_spec.ClearField(invoice.FieldBuyerName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerTaxID(); ok {
		_spec.SetField(invoice.FieldBuyerTaxID, field.TypeString, value)
	}
	if _u.mutation.BuyerTaxIDCleared() {
		_spec.ClearField(invoice.FieldBuyerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerAddress(); ok {
		_spec.SetField(invoice.FieldBuyerAddress, field.TypeString, value)
	}
	if _u.mutation.BuyerAddressCleared() {
		_spec.ClearField(invoice.FieldBuyerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerEmail(); ok {
		_spec.SetField(invoice.FieldBuyerEmail, field.TypeString, value)
	}
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(invoice.FieldBuyerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerPhone(); ok {
		_spec.SetField(invoice.FieldBuyerPhone, field.TypeString, value)
	}
	if _u.mutation.BuyerPhoneCleared() {
		_spec.ClearField(invoice.FieldBuyerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if _u.mutation.PaymentStatusCleared() {
		_spec.ClearField(invoice.FieldPaymentStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(invoice.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExcerpt(); ok {
		_spec.SetField(invoice.FieldRawExcerpt, field.TypeString, value)
	}
	if _u.mutation.RawExcerptCleared() {
		_spec.ClearField(invoice.FieldRawExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
