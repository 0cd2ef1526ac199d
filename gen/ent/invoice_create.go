// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *InvoiceCreate) SetJobID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableJobID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *InvoiceCreate) SetIssueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableIssueDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetIssueDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceCreate) SetDueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDueDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetSellerName sets the "seller_name" field.
func (_c *InvoiceCreate) SetSellerName(v string) *InvoiceCreate {
	_c.mutation.SetSellerName(v)
	return _c
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerName(*v)
	}
	return _c
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_c *InvoiceCreate) SetSellerTaxID(v string) *InvoiceCreate {
	_c.mutation.SetSellerTaxID(v)
	return _c
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerTaxID(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerTaxID(*v)
	}
	return _c
}

// SetSellerAddress sets the "seller_address" field.
func (_c *InvoiceCreate) SetSellerAddress(v string) *InvoiceCreate {
	_c.mutation.SetSellerAddress(v)
	return _c
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerAddress(*v)
	}
	return _c
}

// SetSellerEmail sets the "seller_email" field.
func (_c *InvoiceCreate) SetSellerEmail(v string) *InvoiceCreate {
	_c.mutation.SetSellerEmail(v)
	return _c
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerEmail(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerEmail(*v)
	}
	return _c
}

// SetSellerPhone sets the "seller_phone" field.
func (_c *InvoiceCreate) SetSellerPhone(v string) *InvoiceCreate {
	_c.mutation.SetSellerPhone(v)
	return _c
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerPhone(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerPhone(*v)
	}
	return _c
}

// SetSellerAccountNumber sets the "seller_account_number" field.
func (_c *InvoiceCreate) SetSellerAccountNumber(v string) *InvoiceCreate {
	_c.mutation.SetSellerAccountNumber(v)
	return _c
}

// SetNillableSellerAccountNumber sets the "seller_account_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerAccountNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerAccountNumber(*v)
	}
	return _c
}

// SetBuyerName sets the "buyer_name" field.
func (_c *InvoiceCreate) SetBuyerName(v string) *InvoiceCreate {
	_c.mutation.SetBuyerName(v)
	return _c
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBuyerName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBuyerName(*v)
	}
	return _c
}

// SetBuyerTaxID sets the "buyer_tax_id" field.
func (_c *InvoiceCreate) SetBuyerTaxID(v string) *InvoiceCreate {
	_c.mutation.SetBuyerTaxID(v)
	return _c
}

// SetNillableBuyerTaxID sets the "buyer_tax_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBuyerTaxID(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBuyerTaxID(*v)
	}
	return _c
}

// SetBuyerAddress sets the "buyer_address" field.
func (_c *InvoiceCreate) SetBuyerAddress(v string) *InvoiceCreate {
	_c.mutation.SetBuyerAddress(v)
	return _c
}

// SetNillableBuyerAddress sets the "buyer_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBuyerAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBuyerAddress(*v)
	}
	return _c
}

// SetBuyerEmail sets the "buyer_email" field.
func (_c *InvoiceCreate) SetBuyerEmail(v string) *InvoiceCreate {
	_c.mutation.SetBuyerEmail(v)
	return _c
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBuyerEmail(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBuyerEmail(*v)
	}
	return _c
}

// SetBuyerPhone sets the "buyer_phone" field.
func (_c *InvoiceCreate) SetBuyerPhone(v string) *InvoiceCreate {
	_c.mutation.SetBuyerPhone(v)
	return _c
}

// SetNillableBuyerPhone sets the "buyer_phone" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBuyerPhone(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBuyerPhone(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v float64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *InvoiceCreate) SetTaxAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *InvoiceCreate) SetCurrencyCode(v string) *InvoiceCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *InvoiceCreate) SetPaymentMethod(v string) *InvoiceCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentMethod(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *InvoiceCreate) SetPaymentStatus(v string) *InvoiceCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetSourceFormat sets the "source_format" field.
func (_c *InvoiceCreate) SetSourceFormat(v string) *InvoiceCreate {
	_c.mutation.SetSourceFormat(v)
	return _c
}

// SetRawExcerpt sets the "raw_excerpt" field.
func (_c *InvoiceCreate) SetRawExcerpt(v string) *InvoiceCreate {
	_c.mutation.SetRawExcerpt(v)
	return _c
}

// SetNillableRawExcerpt sets the "raw_excerpt" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableRawExcerpt(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetRawExcerpt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_c *InvoiceCreate) SetJob(v *ImportJob) *InvoiceCreate {
	return _c.SetJobID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_c *InvoiceCreate) AddLineIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_c *InvoiceCreate) AddLines(v ...*InvoiceLine) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Invoice.subtotal"`)}
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "Invoice.tax_amount"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Invoice.total_amount"`)}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Invoice.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFormat(); !ok {
		return &ValidationError{Name: "source_format", err: errors.New(`ent: missing required field "Invoice.source_format"`)}
	}
	if v, ok := _c.mutation.SourceFormat(); ok {
		if err := invoice.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
		_node.SellerName = &value
	}
	if value, ok := _c.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
		_node.SellerTaxID = &value
	}
	if value, ok := _c.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
		_node.SellerAddress = &value
	}
	if value, ok := _c.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
		_node.SellerEmail = &value
	}
	if value, ok := _c.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
		_node.SellerPhone = &value
	}
	if value, ok := _c.mutation.SellerAccountNumber(); ok {
		_spec.SetField(invoice.FieldSellerAccountNumber, field.TypeString, value)
		_node.SellerAccountNumber = &value
	}
	if value, ok := _c.mutation.BuyerName(); ok {
		_spec.SetField(invoice.FieldBuyerName, field.TypeString, value)
		_node.BuyerName = &value
	}
	if value, ok := _c.mutation.BuyerTaxID(); ok {
		_spec.SetField(invoice.FieldBuyerTaxID, field.TypeString, value)
		_node.BuyerTaxID = &value
	}
	if value, ok := _c.mutation.BuyerAddress(); ok {
		_spec.SetField(invoice.FieldBuyerAddress, field.TypeString, value)
		_node.BuyerAddress = &value
	}
	if value, ok := _c.mutation.BuyerEmail(); ok {
		_spec.SetField(invoice.FieldBuyerEmail, field.TypeString, value)
		_node.BuyerEmail = &value
	}
	if value, ok := _c.mutation.BuyerPhone(); ok {
		_spec.SetField(invoice.FieldBuyerPhone, field.TypeString, value)
		_node.BuyerPhone = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
		_node.PaymentStatus = &value
	}
	if value, ok := _c.mutation.SourceFormat(); ok {
		_spec.SetField(invoice.FieldSourceFormat, field.TypeString, value)
		_node.SourceFormat = value
	}
	if value, ok := _c.mutation.RawExcerpt(); ok {
		_spec.SetField(invoice.FieldRawExcerpt, field.TypeString, value)
		_node.RawExcerpt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
