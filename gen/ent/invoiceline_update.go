// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/predicate"
)

// InvoiceLineUpdate is the builder for updating InvoiceLine entities.
type InvoiceLineUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceLineMutation
}

// Where appends a list predicates to the InvoiceLineUpdate builder.
func (_u *InvoiceLineUpdate) Where(ps ...predicate.InvoiceLine) *InvoiceLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineUpdate) SetInvoiceID(v uuid.UUID) *InvoiceLineUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceLineUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InvoiceLineUpdate) SetPosition(v int) *InvoiceLineUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillablePosition(v *int) *InvoiceLineUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InvoiceLineUpdate) AddPosition(v int) *InvoiceLineUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InvoiceLineUpdate) SetName(v string) *InvoiceLineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableName(v *string) *InvoiceLineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceLineUpdate) SetDescription(v string) *InvoiceLineUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableDescription(v *string) *InvoiceLineUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InvoiceLineUpdate) ClearDescription() *InvoiceLineUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineUpdate) SetQuantity(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableQuantity(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineUpdate) AddQuantity(v float64) *InvoiceLineUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceLineUpdate) SetUnit(v string) *InvoiceLineUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableUnit(v *string) *InvoiceLineUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *InvoiceLineUpdate) ClearUnit() *InvoiceLineUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceLineUpdate) SetUnitPrice(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableUnitPrice(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceLineUpdate) AddUnitPrice(v float64) *InvoiceLineUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *InvoiceLineUpdate) SetNetAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableNetAmount(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *InvoiceLineUpdate) AddNetAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.AddNetAmount(v)
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceLineUpdate) SetTaxRate(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableTaxRate(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceLineUpdate) AddTaxRate(v float64) *InvoiceLineUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceLineUpdate) SetTaxAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableTaxAmount(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceLineUpdate) AddTaxAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *InvoiceLineUpdate) SetGrossAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableGrossAmount(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *InvoiceLineUpdate) AddGrossAmount(v float64) *InvoiceLineUpdate {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineUpdate) SetInvoice(v *Invoice) *InvoiceLineUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_u *InvoiceLineUpdate) Mutation() *InvoiceLineMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineUpdate) ClearInvoice() *InvoiceLineUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := invoiceline.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := invoiceline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLine.invoice"`)
	}
	return nil
}

func (_u *InvoiceLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceline.Table, invoiceline.Columns, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(invoiceline.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(invoiceline.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(invoiceline.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceline.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(invoiceline.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoiceline.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(invoiceline.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(invoiceline.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(invoiceline.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoiceline.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoiceline.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoiceline.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoiceline.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(invoiceline.FieldGrossAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(invoiceline.FieldGrossAmount, field.TypeFloat64, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.InvoiceTable,
			Columns: []string{invoiceline.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.InvoiceTable,
			Columns: []string{invoiceline.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceLineUpdateOne is the builder for updating a single InvoiceLine entity.
type InvoiceLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceLineMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineUpdateOne) SetInvoiceID(v uuid.UUID) *InvoiceLineUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InvoiceLineUpdateOne) SetPosition(v int) *InvoiceLineUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillablePosition(v *int) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InvoiceLineUpdateOne) AddPosition(v int) *InvoiceLineUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InvoiceLineUpdateOne) SetName(v string) *InvoiceLineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableName(v *string) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceLineUpdateOne) SetDescription(v string) *InvoiceLineUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableDescription(v *string) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InvoiceLineUpdateOne) ClearDescription() *InvoiceLineUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineUpdateOne) SetQuantity(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableQuantity(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineUpdateOne) AddQuantity(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceLineUpdateOne) SetUnit(v string) *InvoiceLineUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableUnit(v *string) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *InvoiceLineUpdateOne) ClearUnit() *InvoiceLineUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceLineUpdateOne) SetUnitPrice(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableUnitPrice(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceLineUpdateOne) AddUnitPrice(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *InvoiceLineUpdateOne) SetNetAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableNetAmount(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *InvoiceLineUpdateOne) AddNetAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddNetAmount(v)
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceLineUpdateOne) SetTaxRate(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableTaxRate(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceLineUpdateOne) AddTaxRate(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceLineUpdateOne) SetTaxAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceLineUpdateOne) AddTaxAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *InvoiceLineUpdateOne) SetGrossAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableGrossAmount(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *InvoiceLineUpdateOne) AddGrossAmount(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineUpdateOne) SetInvoice(v *Invoice) *InvoiceLineUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_u *InvoiceLineUpdateOne) Mutation() *InvoiceLineMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineUpdateOne) ClearInvoice() *InvoiceLineUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the InvoiceLineUpdate builder.
func (_u *InvoiceLineUpdateOne) Where(ps ...predicate.InvoiceLine) *InvoiceLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceLineUpdateOne) Select(field string, fields ...string) *InvoiceLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceLine entity.
func (_u *InvoiceLineUpdateOne) Save(ctx context.Context) (*InvoiceLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineUpdateOne) SaveX(ctx context.Context) *InvoiceLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := invoiceline.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := invoiceline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLine.invoice"`)
	}
	return nil
}

func (_u *InvoiceLineUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceline.Table, invoiceline.Columns, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceline.FieldID)
		for _, f := range fields {
			if !invoiceline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceline.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(invoiceline.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(invoiceline.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(invoiceline.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceline.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(invoiceline.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoiceline.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(invoiceline.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(invoiceline.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(invoiceline.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoiceline.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoiceline.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoiceline.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoiceline.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(invoiceline.FieldGrossAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(invoiceline.FieldGrossAmount, field.TypeFloat64, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.InvoiceTable,
			Columns: []string{invoiceline.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.InvoiceTable,
			Columns: []string{invoiceline.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
