// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
)

// InvoiceLineCreate is the builder for creating a InvoiceLine entity.
type InvoiceLineCreate struct {
	config
	mutation *InvoiceLineMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceLineCreate) SetInvoiceID(v uuid.UUID) *InvoiceLineCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *InvoiceLineCreate) SetPosition(v int) *InvoiceLineCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetName sets the "name" field.
func (_c *InvoiceLineCreate) SetName(v string) *InvoiceLineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InvoiceLineCreate) SetDescription(v string) *InvoiceLineCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillableDescription(v *string) *InvoiceLineCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InvoiceLineCreate) SetQuantity(v float64) *InvoiceLineCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *InvoiceLineCreate) SetUnit(v string) *InvoiceLineCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillableUnit(v *string) *InvoiceLineCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *InvoiceLineCreate) SetUnitPrice(v float64) *InvoiceLineCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *InvoiceLineCreate) SetNetAmount(v float64) *InvoiceLineCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *InvoiceLineCreate) SetTaxRate(v float64) *InvoiceLineCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *InvoiceLineCreate) SetTaxAmount(v float64) *InvoiceLineCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetGrossAmount sets the "gross_amount" field.
func (_c *InvoiceLineCreate) SetGrossAmount(v float64) *InvoiceLineCreate {
	_c.mutation.SetGrossAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceLineCreate) SetID(v uuid.UUID) *InvoiceLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillableID(v *uuid.UUID) *InvoiceLineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceLineCreate) SetInvoice(v *Invoice) *InvoiceLineCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_c *InvoiceLineCreate) Mutation() *InvoiceLineMutation {
	return _c.mutation
}

// Save creates the InvoiceLine in the database.
func (_c *InvoiceLineCreate) Save(ctx context.Context) (*InvoiceLine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceLineCreate) SaveX(ctx context.Context) *InvoiceLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceLineCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceLineCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "InvoiceLine.invoice_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "InvoiceLine.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := invoiceline.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InvoiceLine.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := invoiceline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "InvoiceLine.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "InvoiceLine.unit_price"`)}
	}
	if _, ok := _c.mutation.NetAmount(); !ok {
		return &ValidationError{Name: "net_amount", err: errors.New(`ent: missing required field "InvoiceLine.net_amount"`)}
	}
	if _, ok := _c.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`ent: missing required field "InvoiceLine.tax_rate"`)}
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "InvoiceLine.tax_amount"`)}
	}
	if _, ok := _c.mutation.GrossAmount(); !ok {
		return &ValidationError{Name: "gross_amount", err: errors.New(`ent: missing required field "InvoiceLine.gross_amount"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "InvoiceLine.invoice"`)}
	}
	return nil
}

func (_c *InvoiceLineCreate) sqlSave(ctx context.Context) (*InvoiceLine, error) {
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

func (_c *InvoiceLineCreate) createSpec() (*InvoiceLine, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceline.Table, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(invoiceline.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(invoiceline.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(invoiceline.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(invoiceline.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceline.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(invoiceline.FieldNetAmount, field.TypeFloat64, value)
		_node.NetAmount = value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(invoiceline.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(invoiceline.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = value
	}
	if value, ok := _c.mutation.GrossAmount(); ok {
		_spec.SetField(invoiceline.FieldGrossAmount, field.TypeFloat64, value)
		_node.GrossAmount = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceLineCreateBulk is the builder for creating many InvoiceLine entities in bulk.
type InvoiceLineCreateBulk struct {
	config
	err      error
	builders []*InvoiceLineCreate
}

// Save creates the InvoiceLine entities in the database.
func (_c *InvoiceLineCreateBulk) Save(ctx context.Context) ([]*InvoiceLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceLineMutation)
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
func (_c *InvoiceLineCreateBulk) SaveX(ctx context.Context) []*InvoiceLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
