// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/predicate"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ImportJobUpdate) SetSourcePath(v string) *ImportJobUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSourcePath(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ImportJobUpdate) SetContentHash(v string) *ImportJobUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableContentHash(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ImportJobUpdate) ClearContentHash() *ImportJobUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *ImportJobUpdate) SetSourceFormat(v string) *ImportJobUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSourceFormat(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInvoiceCount sets the "invoice_count" field.
func (_u *ImportJobUpdate) SetInvoiceCount(v int) *ImportJobUpdate {
	_u.mutation.ResetInvoiceCount()
	_u.mutation.SetInvoiceCount(v)
	return _u
}

// SetNillableInvoiceCount sets the "invoice_count" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableInvoiceCount(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetInvoiceCount(*v)
	}
	return _u
}

// AddInvoiceCount adds value to the "invoice_count" field.
func (_u *ImportJobUpdate) AddInvoiceCount(v int) *ImportJobUpdate {
	_u.mutation.AddInvoiceCount(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ImportJobUpdate) SetRawText(v string) *ImportJobUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableRawText(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ImportJobUpdate) ClearRawText() *ImportJobUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportJobUpdate) SetExtractedJSON(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportJobUpdate) AppendExtractedJSON(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportJobUpdate) ClearExtractedJSON() *ImportJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ImportJobUpdate) AddInvoiceIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ImportJobUpdate) AddInvoices(v ...*Invoice) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ImportJobUpdate) ClearInvoices() *ImportJobUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ImportJobUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ImportJobUpdate) RemoveInvoices(v ...*Invoice) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := importjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := importjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(importjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(importjob.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(importjob.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(importjob.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceCount(); ok {
		_spec.SetField(importjob.FieldInvoiceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvoiceCount(); ok {
		_spec.AddField(importjob.FieldInvoiceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(importjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(importjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importjob.FieldExtractedJSON, field.TypeJSON)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
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
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *ImportJobUpdateOne) SetSourcePath(v string) *ImportJobUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSourcePath(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ImportJobUpdateOne) SetContentHash(v string) *ImportJobUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableContentHash(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ImportJobUpdateOne) ClearContentHash() *ImportJobUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *ImportJobUpdateOne) SetSourceFormat(v string) *ImportJobUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSourceFormat(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInvoiceCount sets the "invoice_count" field.
func (_u *ImportJobUpdateOne) SetInvoiceCount(v int) *ImportJobUpdateOne {
	_u.mutation.ResetInvoiceCount()
	_u.mutation.SetInvoiceCount(v)
	return _u
}

// SetNillableInvoiceCount sets the "invoice_count" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableInvoiceCount(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetInvoiceCount(*v)
	}
	return _u
}

// AddInvoiceCount adds value to the "invoice_count" field.
func (_u *ImportJobUpdateOne) AddInvoiceCount(v int) *ImportJobUpdateOne {
	_u.mutation.AddInvoiceCount(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ImportJobUpdateOne) SetRawText(v string) *ImportJobUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableRawText(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ImportJobUpdateOne) ClearRawText() *ImportJobUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportJobUpdateOne) ClearExtractedJSON() *ImportJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ImportJobUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ImportJobUpdateOne) AddInvoices(v ...*Invoice) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ImportJobUpdateOne) ClearInvoices() *ImportJobUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ImportJobUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ImportJobUpdateOne) RemoveInvoices(v ...*Invoice) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := importjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := importjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(importjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(importjob.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(importjob.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(importjob.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceCount(); ok {
		_spec.SetField(importjob.FieldInvoiceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvoiceCount(); ok {
		_spec.AddField(importjob.FieldInvoiceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(importjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(importjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importjob.FieldExtractedJSON, field.TypeJSON)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.InvoicesTable,
			Columns: []string{importjob.InvoicesColumn},
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
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
