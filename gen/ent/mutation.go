// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportJob   = "ImportJob"
	TypeInvoice     = "Invoice"
	TypeInvoiceLine = "InvoiceLine"
)

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	source_path          *string
	content_hash         *string
	source_format        *string
	status               *string
	started_at           *time.Time
	finished_at          *time.Time
	error_message        *string
	invoice_count        *int
	addinvoice_count     *int
	raw_text             *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	clearedFields        map[string]struct{}
	invoices             map[uuid.UUID]struct{}
	removedinvoices      map[uuid.UUID]struct{}
	clearedinvoices      bool
	done                 bool
	oldValue             func(context.Context) (*ImportJob, error)
	predicates           []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ImportJobMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ImportJobMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ImportJobMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ImportJobMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ImportJobMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *ImportJobMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[importjob.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *ImportJobMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[importjob.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ImportJobMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, importjob.FieldContentHash)
}

// SetSourceFormat sets the "source_format" field.
func (m *ImportJobMutation) SetSourceFormat(s string) {
	m.source_format = &s
}

// SourceFormat returns the value of the "source_format" field in the mutation.
func (m *ImportJobMutation) SourceFormat() (r string, exists bool) {
	v := m.source_format
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFormat returns the old "source_format" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSourceFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFormat: %w", err)
	}
	return oldValue.SourceFormat, nil
}

// ResetSourceFormat resets all changes to the "source_format" field.
func (m *ImportJobMutation) ResetSourceFormat() {
	m.source_format = nil
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ImportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ImportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ImportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[importjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ImportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ImportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, importjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetInvoiceCount sets the "invoice_count" field.
func (m *ImportJobMutation) SetInvoiceCount(i int) {
	m.invoice_count = &i
	m.addinvoice_count = nil
}

// InvoiceCount returns the value of the "invoice_count" field in the mutation.
func (m *ImportJobMutation) InvoiceCount() (r int, exists bool) {
	v := m.invoice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceCount returns the old "invoice_count" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldInvoiceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceCount: %w", err)
	}
	return oldValue.InvoiceCount, nil
}

// AddInvoiceCount adds i to the "invoice_count" field.
func (m *ImportJobMutation) AddInvoiceCount(i int) {
	if m.addinvoice_count != nil {
		*m.addinvoice_count += i
	} else {
		m.addinvoice_count = &i
	}
}

// AddedInvoiceCount returns the value that was added to the "invoice_count" field in this mutation.
func (m *ImportJobMutation) AddedInvoiceCount() (r int, exists bool) {
	v := m.addinvoice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInvoiceCount resets all changes to the "invoice_count" field.
func (m *ImportJobMutation) ResetInvoiceCount() {
	m.invoice_count = nil
	m.addinvoice_count = nil
}

// SetRawText sets the "raw_text" field.
func (m *ImportJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ImportJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ImportJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[importjob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ImportJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[importjob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ImportJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, importjob.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ImportJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ImportJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ImportJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ImportJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ImportJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[importjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ImportJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[importjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ImportJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, importjob.FieldExtractedJSON)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ImportJobMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ImportJobMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ImportJobMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ImportJobMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ImportJobMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ImportJobMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ImportJobMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.source_path != nil {
		fields = append(fields, importjob.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, importjob.FieldContentHash)
	}
	if m.source_format != nil {
		fields = append(fields, importjob.FieldSourceFormat)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.invoice_count != nil {
		fields = append(fields, importjob.FieldInvoiceCount)
	}
	if m.raw_text != nil {
		fields = append(fields, importjob.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, importjob.FieldExtractedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldSourcePath:
		return m.SourcePath()
	case importjob.FieldContentHash:
		return m.ContentHash()
	case importjob.FieldSourceFormat:
		return m.SourceFormat()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldFinishedAt:
		return m.FinishedAt()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldInvoiceCount:
		return m.InvoiceCount()
	case importjob.FieldRawText:
		return m.RawText()
	case importjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case importjob.FieldContentHash:
		return m.OldContentHash(ctx)
	case importjob.FieldSourceFormat:
		return m.OldSourceFormat(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldInvoiceCount:
		return m.OldInvoiceCount(ctx)
	case importjob.FieldRawText:
		return m.OldRawText(ctx)
	case importjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case importjob.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case importjob.FieldSourceFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFormat(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldInvoiceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceCount(v)
		return nil
	case importjob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case importjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addinvoice_count != nil {
		fields = append(fields, importjob.FieldInvoiceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldInvoiceCount:
		return m.AddedInvoiceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldInvoiceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInvoiceCount(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldContentHash) {
		fields = append(fields, importjob.FieldContentHash)
	}
	if m.FieldCleared(importjob.FieldFinishedAt) {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldRawText) {
		fields = append(fields, importjob.FieldRawText)
	}
	if m.FieldCleared(importjob.FieldExtractedJSON) {
		fields = append(fields, importjob.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldContentHash:
		m.ClearContentHash()
		return nil
	case importjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldRawText:
		m.ClearRawText()
		return nil
	case importjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case importjob.FieldContentHash:
		m.ResetContentHash()
		return nil
	case importjob.FieldSourceFormat:
		m.ResetSourceFormat()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldInvoiceCount:
		m.ResetInvoiceCount()
		return nil
	case importjob.FieldRawText:
		m.ResetRawText()
		return nil
	case importjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoices != nil {
		edges = append(edges, importjob.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinvoices != nil {
		edges = append(edges, importjob.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoices {
		edges = append(edges, importjob.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	switch name {
	case importjob.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	switch name {
	case importjob.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	invoice_number        *string
	invoice_date          *time.Time
	issue_date            *time.Time
	due_date              *time.Time
	seller_name           *string
	seller_tax_id         *string
	seller_address        *string
	seller_email          *string
	seller_phone          *string
	seller_account_number *string
	buyer_name            *string
	buyer_tax_id          *string
	buyer_address         *string
	buyer_email           *string
	buyer_phone           *string
	subtotal              *float64
	addsubtotal           *float64
	tax_amount            *float64
	addtax_amount         *float64
	total_amount          *float64
	addtotal_amount       *float64
	currency_code         *string
	payment_method        *string
	payment_status        *string
	source_format         *string
	raw_excerpt           *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	job                   *uuid.UUID
	clearedjob            bool
	lines                 map[uuid.UUID]struct{}
	removedlines          map[uuid.UUID]struct{}
	clearedlines          bool
	done                  bool
	oldValue              func(context.Context) (*Invoice, error)
	predicates            []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *InvoiceMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *InvoiceMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *InvoiceMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[invoice.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *InvoiceMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *InvoiceMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, invoice.FieldJobID)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *InvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[invoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, invoice.FieldInvoiceDate)
}

// SetIssueDate sets the "issue_date" field.
func (m *InvoiceMutation) SetIssueDate(t time.Time) {
	m.issue_date = &t
}

// IssueDate returns the value of the "issue_date" field in the mutation.
func (m *InvoiceMutation) IssueDate() (r time.Time, exists bool) {
	v := m.issue_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDate returns the old "issue_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIssueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDate: %w", err)
	}
	return oldValue.IssueDate, nil
}

// ClearIssueDate clears the value of the "issue_date" field.
func (m *InvoiceMutation) ClearIssueDate() {
	m.issue_date = nil
	m.clearedFields[invoice.FieldIssueDate] = struct{}{}
}

// IssueDateCleared returns if the "issue_date" field was cleared in this mutation.
func (m *InvoiceMutation) IssueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldIssueDate]
	return ok
}

// ResetIssueDate resets all changes to the "issue_date" field.
func (m *InvoiceMutation) ResetIssueDate() {
	m.issue_date = nil
	delete(m.clearedFields, invoice.FieldIssueDate)
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *InvoiceMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[invoice.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *InvoiceMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, invoice.FieldDueDate)
}

// SetSellerName sets the "seller_name" field.
func (m *InvoiceMutation) SetSellerName(s string) {
	m.seller_name = &s
}

// SellerName returns the value of the "seller_name" field in the mutation.
func (m *InvoiceMutation) SellerName() (r string, exists bool) {
	v := m.seller_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerName returns the old "seller_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerName: %w", err)
	}
	return oldValue.SellerName, nil
}

// ClearSellerName clears the value of the "seller_name" field.
func (m *InvoiceMutation) ClearSellerName() {
	m.seller_name = nil
	m.clearedFields[invoice.FieldSellerName] = struct{}{}
}

// SellerNameCleared returns if the "seller_name" field was cleared in this mutation.
func (m *InvoiceMutation) SellerNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerName]
	return ok
}

// ResetSellerName resets all changes to the "seller_name" field.
func (m *InvoiceMutation) ResetSellerName() {
	m.seller_name = nil
	delete(m.clearedFields, invoice.FieldSellerName)
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (m *InvoiceMutation) SetSellerTaxID(s string) {
	m.seller_tax_id = &s
}

// SellerTaxID returns the value of the "seller_tax_id" field in the mutation.
func (m *InvoiceMutation) SellerTaxID() (r string, exists bool) {
	v := m.seller_tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerTaxID returns the old "seller_tax_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerTaxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerTaxID: %w", err)
	}
	return oldValue.SellerTaxID, nil
}

// ClearSellerTaxID clears the value of the "seller_tax_id" field.
func (m *InvoiceMutation) ClearSellerTaxID() {
	m.seller_tax_id = nil
	m.clearedFields[invoice.FieldSellerTaxID] = struct{}{}
}

// SellerTaxIDCleared returns if the "seller_tax_id" field was cleared in this mutation.
func (m *InvoiceMutation) SellerTaxIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerTaxID]
	return ok
}

// ResetSellerTaxID resets all changes to the "seller_tax_id" field.
func (m *InvoiceMutation) ResetSellerTaxID() {
	m.seller_tax_id = nil
	delete(m.clearedFields, invoice.FieldSellerTaxID)
}

// SetSellerAddress sets the "seller_address" field.
func (m *InvoiceMutation) SetSellerAddress(s string) {
	m.seller_address = &s
}

// SellerAddress returns the value of the "seller_address" field in the mutation.
func (m *InvoiceMutation) SellerAddress() (r string, exists bool) {
	v := m.seller_address
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerAddress returns the old "seller_address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerAddress: %w", err)
	}
	return oldValue.SellerAddress, nil
}

// ClearSellerAddress clears the value of the "seller_address" field.
func (m *InvoiceMutation) ClearSellerAddress() {
	m.seller_address = nil
	m.clearedFields[invoice.FieldSellerAddress] = struct{}{}
}

// SellerAddressCleared returns if the "seller_address" field was cleared in this mutation.
func (m *InvoiceMutation) SellerAddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerAddress]
	return ok
}

// ResetSellerAddress resets all changes to the "seller_address" field.
func (m *InvoiceMutation) ResetSellerAddress() {
	m.seller_address = nil
	delete(m.clearedFields, invoice.FieldSellerAddress)
}

// SetSellerEmail sets the "seller_email" field.
func (m *InvoiceMutation) SetSellerEmail(s string) {
	m.seller_email = &s
}

// SellerEmail returns the value of the "seller_email" field in the mutation.
func (m *InvoiceMutation) SellerEmail() (r string, exists bool) {
	v := m.seller_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerEmail returns the old "seller_email" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerEmail: %w", err)
	}
	return oldValue.SellerEmail, nil
}

// ClearSellerEmail clears the value of the "seller_email" field.
func (m *InvoiceMutation) ClearSellerEmail() {
	m.seller_email = nil
	m.clearedFields[invoice.FieldSellerEmail] = struct{}{}
}

// SellerEmailCleared returns if the "seller_email" field was cleared in this mutation.
func (m *InvoiceMutation) SellerEmailCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerEmail]
	return ok
}

// ResetSellerEmail resets all changes to the "seller_email" field.
func (m *InvoiceMutation) ResetSellerEmail() {
	m.seller_email = nil
	delete(m.clearedFields, invoice.FieldSellerEmail)
}

// SetSellerPhone sets the "seller_phone" field.
func (m *InvoiceMutation) SetSellerPhone(s string) {
	m.seller_phone = &s
}

// SellerPhone returns the value of the "seller_phone" field in the mutation.
func (m *InvoiceMutation) SellerPhone() (r string, exists bool) {
	v := m.seller_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerPhone returns the old "seller_phone" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerPhone: %w", err)
	}
	return oldValue.SellerPhone, nil
}

// ClearSellerPhone clears the value of the "seller_phone" field.
func (m *InvoiceMutation) ClearSellerPhone() {
	m.seller_phone = nil
	m.clearedFields[invoice.FieldSellerPhone] = struct{}{}
}

// SellerPhoneCleared returns if the "seller_phone" field was cleared in this mutation.
func (m *InvoiceMutation) SellerPhoneCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerPhone]
	return ok
}

// ResetSellerPhone resets all changes to the "seller_phone" field.
func (m *InvoiceMutation) ResetSellerPhone() {
	m.seller_phone = nil
	delete(m.clearedFields, invoice.FieldSellerPhone)
}

// SetSellerAccountNumber sets the "seller_account_number" field.
func (m *InvoiceMutation) SetSellerAccountNumber(s string) {
	m.seller_account_number = &s
}

// SellerAccountNumber returns the value of the "seller_account_number" field in the mutation.
func (m *InvoiceMutation) SellerAccountNumber() (r string, exists bool) {
	v := m.seller_account_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerAccountNumber returns the old "seller_account_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSellerAccountNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerAccountNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerAccountNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerAccountNumber: %w", err)
	}
	return oldValue.SellerAccountNumber, nil
}

// ClearSellerAccountNumber clears the value of the "seller_account_number" field.
func (m *InvoiceMutation) ClearSellerAccountNumber() {
	m.seller_account_number = nil
	m.clearedFields[invoice.FieldSellerAccountNumber] = struct{}{}
}

// SellerAccountNumberCleared returns if the "seller_account_number" field was cleared in this mutation.
func (m *InvoiceMutation) SellerAccountNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSellerAccountNumber]
	return ok
}

// ResetSellerAccountNumber resets all changes to the "seller_account_number" field.
func (m *InvoiceMutation) ResetSellerAccountNumber() {
	m.seller_account_number = nil
	delete(m.clearedFields, invoice.FieldSellerAccountNumber)
}

// SetBuyerName sets the "buyer_name" field.
func (m *InvoiceMutation) SetBuyerName(s string) {
	m.buyer_name = &s
}

// BuyerName returns the value of the "buyer_name" field in the mutation.
func (m *InvoiceMutation) BuyerName() (r string, exists bool) {
	v := m.buyer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerName returns the old "buyer_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerName: %w", err)
	}
	return oldValue.BuyerName, nil
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (m *InvoiceMutation) ClearBuyerName() {
	m.buyer_name = nil
	m.clearedFields[invoice.FieldBuyerName] = struct{}{}
}

// BuyerNameCleared returns if the "buyer_name" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyerName]
	return ok
}

// ResetBuyerName resets all changes to the "buyer_name" field.
func (m *InvoiceMutation) ResetBuyerName() {
	m.buyer_name = nil
	delete(m.clearedFields, invoice.FieldBuyerName)
}

// SetBuyerTaxID sets the "buyer_tax_id" field.
func (m *InvoiceMutation) SetBuyerTaxID(s string) {
	m.buyer_tax_id = &s
}

// BuyerTaxID returns the value of the "buyer_tax_id" field in the mutation.
func (m *InvoiceMutation) BuyerTaxID() (r string, exists bool) {
	v := m.buyer_tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerTaxID returns the old "buyer_tax_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyerTaxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerTaxID: %w", err)
	}
	return oldValue.BuyerTaxID, nil
}

// ClearBuyerTaxID clears the value of the "buyer_tax_id" field.
func (m *InvoiceMutation) ClearBuyerTaxID() {
	m.buyer_tax_id = nil
	m.clearedFields[invoice.FieldBuyerTaxID] = struct{}{}
}

// BuyerTaxIDCleared returns if the "buyer_tax_id" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerTaxIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyerTaxID]
	return ok
}

// ResetBuyerTaxID resets all changes to the "buyer_tax_id" field.
func (m *InvoiceMutation) ResetBuyerTaxID() {
	m.buyer_tax_id = nil
	delete(m.clearedFields, invoice.FieldBuyerTaxID)
}

// SetBuyerAddress sets the "buyer_address" field.
func (m *InvoiceMutation) SetBuyerAddress(s string) {
	m.buyer_address = &s
}

// BuyerAddress returns the value of the "buyer_address" field in the mutation.
func (m *InvoiceMutation) BuyerAddress() (r string, exists bool) {
	v := m.buyer_address
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerAddress returns the old "buyer_address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyerAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerAddress: %w", err)
	}
	return oldValue.BuyerAddress, nil
}

// ClearBuyerAddress clears the value of the "buyer_address" field.
func (m *InvoiceMutation) ClearBuyerAddress() {
	m.buyer_address = nil
	m.clearedFields[invoice.FieldBuyerAddress] = struct{}{}
}

// BuyerAddressCleared returns if the "buyer_address" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerAddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyerAddress]
	return ok
}

// ResetBuyerAddress resets all changes to the "buyer_address" field.
func (m *InvoiceMutation) ResetBuyerAddress() {
	m.buyer_address = nil
	delete(m.clearedFields, invoice.FieldBuyerAddress)
}

// SetBuyerEmail sets the "buyer_email" field.
func (m *InvoiceMutation) SetBuyerEmail(s string) {
	m.buyer_email = &s
}

// BuyerEmail returns the value of the "buyer_email" field in the mutation.
func (m *InvoiceMutation) BuyerEmail() (r string, exists bool) {
	v := m.buyer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerEmail returns the old "buyer_email" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyerEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerEmail: %w", err)
	}
	return oldValue.BuyerEmail, nil
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (m *InvoiceMutation) ClearBuyerEmail() {
	m.buyer_email = nil
	m.clearedFields[invoice.FieldBuyerEmail] = struct{}{}
}

// BuyerEmailCleared returns if the "buyer_email" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerEmailCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyerEmail]
	return ok
}

// ResetBuyerEmail resets all changes to the "buyer_email" field.
func (m *InvoiceMutation) ResetBuyerEmail() {
	m.buyer_email = nil
	delete(m.clearedFields, invoice.FieldBuyerEmail)
}

// SetBuyerPhone sets the "buyer_phone" field.
func (m *InvoiceMutation) SetBuyerPhone(s string) {
	m.buyer_phone = &s
}

// BuyerPhone returns the value of the "buyer_phone" field in the mutation.
func (m *InvoiceMutation) BuyerPhone() (r string, exists bool) {
	v := m.buyer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerPhone returns the old "buyer_phone" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyerPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerPhone: %w", err)
	}
	return oldValue.BuyerPhone, nil
}

// ClearBuyerPhone clears the value of the "buyer_phone" field.
func (m *InvoiceMutation) ClearBuyerPhone() {
	m.buyer_phone = nil
	m.clearedFields[invoice.FieldBuyerPhone] = struct{}{}
}

// BuyerPhoneCleared returns if the "buyer_phone" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerPhoneCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyerPhone]
	return ok
}

// ResetBuyerPhone resets all changes to the "buyer_phone" field.
func (m *InvoiceMutation) ResetBuyerPhone() {
	m.buyer_phone = nil
	delete(m.clearedFields, invoice.FieldBuyerPhone)
}

// SetSubtotal sets the "subtotal" field.
func (m *InvoiceMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *InvoiceMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSubtotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *InvoiceMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *InvoiceMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *InvoiceMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *InvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *InvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *InvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *InvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *InvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *InvoiceMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *InvoiceMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *InvoiceMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *InvoiceMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *InvoiceMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *InvoiceMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[invoice.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *InvoiceMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *InvoiceMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, invoice.FieldPaymentMethod)
}

// SetPaymentStatus sets the "payment_status" field.
func (m *InvoiceMutation) SetPaymentStatus(s string) {
	m.payment_status = &s
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *InvoiceMutation) PaymentStatus() (r string, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ClearPaymentStatus clears the value of the "payment_status" field.
func (m *InvoiceMutation) ClearPaymentStatus() {
	m.payment_status = nil
	m.clearedFields[invoice.FieldPaymentStatus] = struct{}{}
}

// PaymentStatusCleared returns if the "payment_status" field was cleared in this mutation.
func (m *InvoiceMutation) PaymentStatusCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaymentStatus]
	return ok
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *InvoiceMutation) ResetPaymentStatus() {
	m.payment_status = nil
	delete(m.clearedFields, invoice.FieldPaymentStatus)
}

// SetSourceFormat sets the "source_format" field.
func (m *InvoiceMutation) SetSourceFormat(s string) {
	m.source_format = &s
}

// SourceFormat returns the value of the "source_format" field in the mutation.
func (m *InvoiceMutation) SourceFormat() (r string, exists bool) {
	v := m.source_format
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFormat returns the old "source_format" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSourceFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFormat: %w", err)
	}
	return oldValue.SourceFormat, nil
}

// ResetSourceFormat resets all changes to the "source_format" field.
func (m *InvoiceMutation) ResetSourceFormat() {
	m.source_format = nil
}

// SetRawExcerpt sets the "raw_excerpt" field.
func (m *InvoiceMutation) SetRawExcerpt(s string) {
	m.raw_excerpt = &s
}

// RawExcerpt returns the value of the "raw_excerpt" field in the mutation.
func (m *InvoiceMutation) RawExcerpt() (r string, exists bool) {
	v := m.raw_excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExcerpt returns the old "raw_excerpt" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRawExcerpt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExcerpt: %w", err)
	}
	return oldValue.RawExcerpt, nil
}

// ClearRawExcerpt clears the value of the "raw_excerpt" field.
func (m *InvoiceMutation) ClearRawExcerpt() {
	m.raw_excerpt = nil
	m.clearedFields[invoice.FieldRawExcerpt] = struct{}{}
}

// RawExcerptCleared returns if the "raw_excerpt" field was cleared in this mutation.
func (m *InvoiceMutation) RawExcerptCleared() bool {
	_, ok := m.clearedFields[invoice.FieldRawExcerpt]
	return ok
}

// ResetRawExcerpt resets all changes to the "raw_excerpt" field.
func (m *InvoiceMutation) ResetRawExcerpt() {
	m.raw_excerpt = nil
	delete(m.clearedFields, invoice.FieldRawExcerpt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (m *InvoiceMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[invoice.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ImportJob entity was cleared.
func (m *InvoiceMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *InvoiceMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by ids.
func (m *InvoiceMutation) AddLineIDs(ids ...uuid.UUID) {
	if m.lines == nil {
		m.lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the InvoiceLine entity.
func (m *InvoiceMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the InvoiceLine entity was cleared.
func (m *InvoiceMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the InvoiceLine entity by IDs.
func (m *InvoiceMutation) RemoveLineIDs(ids ...uuid.UUID) {
	if m.removedlines == nil {
		m.removedlines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the InvoiceLine entity.
func (m *InvoiceMutation) RemovedLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *InvoiceMutation) LinesIDs() (ids []uuid.UUID) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *InvoiceMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.job != nil {
		fields = append(fields, invoice.FieldJobID)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.issue_date != nil {
		fields = append(fields, invoice.FieldIssueDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.seller_name != nil {
		fields = append(fields, invoice.FieldSellerName)
	}
	if m.seller_tax_id != nil {
		fields = append(fields, invoice.FieldSellerTaxID)
	}
	if m.seller_address != nil {
		fields = append(fields, invoice.FieldSellerAddress)
	}
	if m.seller_email != nil {
		fields = append(fields, invoice.FieldSellerEmail)
	}
	if m.seller_phone != nil {
		fields = append(fields, invoice.FieldSellerPhone)
	}
	if m.seller_account_number != nil {
		fields = append(fields, invoice.FieldSellerAccountNumber)
	}
	if m.buyer_name != nil {
		fields = append(fields, invoice.FieldBuyerName)
	}
	if m.buyer_tax_id != nil {
		fields = append(fields, invoice.FieldBuyerTaxID)
	}
	if m.buyer_address != nil {
		fields = append(fields, invoice.FieldBuyerAddress)
	}
	if m.buyer_email != nil {
		fields = append(fields, invoice.FieldBuyerEmail)
	}
	if m.buyer_phone != nil {
		fields = append(fields, invoice.FieldBuyerPhone)
	}
	if m.subtotal != nil {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.total_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	if m.payment_method != nil {
		fields = append(fields, invoice.FieldPaymentMethod)
	}
	if m.payment_status != nil {
		fields = append(fields, invoice.FieldPaymentStatus)
	}
	if m.source_format != nil {
		fields = append(fields, invoice.FieldSourceFormat)
	}
	if m.raw_excerpt != nil {
		fields = append(fields, invoice.FieldRawExcerpt)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldJobID:
		return m.JobID()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldIssueDate:
		return m.IssueDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldSellerName:
		return m.SellerName()
	case invoice.FieldSellerTaxID:
		return m.SellerTaxID()
	case invoice.FieldSellerAddress:
		return m.SellerAddress()
	case invoice.FieldSellerEmail:
		return m.SellerEmail()
	case invoice.FieldSellerPhone:
		return m.SellerPhone()
	case invoice.FieldSellerAccountNumber:
		return m.SellerAccountNumber()
	case invoice.FieldBuyerName:
		return m.BuyerName()
	case invoice.FieldBuyerTaxID:
		return m.BuyerTaxID()
	case invoice.FieldBuyerAddress:
		return m.BuyerAddress()
	case invoice.FieldBuyerEmail:
		return m.BuyerEmail()
	case invoice.FieldBuyerPhone:
		return m.BuyerPhone()
	case invoice.FieldSubtotal:
		return m.Subtotal()
	case invoice.FieldTaxAmount:
		return m.TaxAmount()
	case invoice.FieldTotalAmount:
		return m.TotalAmount()
	case invoice.FieldCurrencyCode:
		return m.CurrencyCode()
	case invoice.FieldPaymentMethod:
		return m.PaymentMethod()
	case invoice.FieldPaymentStatus:
		return m.PaymentStatus()
	case invoice.FieldSourceFormat:
		return m.SourceFormat()
	case invoice.FieldRawExcerpt:
		return m.RawExcerpt()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldJobID:
		return m.OldJobID(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldIssueDate:
		return m.OldIssueDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldSellerName:
		return m.OldSellerName(ctx)
	case invoice.FieldSellerTaxID:
		return m.OldSellerTaxID(ctx)
	case invoice.FieldSellerAddress:
		return m.OldSellerAddress(ctx)
	case invoice.FieldSellerEmail:
		return m.OldSellerEmail(ctx)
	case invoice.FieldSellerPhone:
		return m.OldSellerPhone(ctx)
	case invoice.FieldSellerAccountNumber:
		return m.OldSellerAccountNumber(ctx)
	case invoice.FieldBuyerName:
		return m.OldBuyerName(ctx)
	case invoice.FieldBuyerTaxID:
		return m.OldBuyerTaxID(ctx)
	case invoice.FieldBuyerAddress:
		return m.OldBuyerAddress(ctx)
	case invoice.FieldBuyerEmail:
		return m.OldBuyerEmail(ctx)
	case invoice.FieldBuyerPhone:
		return m.OldBuyerPhone(ctx)
	case invoice.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case invoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case invoice.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case invoice.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case invoice.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case invoice.FieldSourceFormat:
		return m.OldSourceFormat(ctx)
	case invoice.FieldRawExcerpt:
		return m.OldRawExcerpt(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldIssueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldSellerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerName(v)
		return nil
	case invoice.FieldSellerTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerTaxID(v)
		return nil
	case invoice.FieldSellerAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerAddress(v)
		return nil
	case invoice.FieldSellerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerEmail(v)
		return nil
	case invoice.FieldSellerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerPhone(v)
		return nil
	case invoice.FieldSellerAccountNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerAccountNumber(v)
		return nil
	case invoice.FieldBuyerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerName(v)
		return nil
	case invoice.FieldBuyerTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerTaxID(v)
		return nil
	case invoice.FieldBuyerAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerAddress(v)
		return nil
	case invoice.FieldBuyerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerEmail(v)
		return nil
	case invoice.FieldBuyerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerPhone(v)
		return nil
	case invoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case invoice.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case invoice.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case invoice.FieldPaymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case invoice.FieldSourceFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFormat(v)
		return nil
	case invoice.FieldRawExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExcerpt(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldSubtotal:
		return m.AddedSubtotal()
	case invoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	case invoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldJobID) {
		fields = append(fields, invoice.FieldJobID)
	}
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldInvoiceDate) {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.FieldCleared(invoice.FieldIssueDate) {
		fields = append(fields, invoice.FieldIssueDate)
	}
	if m.FieldCleared(invoice.FieldDueDate) {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.FieldCleared(invoice.FieldSellerName) {
		fields = append(fields, invoice.FieldSellerName)
	}
	if m.FieldCleared(invoice.FieldSellerTaxID) {
		fields = append(fields, invoice.FieldSellerTaxID)
	}
	if m.FieldCleared(invoice.FieldSellerAddress) {
		fields = append(fields, invoice.FieldSellerAddress)
	}
	if m.FieldCleared(invoice.FieldSellerEmail) {
		fields = append(fields, invoice.FieldSellerEmail)
	}
	if m.FieldCleared(invoice.FieldSellerPhone) {
		fields = append(fields, invoice.FieldSellerPhone)
	}
	if m.FieldCleared(invoice.FieldSellerAccountNumber) {
		fields = append(fields, invoice.FieldSellerAccountNumber)
	}
	if m.FieldCleared(invoice.FieldBuyerName) {
		fields = append(fields, invoice.FieldBuyerName)
	}
	if m.FieldCleared(invoice.FieldBuyerTaxID) {
		fields = append(fields, invoice.FieldBuyerTaxID)
	}
	if m.FieldCleared(invoice.FieldBuyerAddress) {
		fields = append(fields, invoice.FieldBuyerAddress)
	}
	if m.FieldCleared(invoice.FieldBuyerEmail) {
		fields = append(fields, invoice.FieldBuyerEmail)
	}
	if m.FieldCleared(invoice.FieldBuyerPhone) {
		fields = append(fields, invoice.FieldBuyerPhone)
	}
	if m.FieldCleared(invoice.FieldPaymentMethod) {
		fields = append(fields, invoice.FieldPaymentMethod)
	}
	if m.FieldCleared(invoice.FieldPaymentStatus) {
		fields = append(fields, invoice.FieldPaymentStatus)
	}
	if m.FieldCleared(invoice.FieldRawExcerpt) {
		fields = append(fields, invoice.FieldRawExcerpt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldJobID:
		m.ClearJobID()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case invoice.FieldIssueDate:
		m.ClearIssueDate()
		return nil
	case invoice.FieldDueDate:
		m.ClearDueDate()
		return nil
	case invoice.FieldSellerName:
		m.ClearSellerName()
		return nil
	case invoice.FieldSellerTaxID:
		m.ClearSellerTaxID()
		return nil
	case invoice.FieldSellerAddress:
		m.ClearSellerAddress()
		return nil
	case invoice.FieldSellerEmail:
		m.ClearSellerEmail()
		return nil
	case invoice.FieldSellerPhone:
		m.ClearSellerPhone()
		return nil
	case invoice.FieldSellerAccountNumber:
		m.ClearSellerAccountNumber()
		return nil
	case invoice.FieldBuyerName:
		m.ClearBuyerName()
		return nil
	case invoice.FieldBuyerTaxID:
		m.ClearBuyerTaxID()
		return nil
	case invoice.FieldBuyerAddress:
		m.ClearBuyerAddress()
		return nil
	case invoice.FieldBuyerEmail:
		m.ClearBuyerEmail()
		return nil
	case invoice.FieldBuyerPhone:
		m.ClearBuyerPhone()
		return nil
	case invoice.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case invoice.FieldPaymentStatus:
		m.ClearPaymentStatus()
		return nil
	case invoice.FieldRawExcerpt:
		m.ClearRawExcerpt()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldJobID:
		m.ResetJobID()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldIssueDate:
		m.ResetIssueDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldSellerName:
		m.ResetSellerName()
		return nil
	case invoice.FieldSellerTaxID:
		m.ResetSellerTaxID()
		return nil
	case invoice.FieldSellerAddress:
		m.ResetSellerAddress()
		return nil
	case invoice.FieldSellerEmail:
		m.ResetSellerEmail()
		return nil
	case invoice.FieldSellerPhone:
		m.ResetSellerPhone()
		return nil
	case invoice.FieldSellerAccountNumber:
		m.ResetSellerAccountNumber()
		return nil
	case invoice.FieldBuyerName:
		m.ResetBuyerName()
		return nil
	case invoice.FieldBuyerTaxID:
		m.ResetBuyerTaxID()
		return nil
	case invoice.FieldBuyerAddress:
		m.ResetBuyerAddress()
		return nil
	case invoice.FieldBuyerEmail:
		m.ResetBuyerEmail()
		return nil
	case invoice.FieldBuyerPhone:
		m.ResetBuyerPhone()
		return nil
	case invoice.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case invoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case invoice.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case invoice.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case invoice.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case invoice.FieldSourceFormat:
		m.ResetSourceFormat()
		return nil
	case invoice.FieldRawExcerpt:
		m.ResetRawExcerpt()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, invoice.EdgeJob)
	}
	if m.lines != nil {
		edges = append(edges, invoice.EdgeLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlines != nil {
		edges = append(edges, invoice.EdgeLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, invoice.EdgeJob)
	}
	if m.clearedlines {
		edges = append(edges, invoice.EdgeLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeJob:
		return m.clearedjob
	case invoice.EdgeLines:
		return m.clearedlines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeJob:
		m.ResetJob()
		return nil
	case invoice.EdgeLines:
		m.ResetLines()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceLineMutation represents an operation that mutates the InvoiceLine nodes in the graph.
type InvoiceLineMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	position        *int
	addposition     *int
	name            *string
	description     *string
	quantity        *float64
	addquantity     *float64
	unit            *string
	unit_price      *float64
	addunit_price   *float64
	net_amount      *float64
	addnet_amount   *float64
	tax_rate        *float64
	addtax_rate     *float64
	tax_amount      *float64
	addtax_amount   *float64
	gross_amount    *float64
	addgross_amount *float64
	clearedFields   map[string]struct{}
	invoice         *uuid.UUID
	clearedinvoice  bool
	done            bool
	oldValue        func(context.Context) (*InvoiceLine, error)
	predicates      []predicate.InvoiceLine
}

var _ ent.Mutation = (*InvoiceLineMutation)(nil)

// invoicelineOption allows management of the mutation configuration using functional options.
type invoicelineOption func(*InvoiceLineMutation)

// newInvoiceLineMutation creates new mutation for the InvoiceLine entity.
func newInvoiceLineMutation(c config, op Op, opts ...invoicelineOption) *InvoiceLineMutation {
	m := &InvoiceLineMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceLineID sets the ID field of the mutation.
func withInvoiceLineID(id uuid.UUID) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceLine
		)
		m.oldValue = func(ctx context.Context) (*InvoiceLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceLine sets the old InvoiceLine of the mutation.
func withInvoiceLine(node *InvoiceLine) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		m.oldValue = func(context.Context) (*InvoiceLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceLine entities.
func (m *InvoiceLineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceLineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceLineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceLineMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceLineMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceLineMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetPosition sets the "position" field.
func (m *InvoiceLineMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *InvoiceLineMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *InvoiceLineMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *InvoiceLineMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *InvoiceLineMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetName sets the "name" field.
func (m *InvoiceLineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InvoiceLineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InvoiceLineMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *InvoiceLineMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InvoiceLineMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *InvoiceLineMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[invoiceline.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *InvoiceLineMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[invoiceline.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *InvoiceLineMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, invoiceline.FieldDescription)
}

// SetQuantity sets the "quantity" field.
func (m *InvoiceLineMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InvoiceLineMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *InvoiceLineMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InvoiceLineMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InvoiceLineMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnit sets the "unit" field.
func (m *InvoiceLineMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *InvoiceLineMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *InvoiceLineMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[invoiceline.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *InvoiceLineMutation) UnitCleared() bool {
	_, ok := m.clearedFields[invoiceline.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *InvoiceLineMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, invoiceline.FieldUnit)
}

// SetUnitPrice sets the "unit_price" field.
func (m *InvoiceLineMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *InvoiceLineMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *InvoiceLineMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *InvoiceLineMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *InvoiceLineMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetNetAmount sets the "net_amount" field.
func (m *InvoiceLineMutation) SetNetAmount(f float64) {
	m.net_amount = &f
	m.addnet_amount = nil
}

// NetAmount returns the value of the "net_amount" field in the mutation.
func (m *InvoiceLineMutation) NetAmount() (r float64, exists bool) {
	v := m.net_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNetAmount returns the old "net_amount" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldNetAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetAmount: %w", err)
	}
	return oldValue.NetAmount, nil
}

// AddNetAmount adds f to the "net_amount" field.
func (m *InvoiceLineMutation) AddNetAmount(f float64) {
	if m.addnet_amount != nil {
		*m.addnet_amount += f
	} else {
		m.addnet_amount = &f
	}
}

// AddedNetAmount returns the value that was added to the "net_amount" field in this mutation.
func (m *InvoiceLineMutation) AddedNetAmount() (r float64, exists bool) {
	v := m.addnet_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetAmount resets all changes to the "net_amount" field.
func (m *InvoiceLineMutation) ResetNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
}

// SetTaxRate sets the "tax_rate" field.
func (m *InvoiceLineMutation) SetTaxRate(f float64) {
	m.tax_rate = &f
	m.addtax_rate = nil
}

// TaxRate returns the value of the "tax_rate" field in the mutation.
func (m *InvoiceLineMutation) TaxRate() (r float64, exists bool) {
	v := m.tax_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxRate returns the old "tax_rate" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldTaxRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxRate: %w", err)
	}
	return oldValue.TaxRate, nil
}

// AddTaxRate adds f to the "tax_rate" field.
func (m *InvoiceLineMutation) AddTaxRate(f float64) {
	if m.addtax_rate != nil {
		*m.addtax_rate += f
	} else {
		m.addtax_rate = &f
	}
}

// AddedTaxRate returns the value that was added to the "tax_rate" field in this mutation.
func (m *InvoiceLineMutation) AddedTaxRate() (r float64, exists bool) {
	v := m.addtax_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxRate resets all changes to the "tax_rate" field.
func (m *InvoiceLineMutation) ResetTaxRate() {
	m.tax_rate = nil
	m.addtax_rate = nil
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceLineMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceLineMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldTaxAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceLineMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceLineMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceLineMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
}

// SetGrossAmount sets the "gross_amount" field.
func (m *InvoiceLineMutation) SetGrossAmount(f float64) {
	m.gross_amount = &f
	m.addgross_amount = nil
}

// GrossAmount returns the value of the "gross_amount" field in the mutation.
func (m *InvoiceLineMutation) GrossAmount() (r float64, exists bool) {
	v := m.gross_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossAmount returns the old "gross_amount" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldGrossAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossAmount: %w", err)
	}
	return oldValue.GrossAmount, nil
}

// AddGrossAmount adds f to the "gross_amount" field.
func (m *InvoiceLineMutation) AddGrossAmount(f float64) {
	if m.addgross_amount != nil {
		*m.addgross_amount += f
	} else {
		m.addgross_amount = &f
	}
}

// AddedGrossAmount returns the value that was added to the "gross_amount" field in this mutation.
func (m *InvoiceLineMutation) AddedGrossAmount() (r float64, exists bool) {
	v := m.addgross_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrossAmount resets all changes to the "gross_amount" field.
func (m *InvoiceLineMutation) ResetGrossAmount() {
	m.gross_amount = nil
	m.addgross_amount = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceLineMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoiceline.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceLineMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceLineMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceLineMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the InvoiceLineMutation builder.
func (m *InvoiceLineMutation) Where(ps ...predicate.InvoiceLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceLine).
func (m *InvoiceLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceLineMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.invoice != nil {
		fields = append(fields, invoiceline.FieldInvoiceID)
	}
	if m.position != nil {
		fields = append(fields, invoiceline.FieldPosition)
	}
	if m.name != nil {
		fields = append(fields, invoiceline.FieldName)
	}
	if m.description != nil {
		fields = append(fields, invoiceline.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.unit != nil {
		fields = append(fields, invoiceline.FieldUnit)
	}
	if m.unit_price != nil {
		fields = append(fields, invoiceline.FieldUnitPrice)
	}
	if m.net_amount != nil {
		fields = append(fields, invoiceline.FieldNetAmount)
	}
	if m.tax_rate != nil {
		fields = append(fields, invoiceline.FieldTaxRate)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoiceline.FieldTaxAmount)
	}
	if m.gross_amount != nil {
		fields = append(fields, invoiceline.FieldGrossAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.InvoiceID()
	case invoiceline.FieldPosition:
		return m.Position()
	case invoiceline.FieldName:
		return m.Name()
	case invoiceline.FieldDescription:
		return m.Description()
	case invoiceline.FieldQuantity:
		return m.Quantity()
	case invoiceline.FieldUnit:
		return m.Unit()
	case invoiceline.FieldUnitPrice:
		return m.UnitPrice()
	case invoiceline.FieldNetAmount:
		return m.NetAmount()
	case invoiceline.FieldTaxRate:
		return m.TaxRate()
	case invoiceline.FieldTaxAmount:
		return m.TaxAmount()
	case invoiceline.FieldGrossAmount:
		return m.GrossAmount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoiceline.FieldPosition:
		return m.OldPosition(ctx)
	case invoiceline.FieldName:
		return m.OldName(ctx)
	case invoiceline.FieldDescription:
		return m.OldDescription(ctx)
	case invoiceline.FieldQuantity:
		return m.OldQuantity(ctx)
	case invoiceline.FieldUnit:
		return m.OldUnit(ctx)
	case invoiceline.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case invoiceline.FieldNetAmount:
		return m.OldNetAmount(ctx)
	case invoiceline.FieldTaxRate:
		return m.OldTaxRate(ctx)
	case invoiceline.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoiceline.FieldGrossAmount:
		return m.OldGrossAmount(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoiceline.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case invoiceline.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case invoiceline.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case invoiceline.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case invoiceline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case invoiceline.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetAmount(v)
		return nil
	case invoiceline.FieldTaxRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxRate(v)
		return nil
	case invoiceline.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoiceline.FieldGrossAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossAmount(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceLineMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, invoiceline.FieldPosition)
	}
	if m.addquantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, invoiceline.FieldUnitPrice)
	}
	if m.addnet_amount != nil {
		fields = append(fields, invoiceline.FieldNetAmount)
	}
	if m.addtax_rate != nil {
		fields = append(fields, invoiceline.FieldTaxRate)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoiceline.FieldTaxAmount)
	}
	if m.addgross_amount != nil {
		fields = append(fields, invoiceline.FieldGrossAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldPosition:
		return m.AddedPosition()
	case invoiceline.FieldQuantity:
		return m.AddedQuantity()
	case invoiceline.FieldUnitPrice:
		return m.AddedUnitPrice()
	case invoiceline.FieldNetAmount:
		return m.AddedNetAmount()
	case invoiceline.FieldTaxRate:
		return m.AddedTaxRate()
	case invoiceline.FieldTaxAmount:
		return m.AddedTaxAmount()
	case invoiceline.FieldGrossAmount:
		return m.AddedGrossAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case invoiceline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case invoiceline.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetAmount(v)
		return nil
	case invoiceline.FieldTaxRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxRate(v)
		return nil
	case invoiceline.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case invoiceline.FieldGrossAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossAmount(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceline.FieldDescription) {
		fields = append(fields, invoiceline.FieldDescription)
	}
	if m.FieldCleared(invoiceline.FieldUnit) {
		fields = append(fields, invoiceline.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ClearField(name string) error {
	switch name {
	case invoiceline.FieldDescription:
		m.ClearDescription()
		return nil
	case invoiceline.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ResetField(name string) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoiceline.FieldPosition:
		m.ResetPosition()
		return nil
	case invoiceline.FieldName:
		m.ResetName()
		return nil
	case invoiceline.FieldDescription:
		m.ResetDescription()
		return nil
	case invoiceline.FieldQuantity:
		m.ResetQuantity()
		return nil
	case invoiceline.FieldUnit:
		m.ResetUnit()
		return nil
	case invoiceline.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case invoiceline.FieldNetAmount:
		m.ResetNetAmount()
		return nil
	case invoiceline.FieldTaxRate:
		m.ResetTaxRate()
		return nil
	case invoiceline.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoiceline.FieldGrossAmount:
		m.ResetGrossAmount()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, invoiceline.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceline.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, invoiceline.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceLineMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceline.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceLineMutation) ClearEdge(name string) error {
	switch name {
	case invoiceline.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceLineMutation) ResetEdge(name string) error {
	switch name {
	case invoiceline.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine edge %s", name)
}
