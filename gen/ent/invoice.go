// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *uuid.UUID `json:"job_id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate *time.Time `json:"issue_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// SellerName holds the value of the "seller_name" field.
	SellerName *string `json:"seller_name,omitempty"`
	// SellerTaxID holds the value of the "seller_tax_id" field.
	SellerTaxID *string `json:"seller_tax_id,omitempty"`
	// SellerAddress holds the value of the "seller_address" field.
	SellerAddress *string `json:"seller_address,omitempty"`
	// SellerEmail holds the value of the "seller_email" field.
	SellerEmail *string `json:"seller_email,omitempty"`
	// SellerPhone holds the value of the "seller_phone" field.
	SellerPhone *string `json:"seller_phone,omitempty"`
	// SellerAccountNumber holds the value of the "seller_account_number" field.
	SellerAccountNumber *string `json:"seller_account_number,omitempty"`
	// BuyerName holds the value of the "buyer_name" field.
	BuyerName *string `json:"buyer_name,omitempty"`
	// BuyerTaxID holds the value of the "buyer_tax_id" field.
	BuyerTaxID *string `json:"buyer_tax_id,omitempty"`
	// BuyerAddress holds the value of the "buyer_address" field.
	BuyerAddress *string `json:"buyer_address,omitempty"`
	// BuyerEmail holds the value of the "buyer_email" field.
	BuyerEmail *string `json:"buyer_email,omitempty"`
	// BuyerPhone holds the value of the "buyer_phone" field.
	BuyerPhone *string `json:"buyer_phone,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal float64 `json:"subtotal,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount float64 `json:"tax_amount,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod *string `json:"payment_method,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus *string `json:"payment_status,omitempty"`
	// SourceFormat holds the value of the "source_format" field.
	SourceFormat string `json:"source_format,omitempty"`
	// RawExcerpt holds the value of the "raw_excerpt" field.
	RawExcerpt string `json:"raw_excerpt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Job holds the value of the job edge.
	Job *ImportJob `json:"job,omitempty"`
	// Lines holds the value of the lines edge.
	Lines []*InvoiceLine `json:"lines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) JobOrErr() (*ImportJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: importjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) LinesOrErr() ([]*InvoiceLine, error) {
	if e.loadedTypes[1] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.FieldSubtotal, invoice.FieldTaxAmount, invoice.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldInvoiceNumber, invoice.FieldSellerName, invoice.FieldSellerTaxID, invoice.FieldSellerAddress, invoice.FieldSellerEmail, invoice.FieldSellerPhone, invoice.FieldSellerAccountNumber, invoice.FieldBuyerName, invoice.FieldBuyerTaxID, invoice.FieldBuyerAddress, invoice.FieldBuyerEmail, invoice.FieldBuyerPhone, invoice.FieldCurrencyCode, invoice.FieldPaymentMethod, invoice.FieldPaymentStatus, invoice.FieldSourceFormat, invoice.FieldRawExcerpt:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldIssueDate, invoice.FieldDueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(uuid.UUID)
				*_m.JobID = *value.S.(*uuid.UUID)
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case invoice.FieldIssueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[i])
			} else if value.Valid {
				_m.IssueDate = new(time.Time)
				*_m.IssueDate = value.Time
			}
		case invoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case invoice.FieldSellerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_name", values[i])
			} else if value.Valid {
				_m.SellerName = new(string)
				*_m.SellerName = value.String
			}
		case invoice.FieldSellerTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_tax_id", values[i])
			} else if value.Valid {
				_m.SellerTaxID = new(string)
				*_m.SellerTaxID = value.String
			}
		case invoice.FieldSellerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_address", values[i])
			} else if value.Valid {
				_m.SellerAddress = new(string)
				*_m.SellerAddress = value.String
			}
		case invoice.FieldSellerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_email", values[i])
			} else if value.Valid {
				_m.SellerEmail = new(string)
				*_m.SellerEmail = value.String
			}
		case invoice.FieldSellerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_phone", values[i])
			} else if value.Valid {
				_m.SellerPhone = new(string)
				*_m.SellerPhone = value.String
			}
		case invoice.FieldSellerAccountNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_account_number", values[i])
			} else if value.Valid {
				_m.SellerAccountNumber = new(string)
				*_m.SellerAccountNumber = value.String
			}
		case invoice.FieldBuyerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_name", values[i])
			} else if value.Valid {
				_m.BuyerName = new(string)
				*_m.BuyerName = value.String
			}
		case invoice.FieldBuyerTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_tax_id", values[i])
			} else if value.Valid {
				_m.BuyerTaxID = new(string)
				*_m.BuyerTaxID = value.String
			}
		case invoice.FieldBuyerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_address", values[i])
			} else if value.Valid {
				_m.BuyerAddress = new(string)
				*_m.BuyerAddress = value.String
			}
		case invoice.FieldBuyerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_email", values[i])
			} else if value.Valid {
				_m.BuyerEmail = new(string)
				*_m.BuyerEmail = value.String
			}
		case invoice.FieldBuyerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_phone", values[i])
			} else if value.Valid {
				_m.BuyerPhone = new(string)
				*_m.BuyerPhone = value.String
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = value.Float64
			}
		case invoice.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = value.Float64
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case invoice.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case invoice.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = new(string)
				*_m.PaymentMethod = value.String
			}
		case invoice.FieldPaymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[i])
			} else if value.Valid {
				_m.PaymentStatus = new(string)
				*_m.PaymentStatus = value.String
			}
		case invoice.FieldSourceFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_format", values[i])
			} else if value.Valid {
				_m.SourceFormat = value.String
			}
		case invoice.FieldRawExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_excerpt", values[i])
			} else if value.Valid {
				_m.RawExcerpt = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Invoice entity.
func (_m *Invoice) QueryJob() *ImportJobQuery {
	return NewInvoiceClient(_m.config).QueryJob(_m)
}

// QueryLines queries the "lines" edge of the Invoice entity.
func (_m *Invoice) QueryLines() *InvoiceLineQuery {
	return NewInvoiceClient(_m.config).QueryLines(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.IssueDate; v != nil {
		builder.WriteString("issue_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SellerName; v != nil {
		builder.WriteString("seller_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerTaxID; v != nil {
		builder.WriteString("seller_tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerAddress; v != nil {
		builder.WriteString("seller_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerEmail; v != nil {
		builder.WriteString("seller_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerPhone; v != nil {
		builder.WriteString("seller_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerAccountNumber; v != nil {
		builder.WriteString("seller_account_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerName; v != nil {
		builder.WriteString("buyer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerTaxID; v != nil {
		builder.WriteString("buyer_tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerAddress; v != nil {
		builder.WriteString("buyer_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerEmail; v != nil {
		builder.WriteString("buyer_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerPhone; v != nil {
		builder.WriteString("buyer_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("tax_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxAmount))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	if v := _m.PaymentMethod; v != nil {
		builder.WriteString("payment_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentStatus; v != nil {
		builder.WriteString("payment_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_format=")
	builder.WriteString(_m.SourceFormat)
	builder.WriteString(", ")
	builder.WriteString("raw_excerpt=")
	builder.WriteString(_m.RawExcerpt)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
