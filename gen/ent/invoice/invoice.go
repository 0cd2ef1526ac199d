// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the invoice type in the database.
	Label = "invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "invoice_date"
	// FieldIssueDate holds the string denoting the issue_date field in the database.
	FieldIssueDate = "issue_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldSellerName holds the string denoting the seller_name field in the database.
	FieldSellerName = "seller_name"
	// FieldSellerTaxID holds the string denoting the seller_tax_id field in the database.
	FieldSellerTaxID = "seller_tax_id"
	// FieldSellerAddress holds the string denoting the seller_address field in the database.
	FieldSellerAddress = "seller_address"
	// FieldSellerEmail holds the string denoting the seller_email field in the database.
	FieldSellerEmail = "seller_email"
	// FieldSellerPhone holds the string denoting the seller_phone field in the database.
	FieldSellerPhone = "seller_phone"
	// FieldSellerAccountNumber holds the string denoting the seller_account_number field in the database.
	FieldSellerAccountNumber = "seller_account_number"
	// FieldBuyerName holds the string denoting the buyer_name field in the database.
	FieldBuyerName = "buyer_name"
	// FieldBuyerTaxID holds the string denoting the buyer_tax_id field in the database.
	FieldBuyerTaxID = "buyer_tax_id"
	// FieldBuyerAddress holds the string denoting the buyer_address field in the database.
	FieldBuyerAddress = "buyer_address"
	// FieldBuyerEmail holds the string denoting the buyer_email field in the database.
	FieldBuyerEmail = "buyer_email"
	// FieldBuyerPhone holds the string denoting the buyer_phone field in the database.
	FieldBuyerPhone = "buyer_phone"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldTaxAmount holds the string denoting the tax_amount field in the database.
	FieldTaxAmount = "tax_amount"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldSourceFormat holds the string denoting the source_format field in the database.
	FieldSourceFormat = "source_format"
	// FieldRawExcerpt holds the string denoting the raw_excerpt field in the database.
	FieldRawExcerpt = "raw_excerpt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeLines holds the string denoting the lines edge name in mutations.
	EdgeLines = "lines"
	// Table holds the table name of the invoice in the database.
	Table = "invoices"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "invoices"
	// JobInverseTable is the table name for the ImportJob entity.
	// It exists in this package in order to avoid circular dependency with the "importjob" package.
	JobInverseTable = "import_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// LinesTable is the table that holds the lines relation/edge.
	LinesTable = "invoice_lines"
	// LinesInverseTable is the table name for the InvoiceLine entity.
	// It exists in this package in order to avoid circular dependency with the "invoiceline" package.
	LinesInverseTable = "invoice_lines"
	// LinesColumn is the table column denoting the lines relation/edge.
	LinesColumn = "invoice_id"
)

// Columns holds all SQL columns for invoice fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldIssueDate,
	FieldDueDate,
	FieldSellerName,
	FieldSellerTaxID,
	FieldSellerAddress,
	FieldSellerEmail,
	FieldSellerPhone,
	FieldSellerAccountNumber,
	FieldBuyerName,
	FieldBuyerTaxID,
	FieldBuyerAddress,
	FieldBuyerEmail,
	FieldBuyerPhone,
	FieldSubtotal,
	FieldTaxAmount,
	FieldTotalAmount,
	FieldCurrencyCode,
	FieldPaymentMethod,
	FieldPaymentStatus,
	FieldSourceFormat,
	FieldRawExcerpt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	PaymentStatusValidator func(string) error
	// SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	SourceFormatValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Invoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByIssueDate orders the results by the issue_date field.
func ByIssueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// BySellerName orders the results by the seller_name field.
func BySellerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerName, opts...).ToFunc()
}

// BySellerTaxID orders the results by the seller_tax_id field.
func BySellerTaxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerTaxID, opts...).ToFunc()
}

// BySellerAddress orders the results by the seller_address field.
func BySellerAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerAddress, opts...).ToFunc()
}

// BySellerEmail orders the results by the seller_email field.
func BySellerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerEmail, opts...).ToFunc()
}

// BySellerPhone orders the results by the seller_phone field.
func BySellerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerPhone, opts...).ToFunc()
}

// BySellerAccountNumber orders the results by the seller_account_number field.
func BySellerAccountNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerAccountNumber, opts...).ToFunc()
}

// ByBuyerName orders the results by the buyer_name field.
func ByBuyerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerName, opts...).ToFunc()
}

// ByBuyerTaxID orders the results by the buyer_tax_id field.
func ByBuyerTaxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerTaxID, opts...).ToFunc()
}

// ByBuyerAddress orders the results by the buyer_address field.
func ByBuyerAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerAddress, opts...).ToFunc()
}

// ByBuyerEmail orders the results by the buyer_email field.
func ByBuyerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerEmail, opts...).ToFunc()
}

// ByBuyerPhone orders the results by the buyer_phone field.
func ByBuyerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerPhone, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByTaxAmount orders the results by the tax_amount field.
func ByTaxAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxAmount, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// BySourceFormat orders the results by the source_format field.
func BySourceFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFormat, opts...).ToFunc()
}

// ByRawExcerpt orders the results by the raw_excerpt field.
func ByRawExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawExcerpt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByLinesCount orders the results by lines count.
func ByLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinesStep(), opts...)
	}
}

// ByLines orders the results by lines terms.
func ByLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
	)
}
