// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldJobID, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// IssueDate applies equality check predicate on the "issue_date" field. It's identical to IssueDateEQ.
func IssueDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIssueDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDueDate, v))
}

// SellerName applies equality check predicate on the "seller_name" field. It's identical to SellerNameEQ.
func SellerName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerName, v))
}

// SellerTaxID applies equality check predicate on the "seller_tax_id" field. It's identical to SellerTaxIDEQ.
func SellerTaxID(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerTaxID, v))
}

// SellerAddress applies equality check predicate on the "seller_address" field. It's identical to SellerAddressEQ.
func SellerAddress(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAddress, v))
}

// SellerEmail applies equality check predicate on the "seller_email" field. It's identical to SellerEmailEQ.
func SellerEmail(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerEmail, v))
}

// SellerPhone applies equality check predicate on the "seller_phone" field. It's identical to SellerPhoneEQ.
func SellerPhone(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerPhone, v))
}

// SellerAccountNumber applies equality check predicate on the "seller_account_number" field. It's identical to SellerAccountNumberEQ.
func SellerAccountNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAccountNumber, v))
}

// BuyerName applies equality check predicate on the "buyer_name" field. It's identical to BuyerNameEQ.
func BuyerName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerName, v))
}

// BuyerTaxID applies equality check predicate on the "buyer_tax_id" field. It's identical to BuyerTaxIDEQ.
func BuyerTaxID(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerTaxID, v))
}

// BuyerAddress applies equality check predicate on the "buyer_address" field. It's identical to BuyerAddressEQ.
func BuyerAddress(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerAddress, v))
}

// BuyerEmail applies equality check predicate on the "buyer_email" field. It's identical to BuyerEmailEQ.
func BuyerEmail(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerEmail, v))
}

// BuyerPhone applies equality check predicate on the "buyer_phone" field. It's identical to BuyerPhoneEQ.
func BuyerPhone(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerPhone, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTaxAmount, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrencyCode, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentStatus applies equality check predicate on the "payment_status" field. It's identical to PaymentStatusEQ.
func PaymentStatus(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentStatus, v))
}

// SourceFormat applies equality check predicate on the "source_format" field. It's identical to SourceFormatEQ.
func SourceFormat(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceFormat, v))
}

// RawExcerpt applies equality check predicate on the "raw_excerpt" field. It's identical to RawExcerptEQ.
func RawExcerpt(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawExcerpt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldJobID))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceDate))
}

// IssueDateEQ applies the EQ predicate on the "issue_date" field.
func IssueDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIssueDate, v))
}

// IssueDateNEQ applies the NEQ predicate on the "issue_date" field.
func IssueDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldIssueDate, v))
}

// IssueDateIn applies the In predicate on the "issue_date" field.
func IssueDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldIssueDate, vs...))
}

// IssueDateNotIn applies the NotIn predicate on the "issue_date" field.
func IssueDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldIssueDate, vs...))
}

// IssueDateGT applies the GT predicate on the "issue_date" field.
func IssueDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldIssueDate, v))
}

// IssueDateGTE applies the GTE predicate on the "issue_date" field.
func IssueDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldIssueDate, v))
}

// IssueDateLT applies the LT predicate on the "issue_date" field.
func IssueDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldIssueDate, v))
}

// IssueDateLTE applies the LTE predicate on the "issue_date" field.
func IssueDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldIssueDate, v))
}

// IssueDateIsNil applies the IsNil predicate on the "issue_date" field.
func IssueDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldIssueDate))
}

// IssueDateNotNil applies the NotNil predicate on the "issue_date" field.
func IssueDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldIssueDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldDueDate))
}

// SellerNameEQ applies the EQ predicate on the "seller_name" field.
func SellerNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerName, v))
}

// SellerNameNEQ applies the NEQ predicate on the "seller_name" field.
func SellerNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerName, v))
}

// SellerNameIn applies the In predicate on the "seller_name" field.
func SellerNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerName, vs...))
}

// SellerNameNotIn applies the NotIn predicate on the "seller_name" field.
func SellerNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerName, vs...))
}

// SellerNameGT applies the GT predicate on the "seller_name" field.
func SellerNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerName, v))
}

// SellerNameGTE applies the GTE predicate on the "seller_name" field.
func SellerNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerName, v))
}

// SellerNameLT applies the LT predicate on the "seller_name" field.
func SellerNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerName, v))
}

// SellerNameLTE applies the LTE predicate on the "seller_name" field.
func SellerNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerName, v))
}

// SellerNameContains applies the Contains predicate on the "seller_name" field.
func SellerNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerName, v))
}

// SellerNameHasPrefix applies the HasPrefix predicate on the "seller_name" field.
func SellerNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerName, v))
}

// SellerNameHasSuffix applies the HasSuffix predicate on the "seller_name" field.
func SellerNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerName, v))
}

// SellerNameIsNil applies the IsNil predicate on the "seller_name" field.
func SellerNameIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerName))
}

// SellerNameNotNil applies the NotNil predicate on the "seller_name" field.
func SellerNameNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerName))
}

// SellerNameEqualFold applies the EqualFold predicate on the "seller_name" field.
func SellerNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerName, v))
}

// SellerNameContainsFold applies the ContainsFold predicate on the "seller_name" field.
func SellerNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerName, v))
}

// SellerTaxIDEQ applies the EQ predicate on the "seller_tax_id" field.
func SellerTaxIDEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerTaxID, v))
}

// SellerTaxIDNEQ applies the NEQ predicate on the "seller_tax_id" field.
func SellerTaxIDNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerTaxID, v))
}

// SellerTaxIDIn applies the In predicate on the "seller_tax_id" field.
func SellerTaxIDIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerTaxID, vs...))
}

// SellerTaxIDNotIn applies the NotIn predicate on the "seller_tax_id" field.
func SellerTaxIDNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerTaxID, vs...))
}

// SellerTaxIDGT applies the GT predicate on the "seller_tax_id" field.
func SellerTaxIDGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerTaxID, v))
}

// SellerTaxIDGTE applies the GTE predicate on the "seller_tax_id" field.
func SellerTaxIDGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerTaxID, v))
}

// SellerTaxIDLT applies the LT predicate on the "seller_tax_id" field.
func SellerTaxIDLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerTaxID, v))
}

// SellerTaxIDLTE applies the LTE predicate on the "seller_tax_id" field.
func SellerTaxIDLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerTaxID, v))
}

// SellerTaxIDContains applies the Contains predicate on the "seller_tax_id" field.
func SellerTaxIDContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerTaxID, v))
}

// SellerTaxIDHasPrefix applies the HasPrefix predicate on the "seller_tax_id" field.
func SellerTaxIDHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerTaxID, v))
}

// SellerTaxIDHasSuffix applies the HasSuffix predicate on the "seller_tax_id" field.
func SellerTaxIDHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerTaxID, v))
}

// SellerTaxIDIsNil applies the IsNil predicate on the "seller_tax_id" field.
func SellerTaxIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerTaxID))
}

// SellerTaxIDNotNil applies the NotNil predicate on the "seller_tax_id" field.
func SellerTaxIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerTaxID))
}

// SellerTaxIDEqualFold applies the EqualFold predicate on the "seller_tax_id" field.
func SellerTaxIDEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerTaxID, v))
}

// SellerTaxIDContainsFold applies the ContainsFold predicate on the "seller_tax_id" field.
func SellerTaxIDContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerTaxID, v))
}

// SellerAddressEQ applies the EQ predicate on the "seller_address" field.
func SellerAddressEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAddress, v))
}

// SellerAddressNEQ applies the NEQ predicate on the "seller_address" field.
func SellerAddressNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerAddress, v))
}

// SellerAddressIn applies the In predicate on the "seller_address" field.
func SellerAddressIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerAddress, vs...))
}

// SellerAddressNotIn applies the NotIn predicate on the "seller_address" field.
func SellerAddressNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerAddress, vs...))
}

// SellerAddressGT applies the GT predicate on the "seller_address" field.
func SellerAddressGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerAddress, v))
}

// SellerAddressGTE applies the GTE predicate on the "seller_address" field.
func SellerAddressGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerAddress, v))
}

// SellerAddressLT applies the LT predicate on the "seller_address" field.
func SellerAddressLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerAddress, v))
}

// SellerAddressLTE applies the LTE predicate on the "seller_address" field.
func SellerAddressLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerAddress, v))
}

// SellerAddressContains applies the Contains predicate on the "seller_address" field.
func SellerAddressContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerAddress, v))
}

// SellerAddressHasPrefix applies the HasPrefix predicate on the "seller_address" field.
func SellerAddressHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerAddress, v))
}

// SellerAddressHasSuffix applies the HasSuffix predicate on the "seller_address" field.
func SellerAddressHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerAddress, v))
}

// SellerAddressIsNil applies the IsNil predicate on the "seller_address" field.
func SellerAddressIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerAddress))
}

// SellerAddressNotNil applies the NotNil predicate on the "seller_address" field.
func SellerAddressNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerAddress))
}

// SellerAddressEqualFold applies the EqualFold predicate on the "seller_address" field.
func SellerAddressEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerAddress, v))
}

// SellerAddressContainsFold applies the ContainsFold predicate on the "seller_address" field.
func SellerAddressContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerAddress, v))
}

// SellerEmailEQ applies the EQ predicate on the "seller_email" field.
func SellerEmailEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerEmail, v))
}

// SellerEmailNEQ applies the NEQ predicate on the "seller_email" field.
func SellerEmailNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerEmail, v))
}

// SellerEmailIn applies the In predicate on the "seller_email" field.
func SellerEmailIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerEmail, vs...))
}

// SellerEmailNotIn applies the NotIn predicate on the "seller_email" field.
func SellerEmailNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerEmail, vs...))
}

// SellerEmailGT applies the GT predicate on the "seller_email" field.
func SellerEmailGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerEmail, v))
}

// SellerEmailGTE applies the GTE predicate on the "seller_email" field.
func SellerEmailGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerEmail, v))
}

// SellerEmailLT applies the LT predicate on the "seller_email" field.
func SellerEmailLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerEmail, v))
}

// SellerEmailLTE applies the LTE predicate on the "seller_email" field.
func SellerEmailLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerEmail, v))
}

// SellerEmailContains applies the Contains predicate on the "seller_email" field.
func SellerEmailContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerEmail, v))
}

// SellerEmailHasPrefix applies the HasPrefix predicate on the "seller_email" field.
func SellerEmailHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerEmail, v))
}

// SellerEmailHasSuffix applies the HasSuffix predicate on the "seller_email" field.
func SellerEmailHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerEmail, v))
}

// SellerEmailIsNil applies the IsNil predicate on the "seller_email" field.
func SellerEmailIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerEmail))
}

// SellerEmailNotNil applies the NotNil predicate on the "seller_email" field.
func SellerEmailNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerEmail))
}

// SellerEmailEqualFold applies the EqualFold predicate on the "seller_email" field.
func SellerEmailEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerEmail, v))
}

// SellerEmailContainsFold applies the ContainsFold predicate on the "seller_email" field.
func SellerEmailContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerEmail, v))
}

// SellerPhoneEQ applies the EQ predicate on the "seller_phone" field.
func SellerPhoneEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerPhone, v))
}

// SellerPhoneNEQ applies the NEQ predicate on the "seller_phone" field.
func SellerPhoneNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerPhone, v))
}

// SellerPhoneIn applies the In predicate on the "seller_phone" field.
func SellerPhoneIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerPhone, vs...))
}

// SellerPhoneNotIn applies the NotIn predicate on the "seller_phone" field.
func SellerPhoneNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerPhone, vs...))
}

// SellerPhoneGT applies the GT predicate on the "seller_phone" field.
func SellerPhoneGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerPhone, v))
}

// SellerPhoneGTE applies the GTE predicate on the "seller_phone" field.
func SellerPhoneGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerPhone, v))
}

// SellerPhoneLT applies the LT predicate on the "seller_phone" field.
func SellerPhoneLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerPhone, v))
}

// SellerPhoneLTE applies the LTE predicate on the "seller_phone" field.
func SellerPhoneLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerPhone, v))
}

// SellerPhoneContains applies the Contains predicate on the "seller_phone" field.
func SellerPhoneContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerPhone, v))
}

// SellerPhoneHasPrefix applies the HasPrefix predicate on the "seller_phone" field.
func SellerPhoneHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerPhone, v))
}

// SellerPhoneHasSuffix applies the HasSuffix predicate on the "seller_phone" field.
func SellerPhoneHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerPhone, v))
}

// SellerPhoneIsNil applies the IsNil predicate on the "seller_phone" field.
func SellerPhoneIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerPhone))
}

// SellerPhoneNotNil applies the NotNil predicate on the "seller_phone" field.
func SellerPhoneNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerPhone))
}

// SellerPhoneEqualFold applies the EqualFold predicate on the "seller_phone" field.
func SellerPhoneEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerPhone, v))
}

// SellerPhoneContainsFold applies the ContainsFold predicate on the "seller_phone" field.
func SellerPhoneContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerPhone, v))
}

// SellerAccountNumberEQ applies the EQ predicate on the "seller_account_number" field.
func SellerAccountNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAccountNumber, v))
}

// SellerAccountNumberNEQ applies the NEQ predicate on the "seller_account_number" field.
func SellerAccountNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerAccountNumber, v))
}

// SellerAccountNumberIn applies the In predicate on the "seller_account_number" field.
func SellerAccountNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerAccountNumber, vs...))
}

// SellerAccountNumberNotIn applies the NotIn predicate on the "seller_account_number" field.
func SellerAccountNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerAccountNumber, vs...))
}

// SellerAccountNumberGT applies the GT predicate on the "seller_account_number" field.
func SellerAccountNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerAccountNumber, v))
}

// SellerAccountNumberGTE applies the GTE predicate on the "seller_account_number" field.
func SellerAccountNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerAccountNumber, v))
}

// SellerAccountNumberLT applies the LT predicate on the "seller_account_number" field.
func SellerAccountNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerAccountNumber, v))
}

// SellerAccountNumberLTE applies the LTE predicate on the "seller_account_number" field.
func SellerAccountNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerAccountNumber, v))
}

// SellerAccountNumberContains applies the Contains predicate on the "seller_account_number" field.
func SellerAccountNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerAccountNumber, v))
}

// SellerAccountNumberHasPrefix applies the HasPrefix predicate on the "seller_account_number" field.
func SellerAccountNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerAccountNumber, v))
}

// SellerAccountNumberHasSuffix applies the HasSuffix predicate on the "seller_account_number" field.
func SellerAccountNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerAccountNumber, v))
}

// SellerAccountNumberIsNil applies the IsNil predicate on the "seller_account_number" field.
func SellerAccountNumberIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerAccountNumber))
}

// SellerAccountNumberNotNil applies the NotNil predicate on the "seller_account_number" field.
func SellerAccountNumberNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerAccountNumber))
}

// SellerAccountNumberEqualFold applies the EqualFold predicate on the "seller_account_number" field.
func SellerAccountNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerAccountNumber, v))
}

// SellerAccountNumberContainsFold applies the ContainsFold predicate on the "seller_account_number" field.
func SellerAccountNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerAccountNumber, v))
}

// BuyerNameEQ applies the EQ predicate on the "buyer_name" field.
func BuyerNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerName, v))
}

// BuyerNameNEQ applies the NEQ predicate on the "buyer_name" field.
func BuyerNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBuyerName, v))
}

// BuyerNameIn applies the In predicate on the "buyer_name" field.
func BuyerNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBuyerName, vs...))
}

// BuyerNameNotIn applies the NotIn predicate on the "buyer_name" field.
func BuyerNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBuyerName, vs...))
}

// BuyerNameGT applies the GT predicate on the "buyer_name" field.
func BuyerNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBuyerName, v))
}

// BuyerNameGTE applies the GTE predicate on the "buyer_name" field.
func BuyerNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBuyerName, v))
}

// BuyerNameLT applies the LT predicate on the "buyer_name" field.
func BuyerNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBuyerName, v))
}

// BuyerNameLTE applies the LTE predicate on the "buyer_name" field.
func BuyerNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBuyerName, v))
}

// BuyerNameContains applies the Contains predicate on the "buyer_name" field.
func BuyerNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBuyerName, v))
}

// BuyerNameHasPrefix applies the HasPrefix predicate on the "buyer_name" field.
func BuyerNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBuyerName, v))
}

// BuyerNameHasSuffix applies the HasSuffix predicate on the "buyer_name" field.
func BuyerNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBuyerName, v))
}

// BuyerNameIsNil applies the IsNil predicate on the "buyer_name" field.
func BuyerNameIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBuyerName))
}

// BuyerNameNotNil applies the NotNil predicate on the "buyer_name" field.
func BuyerNameNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBuyerName))
}

// BuyerNameEqualFold applies the EqualFold predicate on the "buyer_name" field.
func BuyerNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBuyerName, v))
}

// BuyerNameContainsFold applies the ContainsFold predicate on the "buyer_name" field.
func BuyerNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBuyerName, v))
}

// BuyerTaxIDEQ applies the EQ predicate on the "buyer_tax_id" field.
func BuyerTaxIDEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerTaxID, v))
}

// BuyerTaxIDNEQ applies the NEQ predicate on the "buyer_tax_id" field.
func BuyerTaxIDNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBuyerTaxID, v))
}

// BuyerTaxIDIn applies the In predicate on the "buyer_tax_id" field.
func BuyerTaxIDIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBuyerTaxID, vs...))
}

// BuyerTaxIDNotIn applies the NotIn predicate on the "buyer_tax_id" field.
func BuyerTaxIDNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBuyerTaxID, vs...))
}

// BuyerTaxIDGT applies the GT predicate on the "buyer_tax_id" field.
func BuyerTaxIDGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBuyerTaxID, v))
}

// BuyerTaxIDGTE applies the GTE predicate on the "buyer_tax_id" field.
func BuyerTaxIDGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBuyerTaxID, v))
}

// BuyerTaxIDLT applies the LT predicate on the "buyer_tax_id" field.
func BuyerTaxIDLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBuyerTaxID, v))
}

// BuyerTaxIDLTE applies the LTE predicate on the "buyer_tax_id" field.
func BuyerTaxIDLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBuyerTaxID, v))
}

// BuyerTaxIDContains applies the Contains predicate on the "buyer_tax_id" field.
func BuyerTaxIDContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBuyerTaxID, v))
}

// BuyerTaxIDHasPrefix applies the HasPrefix predicate on the "buyer_tax_id" field.
func BuyerTaxIDHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBuyerTaxID, v))
}

// BuyerTaxIDHasSuffix applies the HasSuffix predicate on the "buyer_tax_id" field.
func BuyerTaxIDHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBuyerTaxID, v))
}

// BuyerTaxIDIsNil applies the IsNil predicate on the "buyer_tax_id" field.
func BuyerTaxIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBuyerTaxID))
}

// BuyerTaxIDNotNil applies the NotNil predicate on the "buyer_tax_id" field.
func BuyerTaxIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBuyerTaxID))
}

// BuyerTaxIDEqualFold applies the EqualFold predicate on the "buyer_tax_id" field.
func BuyerTaxIDEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBuyerTaxID, v))
}

// BuyerTaxIDContainsFold applies the ContainsFold predicate on the "buyer_tax_id" field.
func BuyerTaxIDContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBuyerTaxID, v))
}

// BuyerAddressEQ applies the EQ predicate on the "buyer_address" field.
func BuyerAddressEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerAddress, v))
}

// BuyerAddressNEQ applies the NEQ predicate on the "buyer_address" field.
func BuyerAddressNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBuyerAddress, v))
}

// BuyerAddressIn applies the In predicate on the "buyer_address" field.
func BuyerAddressIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBuyerAddress, vs...))
}

// BuyerAddressNotIn applies the NotIn predicate on the "buyer_address" field.
func BuyerAddressNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBuyerAddress, vs...))
}

// BuyerAddressGT applies the GT predicate on the "buyer_address" field.
func BuyerAddressGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBuyerAddress, v))
}

// BuyerAddressGTE applies the GTE predicate on the "buyer_address" field.
func BuyerAddressGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBuyerAddress, v))
}

// BuyerAddressLT applies the LT predicate on the "buyer_address" field.
func BuyerAddressLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBuyerAddress, v))
}

// BuyerAddressLTE applies the LTE predicate on the "buyer_address" field.
func BuyerAddressLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBuyerAddress, v))
}

// BuyerAddressContains applies the Contains predicate on the "buyer_address" field.
func BuyerAddressContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBuyerAddress, v))
}

// BuyerAddressHasPrefix applies the HasPrefix predicate on the "buyer_address" field.
func BuyerAddressHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBuyerAddress, v))
}

// BuyerAddressHasSuffix applies the HasSuffix predicate on the "buyer_address" field.
func BuyerAddressHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBuyerAddress, v))
}

// BuyerAddressIsNil applies the IsNil predicate on the "buyer_address" field.
func BuyerAddressIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBuyerAddress))
}

// BuyerAddressNotNil applies the NotNil predicate on the "buyer_address" field.
func BuyerAddressNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBuyerAddress))
}

// BuyerAddressEqualFold applies the EqualFold predicate on the "buyer_address" field.
func BuyerAddressEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBuyerAddress, v))
}

// BuyerAddressContainsFold applies the ContainsFold predicate on the "buyer_address" field.
func BuyerAddressContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBuyerAddress, v))
}

// BuyerEmailEQ applies the EQ predicate on the "buyer_email" field.
func BuyerEmailEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerEmail, v))
}

// BuyerEmailNEQ applies the NEQ predicate on the "buyer_email" field.
func BuyerEmailNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBuyerEmail, v))
}

// BuyerEmailIn applies the In predicate on the "buyer_email" field.
func BuyerEmailIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBuyerEmail, vs...))
}

// BuyerEmailNotIn applies the NotIn predicate on the "buyer_email" field.
func BuyerEmailNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBuyerEmail, vs...))
}

// BuyerEmailGT applies the GT predicate on the "buyer_email" field.
func BuyerEmailGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBuyerEmail, v))
}

// BuyerEmailGTE applies the GTE predicate on the "buyer_email" field.
func BuyerEmailGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBuyerEmail, v))
}

// BuyerEmailLT applies the LT predicate on the "buyer_email" field.
func BuyerEmailLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBuyerEmail, v))
}

// BuyerEmailLTE applies the LTE predicate on the "buyer_email" field.
func BuyerEmailLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBuyerEmail, v))
}

// BuyerEmailContains applies the Contains predicate on the "buyer_email" field.
func BuyerEmailContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBuyerEmail, v))
}

// BuyerEmailHasPrefix applies the HasPrefix predicate on the "buyer_email" field.
func BuyerEmailHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBuyerEmail, v))
}

// BuyerEmailHasSuffix applies the HasSuffix predicate on the "buyer_email" field.
func BuyerEmailHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBuyerEmail, v))
}

// BuyerEmailIsNil applies the IsNil predicate on the "buyer_email" field.
func BuyerEmailIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBuyerEmail))
}

// BuyerEmailNotNil applies the NotNil predicate on the "buyer_email" field.
func BuyerEmailNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBuyerEmail))
}

// BuyerEmailEqualFold applies the EqualFold predicate on the "buyer_email" field.
func BuyerEmailEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBuyerEmail, v))
}

// BuyerEmailContainsFold applies the ContainsFold predicate on the "buyer_email" field.
func BuyerEmailContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBuyerEmail, v))
}

// BuyerPhoneEQ applies the EQ predicate on the "buyer_phone" field.
func BuyerPhoneEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBuyerPhone, v))
}

// BuyerPhoneNEQ applies the NEQ predicate on the "buyer_phone" field.
func BuyerPhoneNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBuyerPhone, v))
}

// BuyerPhoneIn applies the In predicate on the "buyer_phone" field.
func BuyerPhoneIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBuyerPhone, vs...))
}

// BuyerPhoneNotIn applies the NotIn predicate on the "buyer_phone" field.
func BuyerPhoneNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBuyerPhone, vs...))
}

// BuyerPhoneGT applies the GT predicate on the "buyer_phone" field.
func BuyerPhoneGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBuyerPhone, v))
}

// BuyerPhoneGTE applies the GTE predicate on the "buyer_phone" field.
func BuyerPhoneGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBuyerPhone, v))
}

// BuyerPhoneLT applies the LT predicate on the "buyer_phone" field.
func BuyerPhoneLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBuyerPhone, v))
}

// BuyerPhoneLTE applies the LTE predicate on the "buyer_phone" field.
func BuyerPhoneLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBuyerPhone, v))
}

// BuyerPhoneContains applies the Contains predicate on the "buyer_phone" field.
func BuyerPhoneContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBuyerPhone, v))
}

// BuyerPhoneHasPrefix applies the HasPrefix predicate on the "buyer_phone" field.
func BuyerPhoneHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBuyerPhone, v))
}

// BuyerPhoneHasSuffix applies the HasSuffix predicate on the "buyer_phone" field.
func BuyerPhoneHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBuyerPhone, v))
}

// BuyerPhoneIsNil applies the IsNil predicate on the "buyer_phone" field.
func BuyerPhoneIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBuyerPhone))
}

// BuyerPhoneNotNil applies the NotNil predicate on the "buyer_phone" field.
func BuyerPhoneNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBuyerPhone))
}

// BuyerPhoneEqualFold applies the EqualFold predicate on the "buyer_phone" field.
func BuyerPhoneEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBuyerPhone, v))
}

// BuyerPhoneContainsFold applies the ContainsFold predicate on the "buyer_phone" field.
func BuyerPhoneContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBuyerPhone, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSubtotal, v))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTaxAmount, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// PaymentStatusGT applies the GT predicate on the "payment_status" field.
func PaymentStatusGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPaymentStatus, v))
}

// PaymentStatusGTE applies the GTE predicate on the "payment_status" field.
func PaymentStatusGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPaymentStatus, v))
}

// PaymentStatusLT applies the LT predicate on the "payment_status" field.
func PaymentStatusLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPaymentStatus, v))
}

// PaymentStatusLTE applies the LTE predicate on the "payment_status" field.
func PaymentStatusLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPaymentStatus, v))
}

// PaymentStatusContains applies the Contains predicate on the "payment_status" field.
func PaymentStatusContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPaymentStatus, v))
}

// PaymentStatusHasPrefix applies the HasPrefix predicate on the "payment_status" field.
func PaymentStatusHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPaymentStatus, v))
}

// PaymentStatusHasSuffix applies the HasSuffix predicate on the "payment_status" field.
func PaymentStatusHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPaymentStatus, v))
}

// PaymentStatusIsNil applies the IsNil predicate on the "payment_status" field.
func PaymentStatusIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPaymentStatus))
}

// PaymentStatusNotNil applies the NotNil predicate on the "payment_status" field.
func PaymentStatusNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPaymentStatus))
}

// PaymentStatusEqualFold applies the EqualFold predicate on the "payment_status" field.
func PaymentStatusEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPaymentStatus, v))
}

// PaymentStatusContainsFold applies the ContainsFold predicate on the "payment_status" field.
func PaymentStatusContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPaymentStatus, v))
}

// SourceFormatEQ applies the EQ predicate on the "source_format" field.
func SourceFormatEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceFormat, v))
}

// SourceFormatNEQ applies the NEQ predicate on the "source_format" field.
func SourceFormatNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSourceFormat, v))
}

// SourceFormatIn applies the In predicate on the "source_format" field.
func SourceFormatIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSourceFormat, vs...))
}

// SourceFormatNotIn applies the NotIn predicate on the "source_format" field.
func SourceFormatNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSourceFormat, vs...))
}

// SourceFormatGT applies the GT predicate on the "source_format" field.
func SourceFormatGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSourceFormat, v))
}

// SourceFormatGTE applies the GTE predicate on the "source_format" field.
func SourceFormatGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSourceFormat, v))
}

// SourceFormatLT applies the LT predicate on the "source_format" field.
func SourceFormatLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSourceFormat, v))
}

// SourceFormatLTE applies the LTE predicate on the "source_format" field.
func SourceFormatLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSourceFormat, v))
}

// SourceFormatContains applies the Contains predicate on the "source_format" field.
func SourceFormatContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSourceFormat, v))
}

// SourceFormatHasPrefix applies the HasPrefix predicate on the "source_format" field.
func SourceFormatHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSourceFormat, v))
}

// SourceFormatHasSuffix applies the HasSuffix predicate on the "source_format" field.
func SourceFormatHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSourceFormat, v))
}

// SourceFormatEqualFold applies the EqualFold predicate on the "source_format" field.
func SourceFormatEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSourceFormat, v))
}

// SourceFormatContainsFold applies the ContainsFold predicate on the "source_format" field.
func SourceFormatContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSourceFormat, v))
}

// RawExcerptEQ applies the EQ predicate on the "raw_excerpt" field.
func RawExcerptEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawExcerpt, v))
}

// RawExcerptNEQ applies the NEQ predicate on the "raw_excerpt" field.
func RawExcerptNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldRawExcerpt, v))
}

// RawExcerptIn applies the In predicate on the "raw_excerpt" field.
func RawExcerptIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldRawExcerpt, vs...))
}

// RawExcerptNotIn applies the NotIn predicate on the "raw_excerpt" field.
func RawExcerptNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldRawExcerpt, vs...))
}

// RawExcerptGT applies the GT predicate on the "raw_excerpt" field.
func RawExcerptGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldRawExcerpt, v))
}

// RawExcerptGTE applies the GTE predicate on the "raw_excerpt" field.
func RawExcerptGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldRawExcerpt, v))
}

// RawExcerptLT applies the LT predicate on the "raw_excerpt" field.
func RawExcerptLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldRawExcerpt, v))
}

// RawExcerptLTE applies the LTE predicate on the "raw_excerpt" field.
func RawExcerptLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldRawExcerpt, v))
}

// RawExcerptContains applies the Contains predicate on the "raw_excerpt" field.
func RawExcerptContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldRawExcerpt, v))
}

// RawExcerptHasPrefix applies the HasPrefix predicate on the "raw_excerpt" field.
func RawExcerptHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldRawExcerpt, v))
}

// RawExcerptHasSuffix applies the HasSuffix predicate on the "raw_excerpt" field.
func RawExcerptHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldRawExcerpt, v))
}

// RawExcerptIsNil applies the IsNil predicate on the "raw_excerpt" field.
func RawExcerptIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldRawExcerpt))
}

// RawExcerptNotNil applies the NotNil predicate on the "raw_excerpt" field.
func RawExcerptNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldRawExcerpt))
}

// RawExcerptEqualFold applies the EqualFold predicate on the "raw_excerpt" field.
func RawExcerptEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldRawExcerpt, v))
}

// RawExcerptContainsFold applies the ContainsFold predicate on the "raw_excerpt" field.
func RawExcerptContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldRawExcerpt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ImportJob) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLines applies the HasEdge predicate on the "lines" edge.
func HasLines() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinesWith applies the HasEdge predicate on the "lines" edge with a given conditions (other predicates).
func HasLinesWith(preds ...predicate.InvoiceLine) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
