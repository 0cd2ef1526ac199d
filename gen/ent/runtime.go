// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/octadecimal-ai/ai-finances-sub000/db/ent/schema"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/importjob"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoice"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent/invoiceline"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescSourcePath is the schema descriptor for source_path field.
	importjobDescSourcePath := importjobFields[1].Descriptor()
	// importjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	importjob.SourcePathValidator = importjobDescSourcePath.Validators[0].(func(string) error)
	// importjobDescSourceFormat is the schema descriptor for source_format field.
	importjobDescSourceFormat := importjobFields[3].Descriptor()
	// importjob.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	importjob.SourceFormatValidator = func() func(string) error {
		validators := importjobDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[4].Descriptor()
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = func() func(string) error {
		validators := importjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[5].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescInvoiceCount is the schema descriptor for invoice_count field.
	importjobDescInvoiceCount := importjobFields[8].Descriptor()
	// importjob.DefaultInvoiceCount holds the default value on creation for the invoice_count field.
	importjob.DefaultInvoiceCount = importjobDescInvoiceCount.Default.(int)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCurrencyCode is the schema descriptor for currency_code field.
	invoiceDescCurrencyCode := invoiceFields[20].Descriptor()
	// invoice.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	invoice.CurrencyCodeValidator = func() func(string) error {
		validators := invoiceDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescPaymentStatus is the schema descriptor for payment_status field.
	invoiceDescPaymentStatus := invoiceFields[22].Descriptor()
	// invoice.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	invoice.PaymentStatusValidator = invoiceDescPaymentStatus.Validators[0].(func(string) error)
	// invoiceDescSourceFormat is the schema descriptor for source_format field.
	invoiceDescSourceFormat := invoiceFields[23].Descriptor()
	// invoice.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	invoice.SourceFormatValidator = func() func(string) error {
		validators := invoiceDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[25].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[26].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicelineFields := schema.InvoiceLine{}.Fields()
	_ = invoicelineFields
	// invoicelineDescPosition is the schema descriptor for position field.
	invoicelineDescPosition := invoicelineFields[2].Descriptor()
	// invoiceline.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	invoiceline.PositionValidator = invoicelineDescPosition.Validators[0].(func(int) error)
	// invoicelineDescName is the schema descriptor for name field.
	invoicelineDescName := invoicelineFields[3].Descriptor()
	// invoiceline.NameValidator is a validator for the "name" field. It is called by the builders before save.
	invoiceline.NameValidator = invoicelineDescName.Validators[0].(func(string) error)
	// invoicelineDescID is the schema descriptor for id field.
	invoicelineDescID := invoicelineFields[0].Descriptor()
	// invoiceline.DefaultID holds the default value on creation for the id field.
	invoiceline.DefaultID = invoicelineDescID.Default.(func() uuid.UUID)
}
