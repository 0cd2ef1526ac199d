// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportJobColumns holds the columns for the "import_job" table.
	ImportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "source_format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "invoice_count", Type: field.TypeInt, Default: 0},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
	}
	// ImportJobTable holds the schema information for the "import_job" table.
	ImportJobTable = &schema.Table{
		Name:       "import_job",
		Columns:    ImportJobColumns,
		PrimaryKey: []*schema.Column{ImportJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[4], ImportJobColumns[5]},
			},
			{
				Name:    "importjob_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[2]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "issue_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "seller_name", Type: field.TypeString, Nullable: true},
		{Name: "seller_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "seller_address", Type: field.TypeString, Nullable: true},
		{Name: "seller_email", Type: field.TypeString, Nullable: true},
		{Name: "seller_phone", Type: field.TypeString, Nullable: true},
		{Name: "seller_account_number", Type: field.TypeString, Nullable: true},
		{Name: "buyer_name", Type: field.TypeString, Nullable: true},
		{Name: "buyer_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "buyer_address", Type: field.TypeString, Nullable: true},
		{Name: "buyer_email", Type: field.TypeString, Nullable: true},
		{Name: "buyer_phone", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "payment_status", Type: field.TypeString, Nullable: true},
		{Name: "source_format", Type: field.TypeString},
		{Name: "raw_excerpt", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_import_job_invoices",
				Columns:    []*schema.Column{InvoicesColumns[26]},
				RefColumns: []*schema.Column{ImportJobColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_number_source_format",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[22]},
			},
			{
				Name:    "invoice_job_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[26]},
			},
			{
				Name:    "invoice_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[2]},
			},
		},
	}
	// InvoiceLinesColumns holds the columns for the "invoice_lines" table.
	InvoiceLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "net_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gross_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceLinesTable holds the schema information for the "invoice_lines" table.
	InvoiceLinesTable = &schema.Table{
		Name:       "invoice_lines",
		Columns:    InvoiceLinesColumns,
		PrimaryKey: []*schema.Column{InvoiceLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_lines_invoices_lines",
				Columns:    []*schema.Column{InvoiceLinesColumns[11]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceline_invoice_id_position",
				Unique:  true,
				Columns: []*schema.Column{InvoiceLinesColumns[11], InvoiceLinesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportJobTable,
		InvoicesTable,
		InvoiceLinesTable,
	}
)

func init() {
	ImportJobTable.Annotation = &entsql.Annotation{
		Table: "import_job",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ImportJobTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceLinesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceLinesTable.Annotation = &entsql.Annotation{
		Table: "invoice_lines",
	}
}
