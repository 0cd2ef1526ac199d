package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK; every stored invoice came out of a job
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("issue_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("seller_name").Optional().Nillable(),
		field.String("seller_tax_id").Optional().Nillable(),
		field.String("seller_address").Optional().Nillable(),
		field.String("seller_email").Optional().Nillable(),
		field.String("seller_phone").Optional().Nillable(),
		field.String("seller_account_number").Optional().Nillable(),
		field.String("buyer_name").Optional().Nillable(),
		field.String("buyer_tax_id").Optional().Nillable(),
		field.String("buyer_address").Optional().Nillable(),
		field.String("buyer_email").Optional().Nillable(),
		field.String("buyer_phone").Optional().Nillable(),
		field.Float("subtotal").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("payment_method").Optional().Nillable(),
		field.String("payment_status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.PaymentStatuses...)),
		field.String("source_format").NotEmpty().
			Validate(utils.EnumValidator(constants.SourceFormats...)),
		field.String("raw_excerpt").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE job (FK: invoices.job_id)
		edge.From("job", ImportJob.Type).
			Ref("invoices").
			Field("job_id").
			Unique(),
		// ONE invoice -> MANY lines
		edge.To("lines", InvoiceLine.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// dedup key for re-imports of the same document
		index.Fields("invoice_number", "source_format").Unique(),
		index.Fields("job_id"),
		index.Fields("invoice_date"),
	}
}
