package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// serialized normalized record. The persistence pipeline validates engine
// output against it before writing, catching shape drift between the engine
// and the storage mapping.
func BuildInvoiceJSONSchema() map[string]any {
	party := func(withAccount bool) map[string]any {
		props := map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"tax_id":  map[string]any{"type": "string", "minLength": 1},
			"address": map[string]any{"type": "string"},
			"email":   map[string]any{"type": "string"},
			"phone":   map[string]any{"type": "string"},
		}
		if withAccount {
			props["account_number"] = map[string]any{"type": "string"}
		}
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}

	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"position":     map[string]any{"type": "integer", "minimum": 1},
			"name":         map[string]any{"type": "string", "minLength": 1},
			"description":  map[string]any{"type": "string"},
			"quantity":     decimalProp(),
			"unit":         map[string]any{"type": "string"},
			"unit_price":   decimalProp(),
			"net_amount":   decimalProp(),
			"tax_rate":     decimalProp(),
			"tax_amount":   decimalProp(),
			"gross_amount": decimalProp(),
		},
		"required": []string{"position", "name", "quantity", "net_amount", "gross_amount"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoice_number": map[string]any{"type": "string", "minLength": 1},
			"invoice_date":   map[string]any{"type": "string", "format": "date-time"},
			"issue_date":     map[string]any{"type": "string", "format": "date-time"},
			"due_date":       map[string]any{"type": "string", "format": "date-time"},
			"seller":         party(true),
			"buyer":          party(false),
			"subtotal":       decimalProp(),
			"tax_amount":     decimalProp(),
			"total_amount":   decimalProp(),
			"currency":       map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"payment_method": map[string]any{"type": "string"},
			"payment_status": map[string]any{"type": "string", "enum": []string{
				string(constants.PaymentStatusPaid),
				string(constants.PaymentStatusOverdue),
				string(constants.PaymentStatusPending),
			}},
			"line_items":    map[string]any{"type": []string{"array", "null"}, "items": lineItem},
			"raw_excerpt":   map[string]any{"type": "string"},
			"source_format": map[string]any{"type": "string", "enum": constants.SourceFormats},
		},
		"required": []string{"seller", "buyer", "subtotal", "tax_amount", "total_amount", "currency", "raw_excerpt", "source_format"},
	}
}

// shopspring/decimal marshals as a bare JSON number string ("12.34").
func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}

// ValidateInvoiceJSON validates a serialized invoice against the schema.
func ValidateInvoiceJSON(data []byte) error {
	b, err := json.Marshal(BuildInvoiceJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("invoice.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal invoice: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invoice does not match schema: %w", err)
	}
	return nil
}
