package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/entity"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/normalize"
)

// PDF text extraction flattens the items table into adjacent lines. Three
// layouts occur in practice:
//
//	A: "<name> <qty> <unit price> <cur> <amount> <cur>"  (one line)
//	B: "<name>" / "<date range>" / "<qty> <amount> <cur>" (three lines)
//	C: "<name> <qty> <unit price> <rate>% <gross>"        (VAT formats)
//
// Layout A is tried first with a global scan; C next for the formats that
// print a VAT column; otherwise a stateful line walk reassembles layout B.

const (
	itemAmt  = `(\d[\d\x{00a0}\x{202f} .,]*\d|\d)`
	itemCur  = `(?:USD|EUR|PLN|GBP|zł|\$|€|£)`
	itemQty  = `(\d+(?:[.,]\d+)?)`
	itemUnit = `(?:(szt|godz|mies|usł|kpl|h)\.?\s+)?`
	dateish  = `(?:\d{1,2}[./-]\d{1,2}[./-]\d{2,4}|\p{L}+\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+\p{L}+\.?\s+\d{4})`
)

var (
	reItemsHeader = rx(`(?im)^[ \t]*(?:Description|Item\b|Qty\b|Usługa|Usługi|Opis|Nazwa(?: towaru| usługi)?|Lp\.?\s)`)
	reTotalsMark  = rx(`(?im)^[ \t]*(?:Subtotal|Total\b|Amount (?:due|paid)|Razem|Suma|Łącznie|Do zapłaty|W tym)`)

	// a symbol may sit glued to the amount ("$90.00 USD")
	reSingleLine = rx(`(?m)^[ \t]*(\S.{2,}?)\s+` + itemQty + `\s+[$€£]?` + itemAmt + `\s*` + itemCur + `\s+[$€£]?` + itemAmt + `\s*` + itemCur + `[ \t]*$`)
	rePercentTax = rx(`(?m)^[ \t]*(\S.{2,}?)\s+` + itemQty + `\s+` + itemUnit + itemAmt + `\s+(\d{1,2})%\s+` + itemAmt + `[ \t]*$`)
	reDataRow    = rx(`^[ \t]*` + itemQty + `\s+[$€£]?` + itemAmt + `\s*(` + itemCur + `)[ \t]*$`)
	reDateRange  = rx(`(?i)^[ \t(]*` + dateish + `\s*[-–—]\s*` + dateish + `\)?[ \t.]*$`)
)

// headerWords is the vocabulary of residual column-header lines; a line made
// only of these tokens is noise, not an item name.
var headerWords = map[string]struct{}{
	"description": {}, "item": {}, "qty": {}, "quantity": {}, "unit": {},
	"price": {}, "amount": {}, "tax": {}, "vat": {}, "lp": {}, "lp.": {},
	"nazwa": {}, "usługa": {}, "usługi": {}, "opis": {}, "ilość": {},
	"j.m.": {}, "j.m": {}, "cena": {}, "netto": {}, "brutto": {}, "wartość": {},
	"stawka": {}, "kwota": {},
}

// reconstructLineItems recovers the item list from flattened text. An empty
// result is the normal outcome when no layout matches anywhere.
func reconstructLineItems(text string, format constants.SourceFormat) []entity.LineItem {
	section := itemSection(text)
	if strings.TrimSpace(section) == "" {
		return nil
	}
	if items := singleLineItems(section); len(items) > 0 {
		return items
	}
	if format.HasTaxBreakdown() {
		if items := percentTaxItems(section); len(items) > 0 {
			return items
		}
	}
	return walkItems(section)
}

// itemSection bounds the candidate region: everything after the first column
// header line and before the first totals marker. Missing markers widen the
// region rather than aborting.
func itemSection(text string) string {
	start := 0
	if loc := reItemsHeader.FindStringIndex(text); loc != nil {
		if nl := strings.IndexByte(text[loc[1]:], '\n'); nl >= 0 {
			start = loc[1] + nl + 1
		} else {
			return ""
		}
	}
	end := len(text)
	if loc := reTotalsMark.FindStringIndex(text[start:]); loc != nil {
		end = start + loc[0]
	}
	return text[start:end]
}

// singleLineItems handles layout A. These vendor lines carry net amounts with
// no VAT column, so gross equals net and the rate is zero.
func singleLineItems(section string) []entity.LineItem {
	var items []entity.LineItem
	for _, m := range reSingleLine.FindAllStringSubmatch(section, -1) {
		name := collapseSpaces(m[1])
		if isNoiseLine(name) || reDateRange.MatchString(name) {
			continue
		}
		qty, ok := normalize.ParseAmount(m[2])
		if !ok {
			continue
		}
		unitPrice, ok := normalize.ParseAmount(m[3])
		if !ok {
			continue
		}
		net, ok := normalize.ParseAmount(m[4])
		if !ok {
			continue
		}
		items = append(items, entity.LineItem{
			Position:    len(items) + 1,
			Name:        name,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			NetAmount:   net,
			GrossAmount: net,
		})
	}
	return items
}

// percentTaxItems handles layout C. The line prints gross and a VAT percent;
// net and tax are derived. A date-range line immediately above becomes the
// item description.
func percentTaxItems(section string) []entity.LineItem {
	var items []entity.LineItem
	lines := strings.Split(section, "\n")
	for i, raw := range lines {
		m := rePercentTax.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}
		name := collapseSpaces(m[1])
		if isNoiseLine(name) {
			continue
		}
		qty, ok := normalize.ParseAmount(m[2])
		if !ok {
			continue
		}
		unitPrice, ok := normalize.ParseAmount(m[4])
		if !ok {
			continue
		}
		rate, ok := normalize.ParseAmount(m[5])
		if !ok {
			continue
		}
		gross, ok := normalize.ParseAmount(m[6])
		if !ok {
			continue
		}
		item := entity.LineItem{
			Position:    len(items) + 1,
			Name:        name,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			TaxRate:     rate,
			GrossAmount: gross,
		}
		item.NetAmount, item.TaxAmount = splitGross(gross, rate)
		if m[3] != "" {
			unit := m[3]
			item.Unit = &unit
		}
		if i > 0 {
			if prev := strings.TrimSpace(lines[i-1]); reDateRange.MatchString(prev) {
				desc := prev
				item.Description = &desc
			}
		}
		items = append(items, item)
	}
	return items
}

// walkState drives the layout-B reassembly.
type walkState int

const (
	seekingName walkState = iota
	seekingDescriptionOrData
	seekingData
)

// walkItems reassembles layout B: a data row is paired with the nearest
// preceding non-description line as name and, when a date-range line sits
// between them, that line as description. A data row with no owner is
// dropped; a fresh name line discards any stale description.
func walkItems(section string) []entity.LineItem {
	var (
		items []entity.LineItem
		name  string
		desc  *string
		state = seekingName
	)
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isNoiseLine(line) {
			continue
		}
		if m := reDataRow.FindStringSubmatch(line); m != nil {
			if state == seekingName || name == "" {
				continue
			}
			qty, okQty := normalize.ParseAmount(m[1])
			net, okNet := normalize.ParseAmount(m[2])
			if !okQty || !okNet {
				continue
			}
			item := entity.LineItem{
				Position:    len(items) + 1,
				Name:        name,
				Description: desc,
				Quantity:    qty,
				NetAmount:   net,
				GrossAmount: net,
			}
			if qty.Sign() > 0 {
				item.UnitPrice = net.Div(qty).Round(2)
			} else {
				item.UnitPrice = net
			}
			items = append(items, item)
			name, desc, state = "", nil, seekingName
			continue
		}
		if reDateRange.MatchString(line) {
			if state == seekingDescriptionOrData {
				d := line
				desc = &d
				state = seekingData
			}
			continue
		}
		name, desc, state = line, nil, seekingDescriptionOrData
	}
	return items
}

// splitGross derives net and tax from a gross amount and a VAT percent:
// net = gross / (1 + rate/100), tax = gross - net.
func splitGross(gross, rate decimal.Decimal) (net, tax decimal.Decimal) {
	if rate.Sign() <= 0 {
		return gross, decimal.Decimal{}
	}
	divisor := decimal.NewFromInt(1).Add(rate.Div(decimal.NewFromInt(100)))
	net = gross.DivRound(divisor, 2)
	return net, gross.Sub(net)
}

func isNoiseLine(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if _, ok := headerWords[strings.Trim(f, ".:%")]; !ok {
			return false
		}
	}
	return true
}
