package extract

import (
	"regexp"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

// Field names one extractable invoice field. The names double as keys in
// audit output, so they stay stable.
type Field string

const (
	FieldInvoiceNumber Field = "invoice_number"
	FieldInvoiceDate   Field = "invoice_date"
	FieldIssueDate     Field = "issue_date"
	FieldDueDate       Field = "due_date"
	FieldSellerName    Field = "seller_name"
	FieldSellerTaxID   Field = "seller_tax_id"
	FieldSellerAddress Field = "seller_address"
	FieldSellerEmail   Field = "seller_email"
	FieldSellerPhone   Field = "seller_phone"
	FieldSellerAccount Field = "seller_account"
	FieldBuyerName     Field = "buyer_name"
	FieldBuyerTaxID    Field = "buyer_tax_id"
	FieldBuyerAddress  Field = "buyer_address"
	FieldBuyerEmail    Field = "buyer_email"
	FieldBuyerPhone    Field = "buyer_phone"
	FieldSubtotal      Field = "subtotal"
	FieldTax           Field = "tax"
	FieldTotal         Field = "total"
	FieldPaymentMethod Field = "payment_method"
)

// Reusable capture classes. Label and value may be glued together when PDF
// extraction collapses the separating space, so every labeled pattern joins
// them with `:?\s*`, which tolerates both "Label: value" and "Labelvalue".
const (
	dateTok   = `(\d{1,4}[./-]\d{1,2}[./-]\d{2,4}|\d{1,2}\s+\p{L}+\.?\s+\d{4}|\p{L}+\s+\d{1,2},?\s+\d{4})`
	amountTok = `([\d\x{00a0}\x{202f} .,]*\d)`
	// amounts that must carry a decimal part, so a "VAT" inside an invoice
	// number ("Faktura VAT 12/2025") cannot be read as a tax amount
	amountDecTok = `([\d\x{00a0}\x{202f} .,]*\d[.,]\d{2})`
	moneyPre  = `(?:USD|EUR|PLN|GBP|zł|\$|€|£)?\s*`
	nipTok    = `((?:PL\s?)?\d{3}[ -]?\d{3}[ -]?\d{2}[ -]?\d{2}|(?:PL\s?)?\d{10})`
	emailTok  = `([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`
	phoneTok  = `(\+?[\d][\d\s()-]{6,18}\d)`
	ibanTok   = `([A-Z]{2}\s?\d{2}(?:[ ]?\d{4}){4,7}|\d{26})`
)

func rx(expr string) *regexp.Regexp { return regexp.MustCompile(expr) }

// patternTable maps vendor tag -> field -> ordered candidate patterns.
// Order is load-bearing: the first matching pattern wins, so vendor-specific
// rules precede loose fallbacks within each list. Every tag carries its own
// complete list; there is no cross-tag fallthrough to get wrong silently.
// The table is built once at init and never mutated, so concurrent Extract
// calls need no coordination.
var patternTable = map[constants.SourceFormat]map[Field][]*regexp.Regexp{

	// Cursor: Stripe-generated English invoice, USD, tax usually absent.
	constants.FormatCursor: {
		FieldInvoiceNumber: {
			rx(`(?i)Invoice number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
			rx(`(?i)Receipt number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
		},
		FieldInvoiceDate: {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldIssueDate:   {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldDueDate: {
			rx(`(?i)Date due:?\s*` + dateTok),
			rx(`(?i)Due date:?\s*` + dateTok),
		},
		FieldSellerName: {
			rx(`(?m)^\s*(Cursor,?\s?Inc\.?)\s*$`),
			rx(`(Anysphere,?\s?Inc\.?)`),
		},
		FieldSellerTaxID:   {rx(`(?i)(?:EU OSS VAT|VAT(?: ID)?|Tax ID):?\s*((?:EU|PL)?\s?[A-Z0-9]{8,12})`)},
		FieldSellerAddress: {rx(`(?m)^\s*(\d+\s[A-Z][^\n,]*(?:St(?:reet)?|Ave(?:nue)?|Blvd|Suite|Floor)[^\n]*)$`)},
		FieldSellerEmail:   {rx(`(?i)` + emailTok)},
		FieldSellerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSellerAccount: {rx(`(?i)IBAN:?\s*` + ibanTok)},
		FieldBuyerName: {
			rx(`(?i)Bill to:?\s*\n\s*([^\n]+)`),
			rx(`(?i)Bill to:?\s*([^\n]+)`),
		},
		FieldBuyerTaxID: {
			rx(`(?i)(?:PL )?VAT:?\s*((?:PL)?\d{10})`),
			rx(`(?i)NIP:?\s*` + nipTok),
		},
		FieldBuyerAddress: {rx(`(?i)Bill to:?\s*\n[^\n]+\n([^\n]+(?:\n[^\n]*\d{2}-\d{3}[^\n]*)?)`)},
		FieldBuyerEmail:   {rx(`(?i)Bill to:?(?:[^\n]*\n){1,4}\s*` + emailTok)},
		FieldBuyerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSubtotal:     {rx(`(?i)Subtotal:?\s*` + moneyPre + amountTok)},
		FieldTax: {
			rx(`(?im)^[ \t]*(?:Sales )?tax(?:\s*\(?\d{1,2}(?:[.,]\d+)?%\)?(?: on [^\n:]+)?)?:?\s*` + moneyPre + amountTok),
			rx(`(?i)VAT(?:\s*\(?\d{1,2}%\)?)?:?\s*` + moneyPre + amountTok),
		},
		FieldTotal: {
			rx(`(?i)Amount due:?\s*` + moneyPre + amountTok),
			rx(`(?i)Amount paid:?\s*` + moneyPre + amountTok),
			rx(`(?i)\bTotal\b:?\s*` + moneyPre + amountTok),
		},
		FieldPaymentMethod: {
			rx(`(?i)(Visa|Mastercard|American Express)\s*[-–—•]{0,4}\s*\d{4}`),
			rx(`(?i)Payment method:?\s*([A-Za-z][A-Za-z ]{2,30})`),
		},
	},

	// Anthropic: Stripe-generated English invoice, USD.
	constants.FormatAnthropic: {
		FieldInvoiceNumber: {
			rx(`(?i)Invoice number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
			rx(`(?i)Receipt number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
		},
		FieldInvoiceDate: {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldIssueDate:   {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldDueDate: {
			rx(`(?i)Date due:?\s*` + dateTok),
			rx(`(?i)Due date:?\s*` + dateTok),
		},
		FieldSellerName: {
			rx(`(Anthropic,?\s?PBC)`),
			rx(`(?m)^\s*(Anthropic[^\n]*)$`),
		},
		FieldSellerTaxID:   {rx(`(?i)(?:EU OSS VAT|VAT(?: ID)?|Tax ID):?\s*((?:EU|PL)?\s?[A-Z0-9]{8,12})`)},
		FieldSellerAddress: {rx(`(?m)^\s*(\d+\s[A-Z][^\n,]*(?:St(?:reet)?|Ave(?:nue)?|Blvd|Suite|Floor)[^\n]*)$`)},
		FieldSellerEmail:   {rx(`(?i)([A-Za-z0-9._%+-]+@anthropic\.com)`), rx(`(?i)` + emailTok)},
		FieldSellerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSellerAccount: {rx(`(?i)IBAN:?\s*` + ibanTok)},
		FieldBuyerName: {
			rx(`(?i)Bill to:?\s*\n\s*([^\n]+)`),
			rx(`(?i)Bill to:?\s*([^\n]+)`),
		},
		FieldBuyerTaxID: {
			rx(`(?i)(?:PL )?VAT:?\s*((?:PL)?\d{10})`),
			rx(`(?i)NIP:?\s*` + nipTok),
		},
		FieldBuyerAddress: {rx(`(?i)Bill to:?\s*\n[^\n]+\n([^\n]+(?:\n[^\n]*\d{2}-\d{3}[^\n]*)?)`)},
		FieldBuyerEmail:   {rx(`(?i)Bill to:?(?:[^\n]*\n){1,4}\s*` + emailTok)},
		FieldBuyerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSubtotal:     {rx(`(?i)Subtotal:?\s*` + moneyPre + amountTok)},
		FieldTax: {
			rx(`(?im)^[ \t]*(?:Sales )?tax(?:\s*\(?\d{1,2}(?:[.,]\d+)?%\)?(?: on [^\n:]+)?)?:?\s*` + moneyPre + amountTok),
			rx(`(?i)VAT(?:\s*\(?\d{1,2}%\)?)?:?\s*` + moneyPre + amountTok),
		},
		FieldTotal: {
			rx(`(?i)Amount due:?\s*` + moneyPre + amountTok),
			rx(`(?i)Amount paid:?\s*` + moneyPre + amountTok),
			rx(`(?i)\bTotal\b:?\s*` + moneyPre + amountTok),
		},
		FieldPaymentMethod: {
			rx(`(?i)(Visa|Mastercard|American Express)\s*[-–—•]{0,4}\s*\d{4}`),
			rx(`(?i)Payment method:?\s*([A-Za-z][A-Za-z ]{2,30})`),
		},
	},

	// OpenAI: Stripe-generated English invoice, USD; buyer block carries an
	// EU VAT line for Polish customers.
	constants.FormatOpenAI: {
		FieldInvoiceNumber: {
			rx(`(?i)Invoice number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
			rx(`(?i)Receipt number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
		},
		FieldInvoiceDate: {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldIssueDate:   {rx(`(?i)Date of issue:?\s*` + dateTok)},
		FieldDueDate: {
			rx(`(?i)Date due:?\s*` + dateTok),
			rx(`(?i)Due date:?\s*` + dateTok),
		},
		FieldSellerName: {
			rx(`(OpenAI,?\s?(?:LLC|Ireland Ltd\.?))`),
			rx(`(?m)^\s*(OpenAI[^\n]*)$`),
		},
		FieldSellerTaxID:   {rx(`(?i)(?:EU OSS VAT|VAT(?: ID)?|Tax ID):?\s*((?:EU|IE|PL)?\s?[A-Z0-9]{8,12})`)},
		FieldSellerAddress: {rx(`(?m)^\s*(\d+\s[A-Z][^\n,]*(?:St(?:reet)?|Ave(?:nue)?|Blvd|Suite|Floor)[^\n]*)$`)},
		FieldSellerEmail:   {rx(`(?i)([A-Za-z0-9._%+-]+@openai\.com)`), rx(`(?i)` + emailTok)},
		FieldSellerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSellerAccount: {rx(`(?i)IBAN:?\s*` + ibanTok)},
		FieldBuyerName: {
			rx(`(?i)Bill to:?\s*\n\s*([^\n]+)`),
			rx(`(?i)Bill to:?\s*([^\n]+)`),
		},
		FieldBuyerTaxID: {
			rx(`(?i)(?:PL )?VAT:?\s*((?:PL)?\d{10})`),
			rx(`(?i)NIP:?\s*` + nipTok),
		},
		FieldBuyerAddress: {rx(`(?i)Bill to:?\s*\n[^\n]+\n([^\n]+(?:\n[^\n]*\d{2}-\d{3}[^\n]*)?)`)},
		FieldBuyerEmail:   {rx(`(?i)Bill to:?(?:[^\n]*\n){1,4}\s*` + emailTok)},
		FieldBuyerPhone:   {rx(`(?i)(?:Phone|Tel\.?):?\s*` + phoneTok)},
		FieldSubtotal: {
			rx(`(?i)Total excluding tax:?\s*` + moneyPre + amountTok),
			rx(`(?i)Subtotal:?\s*` + moneyPre + amountTok),
		},
		FieldTax: {
			rx(`(?i)VAT(?:\s*\(?\d{1,2}%\)?)?:?\s*` + moneyPre + amountTok),
			rx(`(?im)^[ \t]*(?:Sales )?tax(?:\s*\(?\d{1,2}(?:[.,]\d+)?%\)?)?:?\s*` + moneyPre + amountTok),
		},
		FieldTotal: {
			rx(`(?i)Amount due:?\s*` + moneyPre + amountTok),
			rx(`(?i)Amount paid:?\s*` + moneyPre + amountTok),
			rx(`(?i)\bTotal\b:?\s*` + moneyPre + amountTok),
		},
		FieldPaymentMethod: {
			rx(`(?i)(Visa|Mastercard|American Express)\s*[-–—•]{0,4}\s*\d{4}`),
			rx(`(?i)Payment method:?\s*([A-Za-z][A-Za-z ]{2,30})`),
		},
	},

	// Google: Polish-language Cloud/Workspace invoice, PLN, full VAT
	// breakdown with percentage line items.
	constants.FormatGoogle: {
		FieldInvoiceNumber: {
			rx(`(?i)Numer faktury:?\s*([A-Z0-9][A-Z0-9/-]{3,})`),
			rx(`(?i)Faktura nr:?\s*([A-Z0-9][A-Z0-9/-]{3,})`),
			rx(`(?i)Invoice number:?\s*([A-Z0-9][A-Z0-9-]{3,})`),
		},
		FieldInvoiceDate: {
			rx(`(?i)Data faktury:?\s*` + dateTok),
			rx(`(?i)Data sprzedaży:?\s*` + dateTok),
		},
		FieldIssueDate: {
			rx(`(?i)Data wystawienia:?\s*` + dateTok),
			rx(`(?i)Wystawiono(?: dnia)?:?\s*` + dateTok),
		},
		FieldDueDate: {
			rx(`(?i)Termin płatności:?\s*` + dateTok),
			rx(`(?i)Płatne do:?\s*` + dateTok),
		},
		FieldSellerName: {
			rx(`(Google Cloud Poland sp\.? z o\.?o\.?)`),
			rx(`(Google (?:Poland|Ireland)[^\n]*)`),
		},
		FieldSellerTaxID: {
			rx(`(?i)NIP(?: sprzedawcy)?:?\s*` + nipTok),
			rx(`(?i)VAT(?: ID)?:?\s*((?:PL|IE)\s?[A-Z0-9]{8,12})`),
		},
		FieldSellerAddress: {rx(`(?m)^\s*(ul\.\s[^\n]+|[A-ZŻŹ][^\n]*\d{2}-\d{3}\s[^\n]+)$`)},
		FieldSellerEmail:   {rx(`(?i)([A-Za-z0-9._%+-]+@google\.com)`), rx(`(?i)` + emailTok)},
		FieldSellerPhone:   {rx(`(?i)(?:Tel\.?|Telefon):?\s*` + phoneTok)},
		FieldSellerAccount: {
			rx(`(?i)(?:Nr|Numer) (?:konta|rachunku)(?: bankowego)?:?\s*` + ibanTok),
			rx(`(?i)IBAN:?\s*` + ibanTok),
		},
		FieldBuyerName: {
			rx(`(?i)Nabywca:?\s*\n?\s*([^\n]+)`),
			rx(`(?i)Dane klienta:?\s*\n?\s*([^\n]+)`),
		},
		FieldBuyerTaxID: {
			rx(`(?i)NIP nabywcy:?\s*` + nipTok),
			rx(`(?i)Numer identyfikacji podatkowej:?\s*` + nipTok),
			rx(`(?i)NIP:?\s*` + nipTok),
		},
		FieldBuyerAddress: {rx(`(?i)Nabywca:?\s*\n[^\n]+\n([^\n]+(?:\n[^\n]*\d{2}-\d{3}[^\n]*)?)`)},
		FieldBuyerEmail:   {rx(`(?i)E-?mail:?\s*` + emailTok)},
		FieldBuyerPhone:   {rx(`(?i)(?:Tel\.?|Telefon):?\s*` + phoneTok)},
		FieldSubtotal: {
			rx(`(?i)(?:Suma|Razem|Kwota|Wartość) netto:?\s*` + moneyPre + amountTok),
			rx(`(?i)Subtotal in PLN:?\s*` + amountTok),
		},
		FieldTax: {
			rx(`(?i)(?:Podatek )?VAT(?:\s*\(?\d{1,2}%\)?)?:?\s*` + moneyPre + amountDecTok),
			rx(`(?i)Kwota podatku:?\s*` + amountTok),
		},
		FieldTotal: {
			rx(`(?i)Do zapłaty:?\s*` + moneyPre + amountTok),
			rx(`(?i)(?:Razem|Łącznie)(?: z VAT| brutto)?:?\s*` + moneyPre + amountTok),
			rx(`(?i)Total in PLN:?\s*` + amountTok),
		},
		FieldPaymentMethod: {
			rx(`(?i)(?:Sposób|Forma) płatności:?\s*([\p{L}][\p{L} ]{2,30})`),
			rx(`(?i)Payment method:?\s*([A-Za-z][A-Za-z ]{2,30})`),
		},
	},

	// Generic: loosest mixed Polish/English rules; also the landing spot for
	// unknown vendor tags.
	constants.FormatGeneric: {
		FieldInvoiceNumber: {
			rx(`(?i)Faktura(?: VAT)? nr:?\s*([A-Z0-9][A-Z0-9/_-]{2,})`),
			rx(`(?i)(?:Numer|Nr) faktury:?\s*([A-Z0-9][A-Z0-9/_-]{2,})`),
			rx(`(?i)Invoice (?:number|no\.?|#):?\s*([A-Z0-9][A-Z0-9/_-]{2,})`),
			rx(`(?i)Rachunek nr:?\s*([A-Z0-9][A-Z0-9/_-]{2,})`),
		},
		FieldInvoiceDate: {
			rx(`(?i)Data sprzedaży:?\s*` + dateTok),
			rx(`(?i)Data faktury:?\s*` + dateTok),
			rx(`(?i)Invoice date:?\s*` + dateTok),
		},
		FieldIssueDate: {
			rx(`(?i)Data wystawienia:?\s*` + dateTok),
			rx(`(?i)Wystawiono(?: dnia)?:?\s*` + dateTok),
			rx(`(?i)(?:Date of issue|Issue date):?\s*` + dateTok),
		},
		FieldDueDate: {
			rx(`(?i)Termin płatności:?\s*` + dateTok),
			rx(`(?i)Płatne do:?\s*` + dateTok),
			rx(`(?i)(?:Due date|Date due|Payment due):?\s*` + dateTok),
		},
		FieldSellerName: {
			rx(`(?i)Sprzedawca:?\s*\n?\s*([^\n]+)`),
			rx(`(?i)Wystawca:?\s*\n?\s*([^\n]+)`),
			rx(`(?i)Seller:?\s*\n?\s*([^\n]+)`),
		},
		FieldSellerTaxID: {
			rx(`(?i)NIP(?: sprzedawcy)?:?\s*` + nipTok),
			rx(`(?i)(?:VAT|Tax) (?:ID|number):?\s*((?:PL)?\s?[A-Z0-9]{8,12})`),
		},
		FieldSellerAddress: {
			rx(`(?i)Sprzedawca:?\s*\n[^\n]+\n([^\n]*\d{2}-\d{3}[^\n]*|ul\.\s[^\n]+)`),
			rx(`(?m)^\s*(ul\.\s[^\n]+)$`),
		},
		FieldSellerEmail: {rx(`(?i)E-?mail:?\s*` + emailTok), rx(`(?i)` + emailTok)},
		FieldSellerPhone: {rx(`(?i)(?:Tel\.?|Telefon|Phone):?\s*` + phoneTok)},
		FieldSellerAccount: {
			rx(`(?i)(?:Nr|Numer) (?:konta|rachunku)(?: bankowego)?:?\s*` + ibanTok),
			rx(`(?i)IBAN:?\s*` + ibanTok),
			rx(`(?i)Konto:?\s*` + ibanTok),
		},
		FieldBuyerName: {
			rx(`(?i)Nabywca:?\s*\n?\s*([^\n]+)`),
			rx(`(?i)Kupujący:?\s*\n?\s*([^\n]+)`),
			rx(`(?i)(?:Buyer|Bill to):?\s*\n?\s*([^\n]+)`),
		},
		FieldBuyerTaxID: {
			rx(`(?i)NIP nabywcy:?\s*` + nipTok),
			rx(`(?i)Nabywca:?(?:.|\n)*?NIP:?\s*` + nipTok),
		},
		FieldBuyerAddress: {rx(`(?i)Nabywca:?\s*\n[^\n]+\n([^\n]*\d{2}-\d{3}[^\n]*|ul\.\s[^\n]+)`)},
		FieldBuyerEmail:   {rx(`(?i)E-?mail nabywcy:?\s*` + emailTok)},
		FieldBuyerPhone:   {rx(`(?i)(?:Tel\.?|Telefon|Phone) nabywcy:?\s*` + phoneTok)},
		FieldSubtotal: {
			rx(`(?i)(?:Suma|Razem|Wartość|Kwota) netto:?\s*` + moneyPre + amountTok),
			rx(`(?i)Netto:?\s*` + moneyPre + amountTok),
			rx(`(?i)(?:Subtotal|Net (?:amount|total)):?\s*` + moneyPre + amountTok),
		},
		FieldTax: {
			rx(`(?i)(?:Kwota |Podatek )?VAT(?:\s*\(?\d{1,2}%\)?)?:?\s*` + moneyPre + amountDecTok),
			rx(`(?im)^[ \t]*(?:Sales )?tax:?\s*` + moneyPre + amountTok),
		},
		FieldTotal: {
			rx(`(?i)Do zapłaty:?\s*` + moneyPre + amountTok),
			rx(`(?i)(?:Suma|Razem|Wartość) brutto:?\s*` + moneyPre + amountTok),
			rx(`(?i)(?:Razem|Łącznie):?\s*` + moneyPre + amountTok),
			rx(`(?i)(?:Amount due|Total(?: due)?):?\s*` + moneyPre + amountTok),
		},
		FieldPaymentMethod: {
			rx(`(?i)(?:Sposób|Forma|Metoda) płatności:?\s*([\p{L}][\p{L} ]{2,30})`),
			rx(`(?i)Payment method:?\s*([A-Za-z][A-Za-z ]{2,30})`),
			rx(`(?i)Płatność:?\s*([\p{L}][\p{L} ]{2,30})`),
		},
	},
}

// rulesFor returns the pattern set for a vendor tag. Unknown tags (and the
// delimited-feed tag, which never reaches the text extractors) resolve to
// the generic rules.
func rulesFor(format constants.SourceFormat) map[Field][]*regexp.Regexp {
	if rules, ok := patternTable[format]; ok {
		return rules
	}
	return patternTable[constants.FormatGeneric]
}
