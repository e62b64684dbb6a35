// Package lang holds the string tables used when rendering invoice and
// receipt documents. The core computes numbers, not localized strings;
// only document rendering consumes these tables.
package lang

// Table holds every document string for one language.
type Table struct {
	Invoice             string
	Issued              string
	From                string
	BillTo              string
	Description         string
	Qty                 string
	UnitPrice           string
	Amount              string
	NoItems             string
	Subtotal            string
	Discount            string
	Tax                 string
	Total               string
	Notes               string
	AuthorizedSignature string
	NoClientSelected    string

	Receipt        string
	PaymentReceipt string
	ReceivedFrom   string
	PaidDate       string
	PaymentFor     string
	AmountPaid     string
	ThankYou       string
	PaidInFull     string
	ReceiptNumber  string

	PaymentConditions string
	PaymentDueReceipt string
	PaymentDue10Days  string
	PaymentDue15Days  string
	PaymentDue30Days  string
}

var tables = map[string]Table{
	"en": {
		Invoice:             "INVOICE",
		Issued:              "Issued",
		From:                "FROM",
		BillTo:              "BILL TO",
		Description:         "Description",
		Qty:                 "Qty",
		UnitPrice:           "Unit Price",
		Amount:              "Amount",
		NoItems:             "No items added",
		Subtotal:            "Subtotal",
		Discount:            "Discount",
		Tax:                 "Tax",
		Total:               "Total",
		Notes:               "Notes",
		AuthorizedSignature: "Authorized Signature",
		NoClientSelected:    "No client selected",

		Receipt:        "RECEIPT",
		PaymentReceipt: "Payment Receipt",
		ReceivedFrom:   "RECEIVED FROM",
		PaidDate:       "Paid",
		PaymentFor:     "Payment For",
		AmountPaid:     "Amount Paid",
		ThankYou:       "Thank you for your payment!",
		PaidInFull:     "PAID IN FULL",
		ReceiptNumber:  "Receipt #",

		PaymentConditions: "Payment Terms & Conditions",
		PaymentDueReceipt: "Payment is due on receipt",
		PaymentDue10Days:  "Payment is due in 10 days",
		PaymentDue15Days:  "Payment is due in 15 days",
		PaymentDue30Days:  "Payment is due in 30 days",
	},
	"fr": {
		Invoice:             "FACTURE",
		Issued:              "Émise le",
		From:                "DE",
		BillTo:              "FACTURER À",
		Description:         "Description",
		Qty:                 "Qté",
		UnitPrice:           "Prix Unitaire",
		Amount:              "Montant",
		NoItems:             "Aucun article ajouté",
		Subtotal:            "Sous-total",
		Discount:            "Remise",
		Tax:                 "Taxe",
		Total:               "Total",
		Notes:               "Notes",
		AuthorizedSignature: "Signature Autorisée",
		NoClientSelected:    "Aucun client sélectionné",

		Receipt:        "REÇU",
		PaymentReceipt: "Reçu de Paiement",
		ReceivedFrom:   "REÇU DE",
		PaidDate:       "Payé le",
		PaymentFor:     "Paiement Pour",
		AmountPaid:     "Montant Payé",
		ThankYou:       "Merci pour votre paiement!",
		PaidInFull:     "PAYÉ EN TOTALITÉ",
		ReceiptNumber:  "Reçu #",

		PaymentConditions: "Conditions et modalités de paiement",
		PaymentDueReceipt: "Le paiement est dû à réception",
		PaymentDue10Days:  "Le paiement est dû dans 10 jours",
		PaymentDue15Days:  "Le paiement est dû dans 15 jours",
		PaymentDue30Days:  "Le paiement est dû dans 30 jours",
	},
}

// For returns the table for a two-letter language code, falling back to
// English for unknown codes.
func For(code string) Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables["en"]
}

// Supported returns the supported language codes.
func Supported() []string { return []string{"en", "fr"} }
