// Package renderer turns stored invoice records into documents: markdown
// for the terminal, and HTML or PDF for export. It never touches
// storage; callers resolve the client and company profile first and
// hand over plain records.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/youssefsz/invoicer"
	"github.com/youssefsz/invoicer/lang"
)

//go:embed templates
var templates embed.FS

// Line is one rendered invoice line with preformatted amounts.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice string
	Discount  string // "10%", empty when none
	Amount    string
}

// Party is a displayable company or client block.
type Party struct {
	Name  string
	Lines []string
}

// Document is the fully resolved view of one invoice, ready for any
// output format. All amounts are already formatted with the invoice's
// currency symbol.
type Document struct {
	L lang.Table

	Receipt bool // render as a payment receipt instead of an invoice
	Number  string
	Issued  string
	PaidOn  string
	Paid    bool

	From     Party
	BillTo   Party
	NoClient bool

	Lines    []Line
	HasItems bool

	Subtotal    string
	Discount    string
	HasDiscount bool
	TaxRate     string
	Tax         string
	Total       string

	Note             string
	PaymentCondition string
}

// NewDocument resolves an invoice into a Document. client may be nil:
// a dangling clientId renders as "no client", never as an error. A paid
// invoice is rendered as a receipt.
func NewDocument(inv invoicer.Invoice, client *invoicer.Client, company invoicer.CompanyInfo, langCode string) *Document {
	labels := lang.For(langCode)
	symbol := invoicer.CurrencySymbol(inv.Currency)
	totals := invoicer.ComputeTotals(inv)

	d := &Document{
		L:        labels,
		Receipt:  inv.IsPaid,
		Number:   inv.InvoiceNumber,
		Issued:   displayDate(inv.CreatedAt),
		PaidOn:   displayDate(inv.UpdatedAt),
		Paid:     inv.IsPaid,
		From:     companyParty(company),
		NoClient: client == nil,

		Subtotal:    invoicer.FormatAmount(totals.Subtotal, symbol),
		Discount:    invoicer.FormatAmount(totals.Discount, symbol),
		HasDiscount: !totals.Discount.IsZero(),
		TaxRate:     inv.TaxRate.String(),
		Tax:         invoicer.FormatAmount(totals.Tax, symbol),
		Total:       invoicer.FormatAmount(totals.Total, symbol),

		Note:             inv.Note,
		PaymentCondition: paymentCondition(inv, labels),
	}
	if client != nil {
		d.BillTo = clientParty(*client)
	}
	for _, it := range inv.Items {
		line := Line{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: invoicer.FormatAmount(it.PricePerUnit, symbol),
			Amount:    invoicer.FormatAmount(invoicer.ItemTotal(it), symbol),
		}
		if !it.Discount.IsZero() {
			line.Discount = it.Discount.String() + "%"
		}
		d.Lines = append(d.Lines, line)
	}
	d.HasItems = len(d.Lines) > 0
	return d
}

// Markdown renders the document, as a receipt when the invoice is paid
// and as an invoice otherwise.
func Markdown(d *Document) string {
	if d.Receipt {
		return ReceiptMarkdown(d)
	}
	return InvoiceMarkdown(d)
}

// InvoiceMarkdown renders the invoice document to a markdown string.
func InvoiceMarkdown(d *Document) string {
	partials := map[string]string{
		"invoice_parties": "invoice_parties.md",
		"invoice_items":   "invoice_items.md",
		"invoice_totals":  "invoice_totals.md",
	}
	return renderTemplate("invoice", "invoice.md", partials, d)
}

// ReceiptMarkdown renders the payment-receipt document to a markdown
// string. It reuses the invoice items table.
func ReceiptMarkdown(d *Document) string {
	partials := map[string]string{
		"invoice_items": "invoice_items.md",
	}
	return renderTemplate("receipt", "receipt.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// displayDate shortens an RFC3339 stamp to its date part; anything that
// does not parse passes through untouched.
func displayDate(stamp string) string {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return stamp
	}
	return t.Format("2006-01-02")
}

func companyParty(c invoicer.CompanyInfo) Party {
	p := Party{Name: c.Name}
	for _, l := range []string{c.Email, c.Phone, c.Address} {
		if l != "" {
			p.Lines = append(p.Lines, l)
		}
	}
	if c.BankName != "" {
		p.Lines = append(p.Lines, c.BankName)
	}
	if c.IBAN != "" {
		p.Lines = append(p.Lines, "IBAN: "+c.IBAN)
	}
	if c.SWIFT != "" {
		p.Lines = append(p.Lines, "SWIFT: "+c.SWIFT)
	}
	return p
}

func clientParty(c invoicer.Client) Party {
	p := Party{Name: c.Name}
	for _, l := range []string{c.Email, c.Phone, c.Address} {
		if l != "" {
			p.Lines = append(p.Lines, l)
		}
	}
	return p
}

func paymentCondition(inv invoicer.Invoice, labels lang.Table) string {
	if inv.IsPaid {
		return ""
	}
	switch inv.DueDate {
	case invoicer.DueOnReceipt:
		return labels.PaymentDueReceipt
	case invoicer.DueIn10Days:
		return labels.PaymentDue10Days
	case invoicer.DueIn15Days:
		return labels.PaymentDue15Days
	case invoicer.DueIn30Days:
		return labels.PaymentDue30Days
	default:
		return ""
	}
}
