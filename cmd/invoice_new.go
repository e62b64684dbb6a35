package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/youssefsz/invoicer"
)

type invoiceNewCmd struct {
	client   string
	currency string
	tax      string
	due      string
	note     string
	items    itemsFlag
	saved    stringsFlag
}

func (*invoiceNewCmd) Name() string     { return "invoice-new" }
func (*invoiceNewCmd) Synopsis() string { return "create an invoice" }
func (*invoiceNewCmd) Usage() string {
	return `inv invoice-new [-client <id>] [-currency <code>] [-tax <rate>] [-due <none|receipt|10|15|30>] [-note <text>] [-item <name:qty:price[:discount[:taxable]]>]... [-saved <id[:qty]>]...

  Creates an invoice, consuming the next invoice number. The number is
  assigned once and never changes, even if the invoice is later edited.

Usage Examples:
# A two-line invoice with 20% tax, one line discounted 10%.
$ inv invoice-new -client 01J... -currency EUR -tax 20 -due 30 \
    -item "Design work:2:50:10" -item "Stock photo:1:20:0:f"
`
}

func (p *invoiceNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.client, "client", "", "Client id to bill (may be empty).")
	f.StringVar(&p.currency, "currency", "USD", "Currency code for the invoice.")
	f.StringVar(&p.tax, "tax", "0", "Flat tax rate in percent, applied to taxable lines.")
	f.StringVar(&p.due, "due", "none", "Payment term: none, receipt, 10, 15 or 30.")
	f.StringVar(&p.note, "note", "", "Free-form note shown on the document.")
	f.Var(&p.items, "item", "Line item, repeatable: name:qty:price[:discount[:taxable]].")
	f.Var(&p.saved, "saved", "Saved item reference, repeatable: id[:qty].")
}

func (p *invoiceNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !invoicer.ValidCurrency(p.currency) {
		fmt.Fprintf(os.Stderr, "Error: unsupported currency %q.\n", p.currency)
		return subcommands.ExitUsageError
	}
	taxRate, err := decimal.NewFromString(p.tax)
	if err != nil || taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		fmt.Fprintf(os.Stderr, "Error: tax rate must be a percentage in [0,100].\n")
		return subcommands.ExitUsageError
	}
	due, err := invoicer.ParseDueDate(p.due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.client != "" && s.Client(p.client) == nil {
		// allowed (the reference is soft) but worth a warning.
		fmt.Fprintf(os.Stderr, "Warning: no client with id %q; the invoice will render with no client.\n", p.client)
	}

	items := p.items.items
	for _, spec := range p.saved {
		it, err := resolveSavedSpec(s, spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		items = append(items, it)
	}

	number, err := s.NextInvoiceNumber()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv := invoicer.Invoice{
		ID:            invoicer.NewID(),
		InvoiceNumber: number,
		ClientID:      p.client,
		Currency:      p.currency,
		Note:          p.note,
		Items:         items,
		TaxRate:       taxRate,
		DueDate:       due,
		CreatedAt:     s.Timestamp(),
	}
	if err := s.SaveInvoice(inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created invoice %s (id %s)\n", inv.InvoiceNumber, inv.ID)
	printTotals(inv)
	return subcommands.ExitSuccess
}

// printTotals prints the derived figures of an invoice.
func printTotals(inv invoicer.Invoice) {
	symbol := invoicer.CurrencySymbol(inv.Currency)
	totals := invoicer.ComputeTotals(inv)
	fmt.Printf("  Subtotal: %s\n", invoicer.FormatAmount(totals.Subtotal, symbol))
	if !totals.Discount.IsZero() {
		fmt.Printf("  Discount: %s\n", invoicer.FormatAmount(totals.Discount, symbol))
	}
	fmt.Printf("  Tax (%s%%): %s\n", inv.TaxRate, invoicer.FormatAmount(totals.Tax, symbol))
	fmt.Printf("  Total: %s\n", invoicer.FormatAmount(totals.Total, symbol))
}
