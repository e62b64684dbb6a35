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

type invoiceEditCmd struct {
	id       string
	client   string
	currency string
	tax      string
	due      string
	note     string
	items    itemsFlag
	saved    stringsFlag
}

func (*invoiceEditCmd) Name() string     { return "invoice-edit" }
func (*invoiceEditCmd) Synopsis() string { return "edit an existing invoice" }
func (*invoiceEditCmd) Usage() string {
	return `inv invoice-edit -id <id> [flags as invoice-new]

  Only the flags actually passed are changed. The invoice number and
  creation date are kept. Passing -item or -saved replaces the whole
  item list, not just one line.
`
}

func (p *invoiceEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Invoice id to edit.")
	f.StringVar(&p.client, "client", "", "Client id to bill (may be empty).")
	f.StringVar(&p.currency, "currency", "", "Currency code for the invoice.")
	f.StringVar(&p.tax, "tax", "", "Flat tax rate in percent, applied to taxable lines.")
	f.StringVar(&p.due, "due", "", "Payment term: none, receipt, 10, 15 or 30.")
	f.StringVar(&p.note, "note", "", "Free-form note shown on the document.")
	f.Var(&p.items, "item", "Line item, repeatable: name:qty:price[:discount[:taxable]].")
	f.Var(&p.saved, "saved", "Saved item reference, repeatable: id[:qty].")
}

func (p *invoiceEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv := s.Invoice(p.id)
	if inv == nil {
		fmt.Fprintf(os.Stderr, "Error: no invoice with id %q.\n", p.id)
		return subcommands.ExitFailure
	}

	// read-modify-write: apply only the flags that were passed.
	var bad bool
	var replaceItems bool
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "client":
			inv.ClientID = p.client
		case "currency":
			if !invoicer.ValidCurrency(p.currency) {
				fmt.Fprintf(os.Stderr, "Error: unsupported currency %q.\n", p.currency)
				bad = true
				return
			}
			inv.Currency = p.currency
		case "tax":
			rate, err := decimal.NewFromString(p.tax)
			if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
				fmt.Fprintln(os.Stderr, "Error: tax rate must be a percentage in [0,100].")
				bad = true
				return
			}
			inv.TaxRate = rate
		case "due":
			due, err := invoicer.ParseDueDate(p.due)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				bad = true
				return
			}
			inv.DueDate = due
		case "note":
			inv.Note = p.note
		case "item", "saved":
			replaceItems = true
		}
	})
	if bad {
		return subcommands.ExitUsageError
	}
	if replaceItems {
		items := p.items.items
		for _, spec := range p.saved {
			it, err := resolveSavedSpec(s, spec)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			items = append(items, it)
		}
		inv.Items = items
	}

	if err := s.SaveInvoice(*inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated invoice %s\n", inv.InvoiceNumber)
	printTotals(*inv)
	return subcommands.ExitSuccess
}
