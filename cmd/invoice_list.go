package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/youssefsz/invoicer"
)

type invoiceListCmd struct {
	unpaid bool
}

func (*invoiceListCmd) Name() string     { return "invoice-list" }
func (*invoiceListCmd) Synopsis() string { return "list invoices" }
func (*invoiceListCmd) Usage() string {
	return `inv invoice-list [-unpaid]

  Lists invoices with their totals. Totals are always recomputed from
  the items, they are never stored.
`
}

func (p *invoiceListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.unpaid, "unpaid", false, "Only show unpaid invoices.")
}

func (p *invoiceListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	invoices := s.Invoices()

	var sb strings.Builder
	fmt.Fprintf(&sb, "| Number | Client | Total | Paid | Id |\n")
	fmt.Fprintf(&sb, "|--------|--------|------:|------|----|\n")
	for _, inv := range invoices {
		if p.unpaid && inv.IsPaid {
			continue
		}
		clientName := "-"
		if c := s.Client(inv.ClientID); c != nil {
			clientName = c.Name
		}
		total := invoicer.A(invoicer.InvoiceTotal(inv), inv.Currency)
		paid := " "
		if inv.IsPaid {
			paid = "x"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", inv.InvoiceNumber, clientName, total, paid, inv.ID)
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
