package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type invoicePayCmd struct{}

func (*invoicePayCmd) Name() string     { return "invoice-pay" }
func (*invoicePayCmd) Synopsis() string { return "toggle an invoice between paid and unpaid" }
func (*invoicePayCmd) Usage() string {
	return `inv invoice-pay <id>...

  Flips the paid status of each invoice. A paid invoice renders as a
  receipt; toggling it again turns it back into an invoice.
`
}
func (*invoicePayCmd) SetFlags(*flag.FlagSet) {}

func (p *invoicePayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one invoice id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		inv, err := s.ToggleInvoicePaid(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if inv == nil {
			fmt.Fprintf(os.Stderr, "Warning: no invoice with id %q.\n", id)
			status = subcommands.ExitFailure
			continue
		}
		state := "unpaid"
		if inv.IsPaid {
			state = "paid"
		}
		fmt.Printf("Invoice %s is now %s.\n", inv.InvoiceNumber, state)
	}
	return status
}
