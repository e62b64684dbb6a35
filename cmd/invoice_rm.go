package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type invoiceRemoveCmd struct{}

func (*invoiceRemoveCmd) Name() string     { return "invoice-rm" }
func (*invoiceRemoveCmd) Synopsis() string { return "delete invoices" }
func (*invoiceRemoveCmd) Usage() string {
	return `inv invoice-rm <id>...

  Deletes invoices by id. The invoice counter is not rewound, so a
  deleted number is never reissued.
`
}
func (*invoiceRemoveCmd) SetFlags(*flag.FlagSet) {}

func (p *invoiceRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one invoice id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if err := s.DeleteInvoice(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted invoice %s\n", id)
	}
	return subcommands.ExitSuccess
}
