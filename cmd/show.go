package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/youssefsz/invoicer"
	"github.com/youssefsz/invoicer/renderer"
)

type showCmd struct {
	lang string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "render an invoice or receipt in the terminal" }
func (*showCmd) Usage() string {
	return `inv show [-lang <en|fr>] <id-or-number>

  Renders the document for an invoice. Paid invoices render as
  receipts. The argument is an invoice id or an invoice number
  like INV-0042.
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.lang, "lang", "en", "Document language.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one invoice id or number is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv, err := findInvoice(s, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Markdown(buildDocument(s, *inv, p.lang)))
	return subcommands.ExitSuccess
}

// findInvoice resolves an argument that is either an invoice id or an
// invoice number.
func findInvoice(s *invoicer.Store, arg string) (*invoicer.Invoice, error) {
	if inv := s.Invoice(arg); inv != nil {
		return inv, nil
	}
	invoices := s.Invoices()
	for i := range invoices {
		if invoices[i].InvoiceNumber == arg {
			return &invoices[i], nil
		}
	}
	return nil, fmt.Errorf("no invoice with id or number %q", arg)
}

// buildDocument assembles the renderer document for an invoice,
// resolving its client and the company profile.
func buildDocument(s *invoicer.Store, inv invoicer.Invoice, lang string) *renderer.Document {
	return renderer.NewDocument(inv, s.Client(inv.ClientID), s.CompanyInfo(), lang)
}
