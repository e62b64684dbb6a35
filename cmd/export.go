package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/youssefsz/invoicer/renderer"
)

type exportCmd struct {
	format string
	lang   string
	out    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export an invoice document to a file" }
func (*exportCmd) Usage() string {
	return `inv export [-format md|html|pdf] [-lang <en|fr>] [-o <file>] <id-or-number>

  Writes the document for an invoice to a file. Without -o the file is
  named after the invoice number, e.g. INV-0042.pdf.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "pdf", "Output format: md, html or pdf.")
	f.StringVar(&p.lang, "lang", "en", "Document language.")
	f.StringVar(&p.out, "o", "", "Output file (defaults to <number>.<format>).")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	doc := buildDocument(s, *inv, p.lang)

	var content []byte
	switch strings.ToLower(p.format) {
	case "md", "markdown":
		content = []byte(renderer.Markdown(doc))
	case "html":
		html, err := renderer.HTML(doc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		content = []byte(html)
	case "pdf":
		content, err = renderer.PDF(doc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want md, html or pdf).\n", p.format)
		return subcommands.ExitUsageError
	}

	out := p.out
	if out == "" {
		out = inv.InvoiceNumber + "." + strings.ToLower(p.format)
	}
	if err := os.WriteFile(out, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %q: %v.\n", out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", out)
	return subcommands.ExitSuccess
}
