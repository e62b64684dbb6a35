package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/youssefsz/invoicer"
)

type itemAddCmd struct {
	name  string
	price string
}

func (*itemAddCmd) Name() string     { return "item-add" }
func (*itemAddCmd) Synopsis() string { return "save a reusable line item" }
func (*itemAddCmd) Usage() string {
	return `inv item-add -name <name> -price <default price>

  Saves a line-item template. Reference it when creating an invoice
  with -saved <id>[:quantity].
`
}

func (p *itemAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name (required).")
	f.StringVar(&p.price, "price", "", "Default price per unit (required).")
}

func (p *itemAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -price are required.")
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	it := invoicer.SavedItem{
		ID:           invoicer.NewID(),
		Name:         p.name,
		DefaultPrice: price,
		CreatedAt:    s.Timestamp(),
	}
	if err := s.SaveItem(it); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved item %q as %s\n", it.Name, it.ID)
	return subcommands.ExitSuccess
}

type itemListCmd struct{}

func (*itemListCmd) Name() string     { return "item-list" }
func (*itemListCmd) Synopsis() string { return "list saved line items" }
func (*itemListCmd) Usage() string {
	return `inv item-list

  Lists the saved line-item templates.
`
}

func (*itemListCmd) SetFlags(*flag.FlagSet) {}

func (*itemListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	items := s.SavedItems()
	if len(items) == 0 {
		fmt.Println("No saved items yet. Add one with `inv item-add`.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Id | Name | Default price |\n|---|---|---:|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", it.ID, it.Name, it.DefaultPrice.StringFixed(2))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type itemRemoveCmd struct{}

func (*itemRemoveCmd) Name() string     { return "item-rm" }
func (*itemRemoveCmd) Synopsis() string { return "remove saved items by id" }
func (*itemRemoveCmd) Usage() string {
	return `inv item-rm <id> [<id>...]

  Removes saved line-item templates. Invoices that used them keep
  their own embedded copy of each line.
`
}

func (*itemRemoveCmd) SetFlags(*flag.FlagSet) {}

func (*itemRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one item id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if err := s.DeleteSavedItem(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Removed %d saved item(s).\n", f.NArg())
	return subcommands.ExitSuccess
}
