package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a jsonpath query over a stored collection" }
func (*queryCmd) Usage() string {
	return `inv query <collection> [<jsonpath>]

  Queries the raw stored JSON of a collection. Collections are
  "clients", "invoices", "saved-items", "company-info" and
  "invoice-counter". Without a path, the whole collection is printed.

Usage Examples:
# Names of every client.
$ inv query clients '$[*].name'
# Items of unpaid invoices.
$ inv query invoices '$[?(@.isPaid == false)].items'
`
}
func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: want a collection name and an optional jsonpath.")
		return subcommands.ExitUsageError
	}
	kv, err := OpenKV()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	b, ok := kv.Get(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no collection %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error: collection %q is not valid JSON: %v.\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if f.NArg() == 2 {
		jval, err := jsonpath.Get(f.Arg(1), jobj)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in path %q: %v.\n", f.Arg(1), err)
			return subcommands.ExitFailure
		}
		jobj = jval
	}

	out, err := json.MarshalIndent(jobj, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
