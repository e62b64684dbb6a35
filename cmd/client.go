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

type clientAddCmd struct {
	name    string
	email   string
	phone   string
	address string
}

func (*clientAddCmd) Name() string     { return "client-add" }
func (*clientAddCmd) Synopsis() string { return "add a client" }
func (*clientAddCmd) Usage() string {
	return `inv client-add -name <name> [-email <email>] [-phone <phone>] [-address <address>]

  Adds a client and prints its id. The id is what invoices reference.
`
}

func (p *clientAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Client name (required).")
	f.StringVar(&p.email, "email", "", "Client email.")
	f.StringVar(&p.phone, "phone", "", "Client phone.")
	f.StringVar(&p.address, "address", "", "Client address.")
}

func (p *clientAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	c := invoicer.Client{
		ID:        invoicer.NewID(),
		Name:      p.name,
		Email:     p.email,
		Phone:     p.phone,
		Address:   p.address,
		CreatedAt: s.Timestamp(),
	}
	if err := s.SaveClient(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added client %q as %s\n", c.Name, c.ID)
	return subcommands.ExitSuccess
}

type clientListCmd struct{}

func (*clientListCmd) Name() string     { return "client-list" }
func (*clientListCmd) Synopsis() string { return "list all clients" }
func (*clientListCmd) Usage() string {
	return `inv client-list

  Lists clients in the order they were added.
`
}

func (*clientListCmd) SetFlags(*flag.FlagSet) {}

func (*clientListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	clients := s.Clients()
	if len(clients) == 0 {
		fmt.Println("No clients yet. Add one with `inv client-add`.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Id | Name | Email | Phone |\n|---|---|---|---|\n")
	for _, c := range clients {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ID, c.Name, orDash(c.Email), orDash(c.Phone))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type clientRemoveCmd struct{}

func (*clientRemoveCmd) Name() string     { return "client-rm" }
func (*clientRemoveCmd) Synopsis() string { return "remove clients by id" }
func (*clientRemoveCmd) Usage() string {
	return `inv client-rm <id> [<id>...]

  Removes clients. Invoices referencing a removed client are left
  untouched and render with no client.
`
}

func (*clientRemoveCmd) SetFlags(*flag.FlagSet) {}

func (*clientRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one client id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if err := s.DeleteClient(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Removed %d client(s).\n", f.NArg())
	return subcommands.ExitSuccess
}
