package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type companySetCmd struct {
	name    string
	email   string
	phone   string
	address string
	bank    string
	iban    string
	swift   string
}

func (*companySetCmd) Name() string     { return "company-set" }
func (*companySetCmd) Synopsis() string { return "update the business profile" }
func (*companySetCmd) Usage() string {
	return `inv company-set [-name <name>] [-email <email>] [-phone <phone>] [-address <address>] [-bank <bank>] [-iban <iban>] [-swift <swift>]

  Updates the business profile shown in the FROM block of every
  document. Only the flags you pass change; the profile is then saved
  back as a whole.
`
}

func (p *companySetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Business name.")
	f.StringVar(&p.email, "email", "", "Contact email.")
	f.StringVar(&p.phone, "phone", "", "Contact phone.")
	f.StringVar(&p.address, "address", "", "Postal address.")
	f.StringVar(&p.bank, "bank", "", "Bank name.")
	f.StringVar(&p.iban, "iban", "", "IBAN.")
	f.StringVar(&p.swift, "swift", "", "SWIFT/BIC code.")
}

func (p *companySetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// read-modify-write: the store never merges, so we do.
	info := s.CompanyInfo()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			info.Name = p.name
		case "email":
			info.Email = p.email
		case "phone":
			info.Phone = p.phone
		case "address":
			info.Address = p.address
		case "bank":
			info.BankName = p.bank
		case "iban":
			info.IBAN = p.iban
		case "swift":
			info.SWIFT = p.swift
		}
	})

	if err := s.SaveCompanyInfo(info); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Business profile saved.")
	return subcommands.ExitSuccess
}

type companyShowCmd struct{}

func (*companyShowCmd) Name() string     { return "company-show" }
func (*companyShowCmd) Synopsis() string { return "display the business profile" }
func (*companyShowCmd) Usage() string {
	return `inv company-show

  Displays the business profile.
`
}

func (*companyShowCmd) SetFlags(*flag.FlagSet) {}

func (*companyShowCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	info := s.CompanyInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orDash(info.Name))
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Email | %s |\n", orDash(info.Email))
	fmt.Fprintf(&b, "| Phone | %s |\n", orDash(info.Phone))
	fmt.Fprintf(&b, "| Address | %s |\n", orDash(info.Address))
	if info.BankName != "" || info.IBAN != "" || info.SWIFT != "" {
		fmt.Fprintf(&b, "| Bank | %s |\n", orDash(info.BankName))
		fmt.Fprintf(&b, "| IBAN | %s |\n", orDash(info.IBAN))
		fmt.Fprintf(&b, "| SWIFT | %s |\n", orDash(info.SWIFT))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// orDash keeps table cells visibly filled.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
