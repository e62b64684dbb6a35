// Package cmd implements the CLI application to manage a business
// profile, clients, saved items and invoices.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/youssefsz/invoicer"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&companySetCmd{}, "profile")
	c.Register(&companyShowCmd{}, "profile")

	c.Register(&clientAddCmd{}, "clients")
	c.Register(&clientListCmd{}, "clients")
	c.Register(&clientRemoveCmd{}, "clients")

	c.Register(&itemAddCmd{}, "saved items")
	c.Register(&itemListCmd{}, "saved items")
	c.Register(&itemRemoveCmd{}, "saved items")

	c.Register(&invoiceNewCmd{}, "invoices")
	c.Register(&invoiceEditCmd{}, "invoices")
	c.Register(&invoiceListCmd{}, "invoices")
	c.Register(&invoicePayCmd{}, "invoices")
	c.Register(&invoiceRemoveCmd{}, "invoices")

	c.Register(&showCmd{}, "documents")
	c.Register(&exportCmd{}, "documents")

	c.Register(&queryCmd{}, "storage")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it is short lived, so global flags are fine.

var dataDir = flag.String("dir", "", "Path to the data directory (default $INVOICER_DIR, then ~/.invoicer)")

// DataDir resolves the data directory: flag, then environment, then a
// dot directory in the user's home.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if env := os.Getenv("INVOICER_DIR"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".invoicer"
	}
	return filepath.Join(home, ".invoicer")
}

// OpenKV opens the persistence area backing the store.
func OpenKV() (invoicer.KV, error) {
	return invoicer.NewDirKV(DataDir())
}

// OpenStore opens the ledger store over the data directory.
func OpenStore() (*invoicer.Store, error) {
	kv, err := OpenKV()
	if err != nil {
		return nil, err
	}
	return invoicer.NewStore(kv), nil
}
