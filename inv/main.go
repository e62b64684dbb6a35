package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/youssefsz/invoicer/cmd"
)

func main() {
	// shell completion: a no-op unless invoked by the shell's
	// completion machinery.
	completion().Complete("inv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	format := predict.Set{"md", "html", "pdf"}
	lang := predict.Set{"en", "fr"}
	due := predict.Set{"none", "receipt", "10", "15", "30"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"company-set":  {},
			"company-show": {},
			"client-add":   {},
			"client-list":  {},
			"client-rm":    {},
			"item-add":     {},
			"item-list":    {},
			"item-rm":      {},
			"invoice-new": {Flags: map[string]complete.Predictor{
				"due": due,
			}},
			"invoice-edit": {Flags: map[string]complete.Predictor{
				"due": due,
			}},
			"invoice-list": {},
			"invoice-pay":  {},
			"invoice-rm":   {},
			"show": {Flags: map[string]complete.Predictor{
				"lang": lang,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"format": format,
				"lang":   lang,
				"o":      predict.Files("*"),
			}},
			"query": {},
			"topic": {},
		},
	}
}
