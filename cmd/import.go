package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "parse a portfolio text file and persist it" }
func (*importCmd) Usage() string {
	return `rbl import <portfolio.txt>

  Parses the portfolio text file (cash + stocks owned) and persists it as
  the snapshot, so later runs can omit -p.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one portfolio text file.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	portfolio, err := rebalance.ParsePortfolio(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in portfolio file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	store := openStore()
	if err := store.Save(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %s into %s\n", f.Arg(0), store.Path())
	return subcommands.ExitSuccess
}
