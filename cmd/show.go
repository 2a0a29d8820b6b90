package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	portfolio string
	market    string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the portfolio valued against a market file" }
func (*showCmd) Usage() string {
	return `rbl show -m <market.txt> [-p <portfolio.txt>]

  Displays the portfolio positions, their value at current prices, and the
  trades a rebalancing run would produce, without applying anything.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Path to the portfolio text file. Defaults to the persisted snapshot.")
	f.StringVar(&c.market, "m", "", "Path to the market summary text file. Required.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.market == "" {
		fmt.Fprintln(os.Stderr, "Error: the -m market file is required.")
		return subcommands.ExitUsageError
	}

	prices, err := loadMarket(c.market)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	portfolio, err := loadPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	plan, err := rebalance.BuildPlan(portfolio, prices)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PlanMarkdown(plan))
	return subcommands.ExitSuccess
}
