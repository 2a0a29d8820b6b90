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

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	portfolio string
	market    string
	save      bool
	report    bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "compute the trades that equalize value across tickers" }
func (*rebalanceCmd) Usage() string {
	return `rbl rebalance -m <market.txt> [-p <portfolio.txt>] [-save] [-report]

  Computes the buy/sell trades that spread the portfolio's total value
  evenly across every ticker in the market file, and prints them as
  !sell/!buy commands, sells first.

  The portfolio comes from the -p text file when given, otherwise from the
  persisted snapshot (see -store-file). With -save, the trades are applied
  and the resulting snapshot is persisted.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Path to the portfolio text file (cash + stocks owned). Defaults to the persisted snapshot.")
	f.StringVar(&c.market, "m", "", "Path to the market summary text file (ticker prices). Required.")
	f.BoolVar(&c.save, "save", false, "apply the trades and persist the resulting snapshot")
	f.BoolVar(&c.report, "report", false, "render the full plan as a report instead of bare trade commands")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.report {
		printMarkdown(renderer.PlanMarkdown(plan))
	} else if len(plan.Trades) == 0 {
		fmt.Println("# Portfolio is already balanced (or no trades needed).")
	} else {
		for _, tr := range plan.Trades {
			fmt.Println(tr)
		}
	}

	if !c.save {
		return subcommands.ExitSuccess
	}

	next, err := rebalance.Apply(portfolio, prices, plan.Trades)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error applying trades:", err)
		return subcommands.ExitFailure
	}
	if err := openStore().Save(next); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Saved portfolio snapshot to %s\n", openStore().Path())
	return subcommands.ExitSuccess
}
