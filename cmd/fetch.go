package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	chart bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch live quotes and print them in market-file format" }
func (*fetchCmd) Usage() string {
	return `rbl fetch [-chart] TICKER=ISIN ...

  Fetches the latest Tradegate quote for each ISIN and prints the result in
  the market summary format, so the output can be redirected to a file and
  passed to 'rebalance -m'.

  With -chart, the arguments are TICKER=INSTRUMENT_ID pairs resolved
  against the ls-tc intraday chart instead, for instruments Tradegate does
  not list.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.chart, "chart", false, "resolve ids against the ls-tc intraday chart instead of Tradegate")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one TICKER=ISIN pair.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		ticker, id, err := splitPair(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}

		var price rebalance.Money
		if c.chart {
			price, err = rebalance.QuoteIntraday(ticker, id)
		} else {
			price, err = rebalance.QuoteLatest(ticker, id)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			status = subcommands.ExitFailure
			continue
		}

		fmt.Printf("%s (%s)\n€%s\n", ticker, ticker, price.Amount())
	}
	return status
}

// splitPair splits a TICKER=ID argument.
func splitPair(arg string) (ticker, id string, err error) {
	ticker, id, ok := strings.Cut(arg, "=")
	if !ok || ticker == "" || id == "" {
		return "", "", fmt.Errorf("argument %q is not a TICKER=ISIN pair", arg)
	}
	return ticker, id, nil
}
