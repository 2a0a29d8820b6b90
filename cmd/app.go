// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Commands lists the subcommands to register.
// A main package ranges over Commands to register them, and Execute() runs the user-selected one.
var Commands = []subcommands.Command{
	&rebalanceCmd{},
	&showCmd{},
	&importCmd{},
	&fetchCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "portfolio.csv", "Path to the persisted portfolio snapshot file (CSV format)")

// openStore is the central function to open the portfolio store at the configured path.
func openStore() *rebalance.Store {
	return rebalance.NewStore(*storeFile)
}

// loadPortfolio reads the portfolio from the given text file, or falls back
// to the persisted snapshot when no text file is given.
func loadPortfolio(textPath string) (rebalance.Portfolio, error) {
	if textPath != "" {
		f, err := os.Open(textPath)
		if err != nil {
			return rebalance.Portfolio{}, fmt.Errorf("cannot open portfolio file %q: %w", textPath, err)
		}
		defer f.Close()
		p, err := rebalance.ParsePortfolio(f)
		if err != nil {
			return rebalance.Portfolio{}, fmt.Errorf("in portfolio file %q: %w", textPath, err)
		}
		return p, nil
	}
	return openStore().Load()
}

// loadMarket reads the price table from a market summary text file.
func loadMarket(path string) (rebalance.PriceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open market file %q: %w", path, err)
	}
	defer f.Close()
	prices, err := rebalance.ParseMarket(f)
	if err != nil {
		return nil, fmt.Errorf("in market file %q: %w", path, err)
	}
	return prices, nil
}
