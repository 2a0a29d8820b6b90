package rebalance

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file parses the two free-text formats produced by the game bot.
//
// Portfolio file:
//
//	💰 Cash
//	€<cash_amount>
//	📈 Stocks Owned
//	<Full Name> (<TICKER>): <quantity> shares
//
// Market summary file:
//
//	Market Day X Summary
//	Closing Prices
//	<Full Name> (<TICKER>)
//	€<price>
//
// Blank lines are ignored everywhere. Everything is euro denominated.

const parsedCurrency = "EUR"

var (
	holdingRe = regexp.MustCompile(`.*\((?P<ticker>[^)]+)\):\s*(?P<qty>\d+)\s*shares`)
	tickerRe  = regexp.MustCompile(`.*\((?P<ticker>[^)]+)\)`)
	priceRe   = regexp.MustCompile(`€(?P<price>[\d.]+)`)
)

// readLines returns all non-empty, trimmed lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	return lines, nil
}

// ParsePortfolio reads the cash amount and the owned-shares listing from
// the portfolio text format. A missing Cash or Stocks Owned section yields
// zero cash or empty holdings, matching the leniency of the bot output.
func ParsePortfolio(r io.Reader) (Portfolio, error) {
	lines, err := readLines(r)
	if err != nil {
		return Portfolio{}, err
	}

	p := NewPortfolio(M(0, parsedCurrency))

	// The cash amount is on the first non-empty line after the Cash header.
	for i, line := range lines {
		if strings.HasPrefix(line, "💰 Cash") {
			if i+1 >= len(lines) {
				break
			}
			raw := strings.ReplaceAll(strings.TrimPrefix(lines[i+1], "€"), ",", "")
			value, err := decimal.NewFromString(raw)
			if err != nil {
				return Portfolio{}, fmt.Errorf("%w: cash amount %q is not a number: %v", ErrInvalidInput, lines[i+1], err)
			}
			if value.IsNegative() {
				return Portfolio{}, fmt.Errorf("%w: cash amount %s is negative", ErrInvalidInput, value)
			}
			p.Cash = M(value, parsedCurrency)
			break
		}
	}

	// Every line after the Stocks Owned header is a "Name (TICKER): N shares" row.
	for i, line := range lines {
		if strings.HasPrefix(line, "📈 Stocks Owned") {
			for _, row := range lines[i+1:] {
				m := holdingRe.FindStringSubmatch(row)
				if m == nil {
					continue
				}
				ticker := strings.TrimSpace(m[holdingRe.SubexpIndex("ticker")])
				qty, err := strconv.ParseInt(m[holdingRe.SubexpIndex("qty")], 10, 64)
				if err != nil {
					return Portfolio{}, fmt.Errorf("%w: quantity in %q: %v", ErrInvalidInput, row, err)
				}
				p.Holdings.set(ticker, qty)
			}
			break
		}
	}

	return p, nil
}

// ParseMarket reads the closing price table from the market summary text
// format: a "Name (TICKER)" line immediately followed by a "€price" line.
func ParseMarket(r io.Reader) (PriceTable, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	prices := make(PriceTable)
	i := 0
	for i < len(lines) {
		m := tickerRe.FindStringSubmatch(lines[i])
		if m != nil && i+1 < len(lines) {
			pm := priceRe.FindStringSubmatch(lines[i+1])
			if pm != nil {
				ticker := strings.TrimSpace(m[tickerRe.SubexpIndex("ticker")])
				value, err := decimal.NewFromString(pm[priceRe.SubexpIndex("price")])
				if err != nil {
					return nil, fmt.Errorf("%w: price for %s in %q: %v", ErrInvalidInput, ticker, lines[i+1], err)
				}
				if !value.IsPositive() {
					return nil, fmt.Errorf("%w: price for %s must be positive, got %s", ErrInvalidInput, ticker, value)
				}
				prices[ticker] = M(value, parsedCurrency)
				i += 2
				continue
			}
		}
		i++
	}

	return prices, nil
}
