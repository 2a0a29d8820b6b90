package rebalance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Allocate computes the ordered list of trades that moves the portfolio
// described by (cash, holdings) as close as possible to an equal split of
// its total value across every ticker quoted in prices.
//
// The algorithm is deterministic and runs in a single pass:
//
//  1. the total portfolio value (cash plus quoted positions) is split
//     evenly across all quoted tickers, including tickers not currently
//     held;
//  2. the ideal fractional share count per ticker is floored to whole
//     shares;
//  3. the cash left over by the flooring is distributed by largest
//     fractional remainder, one extra share per ticker at most.
//
// The returned list contains every sell before every buy, each group
// sorted by ticker ascending, so that applying the list in order frees
// cash before it is spent.
func Allocate(cash Money, holdings Holdings, prices PriceTable) ([]Trade, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: cannot compute a target value per ticker", ErrEmptyMarket)
	}
	if cash.IsNegative() {
		return nil, fmt.Errorf("%w: cash is negative (%s)", ErrInvalidInput, cash)
	}
	tickers := prices.Tickers()
	for _, t := range tickers {
		if !prices[t].IsPositive() {
			return nil, fmt.Errorf("%w: price for %s must be positive, got %s", ErrInvalidInput, t, prices[t].Amount())
		}
	}
	for t, q := range holdings {
		if q < 0 {
			return nil, fmt.Errorf("%w: holding for %s is negative (%d)", ErrInvalidInput, t, q)
		}
	}

	// Equal split of the total value across all quoted tickers.
	total := cash
	for _, t := range tickers {
		total = total.Add(prices[t].Mul(holdings.Quantity(t)))
	}
	target := total.Div(int64(len(tickers)))

	// Floor the ideal fractional share count to whole shares, keeping the
	// fractional remainders for the apportionment pass.
	shares := make(map[string]int64, len(tickers))
	remainders := make([]remainder, 0, len(tickers))
	spent := M(0, total.Currency())
	for _, t := range tickers {
		ideal := target.DivPrice(prices[t])
		floored := ideal.Floor()
		shares[t] = floored.IntPart()
		spent = spent.Add(prices[t].Mul(shares[t]))
		remainders = append(remainders, remainder{ticker: t, fraction: ideal.Sub(floored)})
	}

	leftover := total.Sub(spent)
	distributeLeftover(leftover, remainders, prices, shares)

	// Diff the final target quantities against the current positions.
	var sells, buys []Trade
	for _, t := range tickers {
		diff := shares[t] - holdings.Quantity(t)
		switch {
		case diff > 0:
			buys = append(buys, Trade{Ticker: t, Side: Buy, Quantity: diff})
		case diff < 0:
			sells = append(sells, Trade{Ticker: t, Side: Sell, Quantity: -diff})
		}
	}
	return append(sells, buys...), nil
}

// remainder is the fractional part of a ticker's ideal share count, in [0,1).
type remainder struct {
	ticker   string
	fraction decimal.Decimal
}

// distributeLeftover grants one extra share to the tickers with the largest
// fractional remainder, as long as the leftover cash covers their price.
//
// This is a single greedy pass, not an optimum knapsack solve: a ticker can
// gain at most one extra share, and cash smaller than every remaining price
// stays unspent. The tie-break on equal remainders is ticker ascending,
// stated explicitly in the comparator rather than left to sort stability.
func distributeLeftover(leftover Money, remainders []remainder, prices PriceTable, shares map[string]int64) {
	ranked := append([]remainder(nil), remainders...)
	slices.SortFunc(ranked, func(a, b remainder) int {
		if c := b.fraction.Cmp(a.fraction); c != 0 {
			return c
		}
		return strings.Compare(a.ticker, b.ticker)
	})
	for _, r := range ranked {
		price := prices[r.ticker]
		if leftover.Covers(price) {
			shares[r.ticker]++
			leftover = leftover.Sub(price)
		}
	}
}
