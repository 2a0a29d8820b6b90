package rebalance

import (
	"fmt"
	"maps"
	"slices"
)

// Holdings maps a ticker to the integer number of shares owned. Absence of
// a ticker means zero, the map never stores explicit zero entries.
type Holdings map[string]int64

// Quantity returns the number of shares held for ticker, zero when absent.
func (h Holdings) Quantity(ticker string) int64 { return h[ticker] }

// set updates the position for ticker, removing the entry when it reaches zero.
func (h Holdings) set(ticker string, quantity int64) {
	if quantity == 0 {
		delete(h, ticker)
		return
	}
	h[ticker] = quantity
}

// Tickers returns the held tickers in ascending order.
func (h Holdings) Tickers() []string {
	return slices.Sorted(maps.Keys(h))
}

// PriceTable maps a ticker to its strictly positive price per share. The
// set of tickers considered for rebalancing is exactly the set of keys: a
// holding with no quoted price is left untouched.
type PriceTable map[string]Money

// Tickers returns the quoted tickers in ascending order. The sort fixes
// the tie-break order downstream and makes every output reproducible.
func (p PriceTable) Tickers() []string {
	return slices.Sorted(maps.Keys(p))
}

// Portfolio is a snapshot of the cash and share positions at a point in time.
type Portfolio struct {
	Cash     Money
	Holdings Holdings
}

// NewPortfolio returns an empty portfolio holding cash only.
func NewPortfolio(cash Money) Portfolio {
	return Portfolio{Cash: cash, Holdings: make(Holdings)}
}

// Clone returns a deep copy, so trades can be applied without mutating the
// original snapshot.
func (p Portfolio) Clone() Portfolio {
	n := Portfolio{Cash: p.Cash, Holdings: make(Holdings, len(p.Holdings))}
	maps.Copy(n.Holdings, p.Holdings)
	return n
}

// TotalValue returns cash plus the market value of every quoted position.
// Positions without a quote do not contribute.
func (p Portfolio) TotalValue(prices PriceTable) Money {
	total := p.Cash
	for _, t := range prices.Tickers() {
		total = total.Add(prices[t].Mul(p.Holdings.Quantity(t)))
	}
	return total
}

// Side discriminates buy from sell trades.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Trade is a single instruction to buy or sell a positive whole number of
// shares. Trades are created by Allocate and consumed immediately by the
// output and by Apply, they are never persisted.
type Trade struct {
	Ticker   string
	Side     Side
	Quantity int64
}

// String renders the trade in the command form understood by the game bot.
func (t Trade) String() string {
	return fmt.Sprintf("!%s %s %d", t.Side, t.Ticker, t.Quantity)
}
