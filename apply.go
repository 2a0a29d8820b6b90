package rebalance

import "fmt"

// Apply executes the trades in order against a copy of the portfolio and
// returns the resulting snapshot. The input snapshot is never mutated.
//
// Trades are processed strictly in the given order: the sells-before-buys
// ordering produced by Allocate matters for correctness, selling frees the
// cash the buys need. On failure the returned portfolio is the partially
// applied state reached so far, with every trade before the failing one
// already executed. Failures only arise from stale or inconsistent state,
// holdings or prices that changed between allocation and application.
func Apply(p Portfolio, prices PriceTable, trades []Trade) (Portfolio, error) {
	next := p.Clone()
	for _, tr := range trades {
		price, ok := prices[tr.Ticker]
		if !ok {
			return next, fmt.Errorf("%w: no price for %s", ErrInvalidInput, tr.Ticker)
		}
		if tr.Quantity <= 0 {
			return next, fmt.Errorf("%w: trade quantity must be positive, got %d", ErrInvalidInput, tr.Quantity)
		}
		switch tr.Side {
		case Sell:
			held := next.Holdings.Quantity(tr.Ticker)
			if held < tr.Quantity {
				return next, fmt.Errorf("%w: cannot sell %d %s, position is only %d", ErrInsufficientShares, tr.Quantity, tr.Ticker, held)
			}
			next.Cash = next.Cash.Add(price.Mul(tr.Quantity))
			next.Holdings.set(tr.Ticker, held-tr.Quantity)
		case Buy:
			cost := price.Mul(tr.Quantity)
			if !next.Cash.Covers(cost) {
				return next, fmt.Errorf("%w: cannot buy %d %s for %s, cash is %s", ErrInsufficientCash, tr.Quantity, tr.Ticker, cost, next.Cash)
			}
			next.Cash = next.Cash.Sub(cost)
			next.Holdings.set(tr.Ticker, next.Holdings.Quantity(tr.Ticker)+tr.Quantity)
		default:
			return next, fmt.Errorf("%w: unknown trade side %q", ErrInvalidInput, tr.Side)
		}
	}
	return next, nil
}
