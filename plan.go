package rebalance

// Plan is the reporting view of one rebalancing round: the valuation that
// drove the allocation and the per-ticker outcome. It is consumed by the
// renderer package, the allocation itself only needs the trade list.
type Plan struct {
	TotalValue  Money
	TargetValue Money
	CashAfter   Money
	Rows        []PlanRow
	Trades      []Trade
}

// PlanRow is the outcome for a single quoted ticker.
type PlanRow struct {
	Ticker string
	Price  Money
	Held   int64
	Target int64
	Value  Money // market value of the target position
}

// BuildPlan allocates trades for the portfolio and assembles the report
// view around them.
func BuildPlan(p Portfolio, prices PriceTable) (*Plan, error) {
	trades, err := Allocate(p.Cash, p.Holdings, prices)
	if err != nil {
		return nil, err
	}

	diffs := make(map[string]int64, len(trades))
	for _, tr := range trades {
		if tr.Side == Sell {
			diffs[tr.Ticker] -= tr.Quantity
		} else {
			diffs[tr.Ticker] += tr.Quantity
		}
	}

	tickers := prices.Tickers()
	total := p.TotalValue(prices)
	plan := &Plan{
		TotalValue:  total,
		TargetValue: total.Div(int64(len(tickers))),
		CashAfter:   total,
		Trades:      trades,
	}
	for _, t := range tickers {
		target := p.Holdings.Quantity(t) + diffs[t]
		value := prices[t].Mul(target)
		plan.CashAfter = plan.CashAfter.Sub(value)
		plan.Rows = append(plan.Rows, PlanRow{
			Ticker: t,
			Price:  prices[t],
			Held:   p.Holdings.Quantity(t),
			Target: target,
			Value:  value,
		})
	}
	return plan, nil
}
