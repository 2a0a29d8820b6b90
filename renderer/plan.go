// Package renderer turns report structures into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders a rebalancing plan to a markdown string.
func PlanMarkdown(p *rebalance.Plan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rebalance Plan")
	doc.PlainText(fmt.Sprintf("Total portfolio value: %s, target per ticker: %s", p.TotalValue, p.TargetValue))

	doc.H2("Positions")
	table := md.TableSet{
		Header: []string{"Ticker", "Price", "Held", "Target", "Value"},
	}
	for _, row := range p.Rows {
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Price.String(),
			strconv.FormatInt(row.Held, 10),
			strconv.FormatInt(row.Target, 10),
			row.Value.String(),
		})
	}
	doc.Table(table)

	doc.H2("Trades")
	if len(p.Trades) == 0 {
		doc.PlainText("No trades needed, the portfolio is already balanced.")
	} else {
		var items []string
		for _, tr := range p.Trades {
			items = append(items, tr.String())
		}
		doc.BulletList(items...)
	}

	doc.PlainText(fmt.Sprintf("Cash after rebalancing: %s", p.CashAfter))

	return doc.String()
}
