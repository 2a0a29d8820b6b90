// Package rebalance computes the trades needed to spread a portfolio's
// total value evenly across every ticker quoted in a market.
//
// The core functionalities include:
//   - Allocation: a pure, deterministic function that converts available
//     cash, current holdings and market prices into an equal-value target
//     allocation, flooring to whole shares and distributing the leftover
//     cash by largest fractional remainder.
//   - Trade Application: applying an ordered trade list (sells first, then
//     buys) to a portfolio snapshot, validating feasibility as it goes.
//   - Record Parsing: reading the human-readable portfolio and market
//     summary text formats into structured records.
//   - Data Persistence: saving and restoring the portfolio snapshot to a
//     flat, two-column tabular file so subsequent runs do not need the
//     full portfolio text again.
//
// This package serves as the foundational logic for the `rbl` command-line
// tool.
package rebalance
