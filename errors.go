package rebalance

import "errors"

// Failure taxonomy. Every failure is terminal for the current invocation:
// callers report it and abort, nothing is retried. Use errors.Is to test
// the category, the wrapped message carries the details.
var (
	// ErrInvalidInput reports malformed or out-of-range values: negative
	// cash, a negative holding, a non-positive price.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyMarket reports a price table with no tickers, the target
	// value per ticker is undefined.
	ErrEmptyMarket = errors.New("no tickers in market")

	// ErrInsufficientShares reports a sell larger than the current position.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrInsufficientCash reports a buy larger than the available cash.
	ErrInsufficientCash = errors.New("insufficient cash")

	// ErrMissingState reports that no portfolio snapshot has been saved yet
	// and no portfolio text was given to initialize one.
	ErrMissingState = errors.New("no saved portfolio")
)
