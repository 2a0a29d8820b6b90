package rebalance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
)

// cashRow is the reserved ticker value whose quantity column holds the
// cash amount instead of a share count. It is part of the on-disk format
// only, in memory cash and holdings are distinct fields of Portfolio.
const cashRow = "CASH"

// Store persists a portfolio snapshot to a flat tabular file with two
// columns (ticker, quantity). The path is given at construction, the
// library never reads it from ambient state.
//
// The file is a shared resource across invocations but there is no locking
// protocol: callers must not run two rebalancing invocations concurrently
// against the same file, last writer wins.
type Store struct {
	path string
}

// NewStore returns a store persisting to path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the file the store persists to.
func (s *Store) Path() string { return s.path }

// Load reads the persisted portfolio snapshot. When no snapshot has been
// saved yet it fails with ErrMissingState, so callers can fall back to a
// portfolio text source.
func (s *Store) Load() (Portfolio, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Portfolio{}, fmt.Errorf("%w: %s does not exist", ErrMissingState, s.path)
		}
		return Portfolio{}, fmt.Errorf("cannot open portfolio file %q: %w", s.path, err)
	}
	defer f.Close()
	p, err := decodePortfolio(f)
	if err != nil {
		return Portfolio{}, fmt.Errorf("in portfolio file %q: %w", s.path, err)
	}
	return p, nil
}

// Save persists the snapshot. The file is written to a temporary sibling
// first and renamed into place, so a crash mid-write never leaves a
// truncated snapshot behind.
func (s *Store) Save(p Portfolio) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for portfolio file %q: %w", s.path, err)
	}

	f, err := os.CreateTemp(dir, ".portfolio-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary portfolio file in %q: %w", dir, err)
	}
	tmp := f.Name()

	if err := encodePortfolio(f, p); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write portfolio file %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot write portfolio file %q: %w", s.path, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace portfolio file %q: %w", s.path, err)
	}
	log.Printf("saved-portfolio file=%q positions=%d", s.path, len(p.Holdings))
	return nil
}

// decodePortfolio reads the two-column record set. One row per ticker plus
// the reserved CASH row.
func decodePortfolio(r io.Reader) (Portfolio, error) {
	p := NewPortfolio(M(0, parsedCurrency))

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	line := 0
	seenCash := false
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Portfolio{}, fmt.Errorf("format error on line %d: %w", line, err)
		}

		ticker := record[0]
		if ticker == cashRow {
			if seenCash {
				return Portfolio{}, fmt.Errorf("%w: duplicate %s row on line %d", ErrInvalidInput, cashRow, line)
			}
			value, err := decimal.NewFromString(record[1])
			if err != nil {
				return Portfolio{}, fmt.Errorf("%w: cash amount %q on line %d: %v", ErrInvalidInput, record[1], line, err)
			}
			if value.IsNegative() {
				return Portfolio{}, fmt.Errorf("%w: cash amount %s on line %d is negative", ErrInvalidInput, value, line)
			}
			p.Cash = M(value, parsedCurrency)
			seenCash = true
			continue
		}

		if _, dup := p.Holdings[ticker]; dup {
			return Portfolio{}, fmt.Errorf("%w: ticker %q appears twice, line %d", ErrInvalidInput, ticker, line)
		}
		qty, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return Portfolio{}, fmt.Errorf("%w: quantity %q for %s on line %d: %v", ErrInvalidInput, record[1], ticker, line, err)
		}
		if qty < 0 {
			return Portfolio{}, fmt.Errorf("%w: quantity %d for %s on line %d is negative", ErrInvalidInput, qty, ticker, line)
		}
		p.Holdings.set(ticker, qty)
	}

	if !seenCash {
		return Portfolio{}, fmt.Errorf("%w: missing the reserved %s row", ErrInvalidInput, cashRow)
	}
	return p, nil
}

// encodePortfolio writes the CASH row first then one row per held ticker
// in ascending order, so the file is stable and diff-friendly.
func encodePortfolio(w io.Writer, p Portfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{cashRow, p.Cash.Amount().String()}); err != nil {
		return err
	}
	for _, t := range p.Holdings.Tickers() {
		if err := cw.Write([]string{t, strconv.FormatInt(p.Holdings.Quantity(t), 10)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
