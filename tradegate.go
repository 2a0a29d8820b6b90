package rebalance

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quotes fetched here feed the market side of a rebalancing run when no
// market summary text is at hand. Tradegate trades everything in EUR, which
// matches the euro-denominated text formats.

// QuoteLatest returns the latest price exchanged on Tradegate for the
// given ISIN. Responses are cached for the day.
func QuoteLatest(name, isin string) (Money, error) {
	addr := "https://www.tradegate.de/refresh.php?isin=" + isin

	var jobj map[string]any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving %q: %w", name, err)
	}
	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval := jobj["last"]
	if s, ok := jval.(string); ok {
		if s == "./." {
			// trade gate show's empty last this way, use the bid instead
			log.Println("'last' is empty, falling back to 'bid'")
			jval = jobj["bid"]
		}
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return Money{}, fmt.Errorf("cannot read value from %q: doesn't have a value and neither a float or string", name)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		var err error
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return Money{}, fmt.Errorf("cannot read value from %q: value is an invalid string %q: %w", name, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return Money{}, fmt.Errorf("empty bid for %s no value to return: bidsize=%v", name, jobj["bidsize"])
	}
	return M(decimal.NewFromFloat(val), parsedCurrency), nil
}

// QuoteIntraday returns the last point of the intraday series published by
// ls-tc for the given instrument id. Useful for instruments Tradegate does
// not list, like currency pairs.
func QuoteIntraday(name, instrumentID string) (Money, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=" + instrumentID + "&series=intraday&type=mini"
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", name, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing %q: %q %s %v", name, path, "not a float", jval)
	}
	return M(decimal.NewFromFloat(val), parsedCurrency), nil
}
