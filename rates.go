package loancalc

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file fetches a published reference interest rate, a convenient seed
// for the annual rate of a new loan simulation.

// estrSeriesURL is the ECB data API series for the euro short-term rate
// (€STR), volume-weighted trimmed mean, restricted to the last observation.
const estrSeriesURL = "https://data-api.ecb.europa.eu/service/data/EST/B.EU000A2X2A25.WT?format=jsondata&lastNObservations=1"

// ReferenceRate returns the latest euro short-term rate published by the
// ECB, as an annual rate in percent. Responses are cached on disk for a day.
func ReferenceRate() (decimal.Decimal, error) {
	return referenceRate(cachedClient(), estrSeriesURL)
}

func referenceRate(client *http.Client, addr string) (decimal.Decimal, error) {
	var jobj any
	if err := getJSON(client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching %q: %w", "ESTR", err)
	}
	// In the SDMX jsondata layout the single observation hides under
	// generated series/observation keys, hence the wildcards.
	path := "$.dataSets[0].series.*.observations.*[0]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", "ESTR", path, err)
	}
	// jsonpath may return the answer wrapped in one or more lists,
	// unwrap keeping the first element until a scalar remains.
	for {
		jlist, ok := jval.([]any)
		if !ok || len(jlist) == 0 {
			break
		}
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %s %v", "ESTR", path, "not a float", jval)
	}
	return decimal.NewFromFloat(val), nil
}
