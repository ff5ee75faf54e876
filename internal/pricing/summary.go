package pricing

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// PriceSummary describes the spread of VAT-inclusive totals across a set of
// offers.
type PriceSummary struct {
	Count  int
	Min    float64
	Median float64
	Max    float64
}

// Summarize computes the price summary of offers. An empty slice gives the
// zero summary.
func Summarize(offers []skip.Offer) PriceSummary {
	if len(offers) == 0 {
		return PriceSummary{}
	}

	totals := make([]float64, len(offers))
	for i, o := range offers {
		totals[i] = TotalPrice(o)
	}
	sort.Float64s(totals)

	return PriceSummary{
		Count:  len(totals),
		Min:    totals[0],
		Median: stat.Quantile(0.5, stat.Empirical, totals, nil),
		Max:    totals[len(totals)-1],
	}
}

// String renders the summary for the list header, e.g.
// "5 skips · from £253 · median £317 · up to £480".
func (s PriceSummary) String() string {
	switch s.Count {
	case 0:
		return "no skips"
	case 1:
		return fmt.Sprintf("1 skip · %s", FormatCurrency(s.Min))
	case 2:
		// The median of two is the cheaper one
		return fmt.Sprintf("2 skips · from %s · up to %s", FormatCurrency(s.Min), FormatCurrency(s.Max))
	}
	return fmt.Sprintf("%d skips · from %s · median %s · up to %s",
		s.Count, FormatCurrency(s.Min), FormatCurrency(s.Median), FormatCurrency(s.Max))
}
