package analyze

import (
	"math"
	"sort"

	"spendwise/internal/model"
)

// EstimateBaseline averages non-fixed-cost spending over the most
// recent window months, producing a stable forward-looking monthly
// baseline. Category totals are summed by absolute value, excluding
// excludeCategory (exact, case-sensitive match — typically the rent
// category from config). When fewer months exist than the window, all
// available months are used; zero months yields a zero estimate and an
// empty month list.
func EstimateBaseline(totals model.MonthlyCategoryTotals, window int, excludeCategory string) model.BaselineEstimate {
	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	if window < len(months) {
		months = months[len(months)-window:]
	}
	if len(months) == 0 {
		return model.BaselineEstimate{MonthsUsed: []string{}}
	}

	var sum float64
	for _, m := range months {
		for cat, amount := range totals[m] {
			if cat == excludeCategory {
				continue
			}
			sum += math.Abs(amount)
		}
	}

	return model.BaselineEstimate{
		MonthlySpend: sum / float64(len(months)),
		MonthsUsed:   months,
	}
}
