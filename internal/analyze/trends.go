package analyze

import (
	"math"
	"sort"

	"spendwise/internal/model"
)

// MonthOverMonth computes the delta between each consecutive pair of
// chronologically sorted months. Returns nil when fewer than two
// months exist — an insufficient-data signal, not an error.
// PercentChange is change/previous*100, with 0 substituted when the
// previous month's total is exactly zero.
func MonthOverMonth(totals model.MonthlyTotals) []model.TrendChange {
	months := SortedMonths(totals)
	if len(months) < 2 {
		return nil
	}

	changes := make([]model.TrendChange, 0, len(months)-1)
	for i := 1; i < len(months); i++ {
		prev, curr := months[i-1], months[i]
		change := totals[curr] - totals[prev]

		pct := 0.0
		if totals[prev] != 0 {
			pct = change / totals[prev] * 100
		}

		changes = append(changes, model.TrendChange{
			From:          prev,
			To:            curr,
			Change:        change,
			PercentChange: pct,
		})
	}
	return changes
}

// BiggestCategoryMover finds the category with the largest absolute
// delta between two months' category totals, over the union of both
// key sets. Ties break to the lexicographically smaller category name
// so the result is deterministic. ok is false when neither month has
// any category.
func BiggestCategoryMover(prev, curr model.CategoryTotals) (category string, delta float64, ok bool) {
	union := make(map[string]struct{}, len(prev)+len(curr))
	for c := range prev {
		union[c] = struct{}{}
	}
	for c := range curr {
		union[c] = struct{}{}
	}
	if len(union) == 0 {
		return "", 0, false
	}

	categories := make([]string, 0, len(union))
	for c := range union {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		d := curr[c] - prev[c]
		if !ok || math.Abs(d) > math.Abs(delta) {
			category, delta, ok = c, d, true
		}
	}
	return category, delta, ok
}
