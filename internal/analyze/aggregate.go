// Package analyze is the aggregation and projection engine: pure
// functions that turn a flat list of dated, categorized transactions
// into grouped totals, run-rate projections, and affordability
// forecasts. Nothing in this package performs I/O or holds state
// between calls.
package analyze

import (
	"sort"

	"spendwise/internal/model"
)

// Total sums the amount across all records. Empty input yields 0.
func Total(records []model.Transaction) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// ByCategory sums amounts per category. An empty category string is a
// valid grouping key, not an error.
func ByCategory(records []model.Transaction) model.CategoryTotals {
	totals := make(model.CategoryTotals)
	for _, r := range records {
		totals[r.Category] += r.Amount
	}
	return totals
}

// ByMonth sums amounts per derived "YYYY-MM" key. Returns a
// *model.ParseError if any record's date is malformed.
func ByMonth(records []model.Transaction) (model.MonthlyTotals, error) {
	totals := make(model.MonthlyTotals)
	for _, r := range records {
		month, err := model.MonthKey(r.Date)
		if err != nil {
			return nil, err
		}
		totals[month] += r.Amount
	}
	return totals, nil
}

// ByMonthAndCategory groups amounts by month key, then category.
func ByMonthAndCategory(records []model.Transaction) (model.MonthlyCategoryTotals, error) {
	totals := make(model.MonthlyCategoryTotals)
	for _, r := range records {
		month, err := model.MonthKey(r.Date)
		if err != nil {
			return nil, err
		}
		cats, ok := totals[month]
		if !ok {
			cats = make(model.CategoryTotals)
			totals[month] = cats
		}
		cats[r.Category] += r.Amount
	}
	return totals, nil
}

// SplitByKind partitions records into income and expense streams.
// Records whose kind is neither income nor expense are excluded from
// both outputs.
func SplitByKind(records []model.Transaction) (income, expense []model.Transaction) {
	for _, r := range records {
		switch r.Kind {
		case model.KindIncome:
			income = append(income, r)
		case model.KindExpense:
			expense = append(expense, r)
		}
	}
	return income, expense
}

// SortedMonths returns the month keys of a monthly totals map in
// chronological (lexicographic) order.
func SortedMonths(totals model.MonthlyTotals) []string {
	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// LatestMonth returns the most recent month key present, or "" when
// the map is empty.
func LatestMonth(totals model.MonthlyTotals) string {
	latest := ""
	for m := range totals {
		if m > latest {
			latest = m
		}
	}
	return latest
}
