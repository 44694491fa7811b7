package analyze

import (
	"math"
	"sort"

	"spendwise/internal/model"
)

// EvaluateBudgets compares a month's per-category spend against
// configured ceilings. Spend is taken by absolute value (expense
// totals are negative under this pipeline's sign convention).
// pctUsed >= 100 emits an over-budget alert, 80 <= pctUsed < 100 a
// warning, anything below nothing at all. Categories without a
// configured ceiling are never evaluated. pctUsed substitutes 0 when
// the ceiling is not positive. Alerts are ordered by category name.
func EvaluateBudgets(monthTotals model.CategoryTotals, budgets map[string]float64) []model.BudgetAlert {
	categories := make([]string, 0, len(budgets))
	for c := range budgets {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var alerts []model.BudgetAlert
	for _, cat := range categories {
		ceiling := budgets[cat]
		spent := math.Abs(monthTotals[cat])

		pctUsed := 0.0
		if ceiling > 0 {
			pctUsed = spent / ceiling * 100
		}

		switch {
		case pctUsed >= 100:
			alerts = append(alerts, model.BudgetAlert{
				Category: cat, Spent: spent, Ceiling: ceiling,
				PctUsed: pctUsed, Level: model.AlertOver,
			})
		case pctUsed >= 80:
			alerts = append(alerts, model.BudgetAlert{
				Category: cat, Spent: spent, Ceiling: ceiling,
				PctUsed: pctUsed, Level: model.AlertWarning,
			})
		}
	}
	return alerts
}
