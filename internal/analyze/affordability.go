package analyze

import (
	"math"
	"sort"

	"spendwise/internal/model"
)

// FixedCost describes a recurring charge with a known start date,
// prorated in its first active month.
type FixedCost struct {
	Amount     float64
	StartMonth string // "YYYY-MM"
	StartDay   int
}

// IncomeModel resolves projected monthly income: a fixed override when
// set, otherwise paycheck statistics from a trailing window.
type IncomeModel struct {
	Override             *float64
	AvgPaycheckAmount    float64
	AvgPaychecksPerMonth float64
}

// Monthly returns the projected monthly income.
func (m IncomeModel) Monthly() float64 {
	if m.Override != nil {
		return *m.Override
	}
	return m.AvgPaycheckAmount * m.AvgPaychecksPerMonth
}

// Thresholds configure the affordability status classification.
type Thresholds struct {
	RentPctIncome  float64
	SpendPctIncome float64
}

// DefaultThresholds are the classification cutoffs used when the
// config leaves them unset.
var DefaultThresholds = Thresholds{RentPctIncome: 40, SpendPctIncome: 85}

// PaycheckStats derives an income model from income records over the
// most recent window months: the mean per-paycheck amount and the mean
// number of paychecks per month. Mirrors the baseline estimator's
// recency-window pattern. Returns a zero model when no income months
// exist.
func PaycheckStats(income []model.Transaction, window int) (IncomeModel, error) {
	amounts := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range income {
		month, err := model.MonthKey(r.Date)
		if err != nil {
			return IncomeModel{}, err
		}
		amounts[month] += math.Abs(r.Amount)
		counts[month]++
	}

	months := make([]string, 0, len(amounts))
	for m := range amounts {
		months = append(months, m)
	}
	sort.Strings(months)
	if window < len(months) {
		months = months[len(months)-window:]
	}
	if len(months) == 0 {
		return IncomeModel{}, nil
	}

	var totalAmount float64
	var totalChecks int
	for _, m := range months {
		totalAmount += amounts[m]
		totalChecks += counts[m]
	}

	im := IncomeModel{
		AvgPaychecksPerMonth: float64(totalChecks) / float64(len(months)),
	}
	if totalChecks > 0 {
		im.AvgPaycheckAmount = totalAmount / float64(totalChecks)
	}
	return im, nil
}

// ProjectAffordability composes baseline spend, the prorated fixed
// cost, and projected income into a forward-looking report for
// targetMonth. The fixed cost contributes its prorated share in its
// start month, its full amount in later months, and nothing before.
// Percent-of-income ratios substitute 0 when income is not positive.
func ProjectAffordability(targetMonth string, income IncomeModel, baselineNonRent float64, fixed FixedCost) (model.AffordabilityReport, error) {
	var projectedRent float64
	switch {
	case targetMonth == fixed.StartMonth:
		prorated, err := Prorate(targetMonth, fixed.StartDay, fixed.Amount)
		if err != nil {
			return model.AffordabilityReport{}, err
		}
		projectedRent = prorated
	case targetMonth > fixed.StartMonth:
		projectedRent = fixed.Amount
	default:
		projectedRent = 0
	}

	r := model.AffordabilityReport{
		Month:               targetMonth,
		ProjectedIncome:     income.Monthly(),
		BaselineNonRent:     baselineNonRent,
		ProjectedRent:       projectedRent,
		ProjectedTotalSpend: baselineNonRent + projectedRent,
	}
	r.ProjectedNet = r.ProjectedIncome - r.ProjectedTotalSpend
	if r.ProjectedIncome > 0 {
		r.RentPctIncome = r.ProjectedRent / r.ProjectedIncome * 100
		r.SpendPctIncome = r.ProjectedTotalSpend / r.ProjectedIncome * 100
	}
	return r, nil
}

// ClassifyStatus grades an affordability report. Zero-valued
// thresholds fall back to the defaults.
func ClassifyStatus(r model.AffordabilityReport, th Thresholds) model.AffordabilityStatus {
	if th.RentPctIncome == 0 {
		th.RentPctIncome = DefaultThresholds.RentPctIncome
	}
	if th.SpendPctIncome == 0 {
		th.SpendPctIncome = DefaultThresholds.SpendPctIncome
	}

	switch {
	case r.ProjectedIncome <= 0:
		return model.StatusNoIncome
	case r.ProjectedNet < 0:
		return model.StatusNegativeNet
	case r.RentPctIncome > th.RentPctIncome || r.SpendPctIncome > th.SpendPctIncome:
		return model.StatusTight
	default:
		return model.StatusComfortable
	}
}
