package model

// CategoryTotals maps category name to summed amount.
type CategoryTotals map[string]float64

// MonthlyTotals maps "YYYY-MM" month key to summed amount.
type MonthlyTotals map[string]float64

// MonthlyCategoryTotals nests category totals under month keys.
type MonthlyCategoryTotals map[string]CategoryTotals

// TrendChange holds the delta between two consecutive months.
type TrendChange struct {
	From          string
	To            string
	Change        float64
	PercentChange float64
}

// Projection is a linear run-rate extrapolation for an in-progress month.
type Projection struct {
	Month          string
	SpentSoFar     float64
	LastActiveDay  int
	DailyRate      float64
	ProjectedTotal float64
}

// PredictionAccuracy compares a simulated prediction against the
// month's actual final total.
type PredictionAccuracy struct {
	Error        float64
	PercentError float64
}

// BaselineEstimate is a trailing-window average of non-fixed-cost
// monthly spending, with the months that produced it.
type BaselineEstimate struct {
	MonthlySpend float64
	MonthsUsed   []string
}

// AffordabilityStatus is the qualitative classification of a report.
type AffordabilityStatus int

const (
	StatusComfortable AffordabilityStatus = iota
	StatusTight
	StatusNoIncome
	StatusNegativeNet
)

// Label returns the display string for a status.
func (s AffordabilityStatus) Label() string {
	switch s {
	case StatusNoIncome:
		return "not affordable, no income"
	case StatusNegativeNet:
		return "not affordable, negative net"
	case StatusTight:
		return "tight"
	default:
		return "comfortable"
	}
}

// AffordabilityReport is the forward-looking forecast for one month.
// Entirely derived; recomputed fresh for each target month queried.
type AffordabilityReport struct {
	Month               string
	ProjectedIncome     float64
	BaselineNonRent     float64
	ProjectedRent       float64
	ProjectedTotalSpend float64
	ProjectedNet        float64
	RentPctIncome       float64
	SpendPctIncome      float64
}

// AlertLevel grades a budget alert.
type AlertLevel int

const (
	AlertWarning AlertLevel = iota
	AlertOver
)

// BudgetAlert reports a category at or past its budget ceiling.
type BudgetAlert struct {
	Category string
	Spent    float64
	Ceiling  float64
	PctUsed  float64
	Level    AlertLevel
}
