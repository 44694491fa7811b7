package analyze

import (
	"testing"

	"spendwise/internal/model"
)

func TestEstimateBaseline_ExcludesFixedCostCategory(t *testing.T) {
	totals := model.MonthlyCategoryTotals{
		"2026-01": {"Food": -400, "Transport": -100, "Rent": -1400},
		"2026-02": {"Food": -300, "Transport": -200, "Rent": -1400},
	}
	est := EstimateBaseline(totals, 2, "Rent")
	if !almostEqual(est.MonthlySpend, 500) {
		t.Errorf("MonthlySpend = %v, want 500", est.MonthlySpend)
	}
	if len(est.MonthsUsed) != 2 || est.MonthsUsed[0] != "2026-01" || est.MonthsUsed[1] != "2026-02" {
		t.Errorf("MonthsUsed = %v, want [2026-01 2026-02]", est.MonthsUsed)
	}
}

func TestEstimateBaseline_WindowSelectsMostRecent(t *testing.T) {
	totals := model.MonthlyCategoryTotals{
		"2025-11": {"Food": -1000},
		"2025-12": {"Food": -200},
		"2026-01": {"Food": -400},
	}
	est := EstimateBaseline(totals, 2, "Rent")
	if !almostEqual(est.MonthlySpend, 300) {
		t.Errorf("MonthlySpend = %v, want 300 (mean of 200 and 400)", est.MonthlySpend)
	}
	if len(est.MonthsUsed) != 2 || est.MonthsUsed[0] != "2025-12" {
		t.Errorf("MonthsUsed = %v, want the two most recent months", est.MonthsUsed)
	}
}

func TestEstimateBaseline_FewerMonthsThanWindow(t *testing.T) {
	totals := model.MonthlyCategoryTotals{
		"2026-01": {"Food": -250},
	}
	est := EstimateBaseline(totals, 6, "Rent")
	if !almostEqual(est.MonthlySpend, 250) {
		t.Errorf("MonthlySpend = %v, want 250", est.MonthlySpend)
	}
	if len(est.MonthsUsed) != 1 {
		t.Errorf("MonthsUsed = %v, want single month", est.MonthsUsed)
	}
}

func TestEstimateBaseline_NoMonths(t *testing.T) {
	est := EstimateBaseline(model.MonthlyCategoryTotals{}, 3, "Rent")
	if est.MonthlySpend != 0 {
		t.Errorf("MonthlySpend = %v, want 0", est.MonthlySpend)
	}
	if len(est.MonthsUsed) != 0 {
		t.Errorf("MonthsUsed = %v, want empty", est.MonthsUsed)
	}
}

func TestEstimateBaseline_CaseSensitiveExclusion(t *testing.T) {
	totals := model.MonthlyCategoryTotals{
		"2026-01": {"rent": -1400, "Food": -100},
	}
	// "rent" (lowercase) does not match the configured "Rent".
	est := EstimateBaseline(totals, 1, "Rent")
	if !almostEqual(est.MonthlySpend, 1500) {
		t.Errorf("MonthlySpend = %v, want 1500", est.MonthlySpend)
	}
}
