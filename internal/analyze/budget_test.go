package analyze

import (
	"testing"

	"spendwise/internal/model"
)

func TestEvaluateBudgets_Bands(t *testing.T) {
	budgets := map[string]float64{
		"Food":          400,
		"Transport":     400,
		"Entertainment": 400,
	}
	totals := model.CategoryTotals{
		"Food":          -350, // 87.5% — warning
		"Transport":     -420, // 105% — over
		"Entertainment": -100, // 25% — nothing
	}

	alerts := EvaluateBudgets(totals, budgets)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2: %+v", len(alerts), alerts)
	}

	// Sorted by category: Food before Transport.
	if alerts[0].Category != "Food" || alerts[0].Level != model.AlertWarning {
		t.Errorf("alerts[0] = %+v, want Food warning", alerts[0])
	}
	if !almostEqual(alerts[0].PctUsed, 87.5) {
		t.Errorf("Food PctUsed = %v, want 87.5", alerts[0].PctUsed)
	}
	if alerts[1].Category != "Transport" || alerts[1].Level != model.AlertOver {
		t.Errorf("alerts[1] = %+v, want Transport over-budget", alerts[1])
	}
	if !almostEqual(alerts[1].PctUsed, 105) {
		t.Errorf("Transport PctUsed = %v, want 105", alerts[1].PctUsed)
	}
}

func TestEvaluateBudgets_ExactlyAtCeilingIsOver(t *testing.T) {
	alerts := EvaluateBudgets(
		model.CategoryTotals{"Food": -400},
		map[string]float64{"Food": 400},
	)
	if len(alerts) != 1 || alerts[0].Level != model.AlertOver {
		t.Fatalf("spend == ceiling should be over budget, got %+v", alerts)
	}
}

func TestEvaluateBudgets_UnbudgetedCategorySkipped(t *testing.T) {
	alerts := EvaluateBudgets(
		model.CategoryTotals{"Yachts": -99999},
		map[string]float64{"Food": 400},
	)
	if len(alerts) != 0 {
		t.Errorf("unbudgeted category produced alerts: %+v", alerts)
	}
}

func TestEvaluateBudgets_ZeroCeilingNeverAlerts(t *testing.T) {
	alerts := EvaluateBudgets(
		model.CategoryTotals{"Food": -350},
		map[string]float64{"Food": 0},
	)
	if len(alerts) != 0 {
		t.Errorf("zero ceiling should substitute 0%% and emit nothing, got %+v", alerts)
	}
}
