package analyze

import (
	"testing"

	"spendwise/internal/model"
)

func TestProjectEndOfMonth_LinearRunRate(t *testing.T) {
	// Single 100 record on day 10 of a 30-day month: rate 10/day,
	// projected 300.
	records := []model.Transaction{
		tx("2026-06-10", "Food", 100, model.KindExpense),
	}
	p, err := ProjectEndOfMonth(records, "2026-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a projection")
	}
	if !almostEqual(p.SpentSoFar, 100) {
		t.Errorf("SpentSoFar = %v, want 100", p.SpentSoFar)
	}
	if p.LastActiveDay != 10 {
		t.Errorf("LastActiveDay = %d, want 10", p.LastActiveDay)
	}
	if !almostEqual(p.ProjectedTotal, 300) {
		t.Errorf("ProjectedTotal = %v, want 300", p.ProjectedTotal)
	}
}

func TestProjectEndOfMonth_UsesLatestActiveDay(t *testing.T) {
	records := []model.Transaction{
		tx("2026-06-02", "Food", 30, model.KindExpense),
		tx("2026-06-15", "Food", 45, model.KindExpense),
		tx("2026-07-01", "Food", 999, model.KindExpense), // other month
	}
	p, err := ProjectEndOfMonth(records, "2026-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.LastActiveDay != 15 {
		t.Errorf("LastActiveDay = %d, want 15", p.LastActiveDay)
	}
	if !almostEqual(p.SpentSoFar, 75) {
		t.Errorf("SpentSoFar = %v, want 75", p.SpentSoFar)
	}
	if !almostEqual(p.ProjectedTotal, 75.0/15*30) {
		t.Errorf("ProjectedTotal = %v, want %v", p.ProjectedTotal, 75.0/15*30)
	}
}

func TestProjectEndOfMonth_NoData(t *testing.T) {
	records := []model.Transaction{
		tx("2026-05-10", "Food", 100, model.KindExpense),
	}
	p, err := ProjectEndOfMonth(records, "2026-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil projection for empty month, got %+v", p)
	}
}

func TestProjectAtCutoff(t *testing.T) {
	records := []model.Transaction{
		tx("2026-06-05", "Food", 50, model.KindExpense),
		tx("2026-06-20", "Food", 500, model.KindExpense), // past cutoff
	}
	got, err := ProjectAtCutoff(records, "2026-06", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a prediction")
	}
	want := 50.0 / 15 * 30
	if !almostEqual(*got, want) {
		t.Errorf("prediction = %v, want %v", *got, want)
	}
}

func TestProjectAtCutoff_ZeroSumIsNoData(t *testing.T) {
	// Real records that cancel to exactly zero count as no data.
	records := []model.Transaction{
		tx("2026-06-05", "Food", 50, model.KindExpense),
		tx("2026-06-06", "Food", -50, model.KindExpense),
	}
	got, err := ProjectAtCutoff(records, "2026-06", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for zero-sum cutoff window, got %v", *got)
	}
}

func TestEvaluateAccuracy(t *testing.T) {
	acc := EvaluateAccuracy(330, 300)
	if !almostEqual(acc.Error, 30) {
		t.Errorf("Error = %v, want 30", acc.Error)
	}
	if !almostEqual(acc.PercentError, 10) {
		t.Errorf("PercentError = %v, want 10", acc.PercentError)
	}
}

func TestEvaluateAccuracy_ZeroActual(t *testing.T) {
	acc := EvaluateAccuracy(120, 0)
	if !almostEqual(acc.Error, 120) {
		t.Errorf("Error = %v, want 120", acc.Error)
	}
	if acc.PercentError != 0 {
		t.Errorf("PercentError = %v, want 0 for zero actual", acc.PercentError)
	}
}
