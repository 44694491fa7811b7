package analyze

import (
	"errors"
	"math"
	"testing"

	"spendwise/internal/model"
)

func tx(date, category string, amount float64, kind model.Kind) model.Transaction {
	return model.Transaction{Date: date, Category: category, Amount: amount, Kind: kind}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotal_Empty(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %v, want 0", got)
	}
}

func TestTotal_SumsAllAmounts(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Food", -42.50, model.KindExpense),
		tx("2026-01-10", "Salary", 1650, model.KindIncome),
		tx("2026-02-01", "Transport", -17.25, model.KindExpense),
	}
	if got := Total(records); !almostEqual(got, 1590.25) {
		t.Errorf("Total = %v, want 1590.25", got)
	}
}

func TestByCategory_EmptyCategoryIsValidKey(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "", -10, model.KindExpense),
		tx("2026-01-06", "", -15, model.KindExpense),
		tx("2026-01-07", "Food", -20, model.KindExpense),
	}
	totals := ByCategory(records)
	if !almostEqual(totals[""], -25) {
		t.Errorf(`totals[""] = %v, want -25`, totals[""])
	}
	if !almostEqual(totals["Food"], -20) {
		t.Errorf(`totals["Food"] = %v, want -20`, totals["Food"])
	}
}

func TestByMonth_GroupsByMonthKey(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Food", -10, model.KindExpense),
		tx("2026-01-20", "Food", -30, model.KindExpense),
		tx("2026-02-01", "Food", -5, model.KindExpense),
	}
	totals, err := ByMonth(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d months, want 2", len(totals))
	}
	if !almostEqual(totals["2026-01"], -40) {
		t.Errorf("2026-01 = %v, want -40", totals["2026-01"])
	}
	if !almostEqual(totals["2026-02"], -5) {
		t.Errorf("2026-02 = %v, want -5", totals["2026-02"])
	}
}

func TestByMonth_BadDateSurfacesParseError(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Food", -10, model.KindExpense),
		tx("not-a-date", "Food", -10, model.KindExpense),
	}
	_, err := ByMonth(records)
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *model.ParseError", err)
	}
}

func TestByMonthAndCategory(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Food", -10, model.KindExpense),
		tx("2026-01-09", "Food", -20, model.KindExpense),
		tx("2026-01-12", "Transport", -7, model.KindExpense),
		tx("2026-02-01", "Food", -3, model.KindExpense),
	}
	totals, err := ByMonthAndCategory(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(totals["2026-01"]["Food"], -30) {
		t.Errorf("2026-01 Food = %v, want -30", totals["2026-01"]["Food"])
	}
	if !almostEqual(totals["2026-01"]["Transport"], -7) {
		t.Errorf("2026-01 Transport = %v, want -7", totals["2026-01"]["Transport"])
	}
	if !almostEqual(totals["2026-02"]["Food"], -3) {
		t.Errorf("2026-02 Food = %v, want -3", totals["2026-02"]["Food"])
	}
}

func TestSplitByKind_UnknownKindExcluded(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Salary", 1650, model.KindIncome),
		tx("2026-01-06", "Food", -10, model.KindExpense),
		{Date: "2026-01-07", Category: "Mystery", Amount: 99, Kind: "transfer"},
	}
	income, expense := SplitByKind(records)
	if len(income) != 1 || income[0].Category != "Salary" {
		t.Errorf("income = %v, want single Salary record", income)
	}
	if len(expense) != 1 || expense[0].Category != "Food" {
		t.Errorf("expense = %v, want single Food record", expense)
	}
}

// Re-running the pipeline on identical input must yield identical
// outputs: nothing here holds state between calls.
func TestAggregation_Idempotent(t *testing.T) {
	records := []model.Transaction{
		tx("2026-01-05", "Food", -10, model.KindExpense),
		tx("2026-02-01", "Food", -3, model.KindExpense),
		tx("2026-02-14", "Rent", -700, model.KindExpense),
	}
	first, err := ByMonth(records)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ByMonth(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("month counts differ: %d vs %d", len(first), len(second))
	}
	for m, v := range first {
		if !almostEqual(second[m], v) {
			t.Errorf("month %s: %v vs %v", m, v, second[m])
		}
	}
}
