package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spendwise/internal/model"
)

// writeCSV creates a temp CSV file and returns a DiscoveredFile for it.
func writeCSV(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path, Name: "statement.csv"}
}

func TestParseFile_FullHeader(t *testing.T) {
	df := writeCSV(t,
		"date,description,amount,type,category",
		"2026-01-05,groceries,-42.50,expense,Food",
		"2026-01-10,paycheck,1650.00,income,Salary",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(result.Transactions))
	}

	first := result.Transactions[0]
	if first.Date != "2026-01-05" || first.Amount != -42.50 ||
		first.Kind != model.KindExpense || first.Category != "Food" {
		t.Errorf("first row = %+v", first)
	}
	if result.Transactions[1].Kind != model.KindIncome {
		t.Errorf("second row kind = %q, want income", result.Transactions[1].Kind)
	}
}

func TestParseFile_ReorderedAndMixedCaseHeader(t *testing.T) {
	df := writeCSV(t,
		"Category,Amount,Date",
		"Food,-10.00,2026-01-05",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(result.Transactions))
	}
	tx := result.Transactions[0]
	if tx.Category != "Food" || tx.Amount != -10 || tx.Date != "2026-01-05" {
		t.Errorf("row = %+v", tx)
	}
	// No type column: defaults to expense.
	if tx.Kind != model.KindExpense {
		t.Errorf("kind = %q, want expense default", tx.Kind)
	}
}

func TestParseFile_MalformedRowsCountedAndSkipped(t *testing.T) {
	df := writeCSV(t,
		"date,description,amount,type,category",
		"2026-01-05,ok,-10,expense,Food",
		"nonsense,bad date,-10,expense,Food",
		"2026-01-06,bad amount,ten,expense,Food",
		"2026-01-07,bad kind,-10,transfer,Food",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 1 {
		t.Errorf("got %d transactions, want 1", len(result.Transactions))
	}
	if result.RowErrors != 3 {
		t.Errorf("RowErrors = %d, want 3", result.RowErrors)
	}
}

func TestParseFile_MissingRequiredColumns(t *testing.T) {
	df := writeCSV(t,
		"when,how much",
		"2026-01-05,-10",
	)
	result := ParseFile(df)
	if result.Err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

func TestParseFile_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	result := ParseFile(DiscoveredFile{Path: path, Name: "empty.csv"})
	if result.Err != nil {
		t.Fatalf("unexpected error on empty file: %v", result.Err)
	}
	if len(result.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(result.Transactions))
	}
}

func TestScanDir_FindsOnlyCSVs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jan.csv", "feb.CSV", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("date,amount,category\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2 (csv extensions only)", len(files))
	}
}

func TestScanDir_MissingDirIsNotAnError(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Errorf("expected nil files, got %v", files)
	}
}
