package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"spendwise/internal/store"
)

func writeStatement(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const janCSV = `date,description,amount,type,category
2026-01-05,groceries,-42.50,expense,Food
2026-01-10,paycheck,1650.00,income,Salary
2026-01-12,bus pass,-60.00,expense,Transport
`

const febCSV = `date,description,amount,type,category
2026-02-02,groceries,-51.25,expense,Food
2026-02-14,dinner out,-80.00,expense,Entertainment
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "jan.csv", janCSV)
	writeStatement(t, dir, "feb.csv", febCSV)

	result, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalFiles != 2 || result.ParsedFiles != 2 {
		t.Errorf("files = %d/%d, want 2/2", result.ParsedFiles, result.TotalFiles)
	}
	if len(result.Transactions) != 5 {
		t.Fatalf("got %d transactions, want 5", len(result.Transactions))
	}

	// Merged output is date-ordered regardless of parse order.
	for i := 1; i < len(result.Transactions); i++ {
		if result.Transactions[i].Date < result.Transactions[i-1].Date {
			t.Fatalf("transactions out of order at %d: %s < %s",
				i, result.Transactions[i].Date, result.Transactions[i-1].Date)
		}
	}
}

func TestLoadEmptyDir(t *testing.T) {
	result, err := Load(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalFiles != 0 || len(result.Transactions) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestLoadReportsProgress(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "jan.csv", janCSV)

	var last int
	_, err := Load(dir, func(current, total int) {
		last = current
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != 1 {
		t.Errorf("final progress = %d, want 1", last)
	}
}

func TestLoadWithCache(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "jan.csv", janCSV)
	writeStatement(t, dir, "feb.csv", febCSV)

	cache, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer cache.Close()

	// First load: nothing cached yet.
	first, err := LoadWithCache(dir, cache, nil)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.CacheHits != 0 || first.Reparsed != 2 {
		t.Errorf("first load hits/reparsed = %d/%d, want 0/2", first.CacheHits, first.Reparsed)
	}
	if len(first.Transactions) != 5 {
		t.Fatalf("first load got %d transactions, want 5", len(first.Transactions))
	}

	// Second load: everything unchanged, served from cache.
	second, err := LoadWithCache(dir, cache, nil)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.CacheHits != 2 || second.Reparsed != 0 {
		t.Errorf("second load hits/reparsed = %d/%d, want 2/0", second.CacheHits, second.Reparsed)
	}
	if len(second.Transactions) != len(first.Transactions) {
		t.Fatalf("cached load got %d transactions, want %d",
			len(second.Transactions), len(first.Transactions))
	}
	for i := range first.Transactions {
		if first.Transactions[i] != second.Transactions[i] {
			t.Errorf("transaction %d differs between parse and cache: %+v vs %+v",
				i, first.Transactions[i], second.Transactions[i])
		}
	}
}

func TestLoadWithCacheReparsesChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeStatement(t, dir, "jan.csv", janCSV)

	cache, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer cache.Close()

	if _, err := LoadWithCache(dir, cache, nil); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Append a row; size change alone must invalidate the entry.
	extended := janCSV + "2026-01-20,coffee,-4.50,expense,Food\n"
	if err := os.WriteFile(path, []byte(extended), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := LoadWithCache(dir, cache, nil)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if result.Reparsed != 1 {
		t.Errorf("reparsed = %d, want 1", result.Reparsed)
	}
	if len(result.Transactions) != 4 {
		t.Errorf("got %d transactions, want 4", len(result.Transactions))
	}
}
