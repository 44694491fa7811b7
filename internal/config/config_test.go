package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rent.MonthlyAmount != 1500 {
		t.Errorf("rent monthly_amount = %v, want 1500", cfg.Rent.MonthlyAmount)
	}
	if cfg.Rent.Category != "Rent" {
		t.Errorf("rent category = %q, want Rent", cfg.Rent.Category)
	}
	if cfg.Thresholds.RentPctIncome != 40 || cfg.Thresholds.SpendPctIncome != 85 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.Budgets["Food"] != 400 {
		t.Errorf("default Food budget = %v, want 400", cfg.Budgets["Food"])
	}
	if cfg.Baseline.WindowMonths != 2 {
		t.Errorf("baseline window = %d, want 2", cfg.Baseline.WindowMonths)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rent.MonthlyAmount != 1500 {
		t.Errorf("expected defaults, got rent = %v", cfg.Rent.MonthlyAmount)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/statements"
	cfg.Rent.MonthlyAmount = 1400
	cfg.Rent.StartMonth = "2026-02"
	cfg.Rent.StartDay = 14
	override := 3300.0
	cfg.Income.MonthlyOverride = &override
	cfg.Budgets["Coffee"] = 60

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Rent.MonthlyAmount != 1400 || loaded.Rent.StartMonth != "2026-02" || loaded.Rent.StartDay != 14 {
		t.Errorf("rent = %+v", loaded.Rent)
	}
	if loaded.Income.MonthlyOverride == nil || *loaded.Income.MonthlyOverride != 3300 {
		t.Errorf("income override = %v", loaded.Income.MonthlyOverride)
	}
	if loaded.Budgets["Coffee"] != 60 {
		t.Errorf("Coffee budget = %v, want 60", loaded.Budgets["Coffee"])
	}
	if loaded.General.DataDir != "/tmp/statements" {
		t.Errorf("data_dir = %q", loaded.General.DataDir)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "spendwise")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[rent]\nmonthly_amount = 1200.0\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rent.MonthlyAmount != 1200 {
		t.Errorf("rent = %v, want 1200", cfg.Rent.MonthlyAmount)
	}
	// Untouched sections keep their defaults.
	if cfg.Thresholds.RentPctIncome != 40 {
		t.Errorf("thresholds lost defaults: %+v", cfg.Thresholds)
	}
}

func TestDataDirFallback(t *testing.T) {
	cfg := DefaultConfig()
	if got := DataDir(cfg); got != "data" {
		t.Errorf("DataDir = %q, want data", got)
	}
	cfg.General.DataDir = "/srv/csv"
	if got := DataDir(cfg); got != "/srv/csv" {
		t.Errorf("DataDir = %q, want /srv/csv", got)
	}
}
