// Package config handles loading and saving user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all spendwise configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rent       RentConfig       `toml:"rent"`
	Income     IncomeConfig     `toml:"income"`
	Baseline   BaselineConfig   `toml:"baseline"`
	Budgets    map[string]float64 `toml:"budgets,omitempty"`
	Thresholds ThresholdConfig  `toml:"thresholds"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// RentConfig describes an upcoming fixed monthly cost.
type RentConfig struct {
	MonthlyAmount float64 `toml:"monthly_amount"`
	StartMonth    string  `toml:"start_month,omitempty"`
	StartDay      int     `toml:"start_day"`
	Category      string  `toml:"category"`
}

// IncomeConfig controls how monthly income is estimated.
type IncomeConfig struct {
	MonthlyOverride *float64 `toml:"monthly_override,omitempty"`
	WindowMonths    int      `toml:"window_months"`
}

// BaselineConfig controls the trailing-window spend baseline.
type BaselineConfig struct {
	WindowMonths int `toml:"window_months"`
}

// ThresholdConfig holds the affordability classification thresholds,
// expressed as percentages of monthly income.
type ThresholdConfig struct {
	RentPctIncome  float64 `toml:"rent_pct_income"`
	SpendPctIncome float64 `toml:"spend_pct_income"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rent: RentConfig{
			MonthlyAmount: 1500,
			StartDay:      1,
			Category:      "Rent",
		},
		Income: IncomeConfig{
			WindowMonths: 2,
		},
		Baseline: BaselineConfig{
			WindowMonths: 2,
		},
		Budgets: map[string]float64{
			"Rent":          1500,
			"Food":          400,
			"Transport":     250,
			"Entertainment": 200,
		},
		Thresholds: ThresholdConfig{
			RentPctIncome:  40,
			SpendPctIncome: 85,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendwise")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the statement directory: config value if set,
// otherwise ./data relative to the working directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return "data"
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
