// Package cmd implements the spendwise CLI commands.
package cmd

import (
	"fmt"
	"sort"

	"spendwise/internal/cli"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [Rent]")
	fmt.Printf("    Monthly amount: %s\n", cli.FormatMoney(cfg.Rent.MonthlyAmount))
	if cfg.Rent.StartMonth != "" {
		fmt.Printf("    Starts:         %s, day %d\n", cfg.Rent.StartMonth, cfg.Rent.StartDay)
	} else {
		fmt.Printf("    Start day:      %d\n", cfg.Rent.StartDay)
	}
	fmt.Printf("    Category:       %s\n", cfg.Rent.Category)
	fmt.Println()

	fmt.Println("  [Income]")
	if cfg.Income.MonthlyOverride != nil {
		fmt.Printf("    Monthly override: %s\n", cli.FormatMoney(*cfg.Income.MonthlyOverride))
	} else {
		fmt.Printf("    Estimated from paychecks over %d months\n", cfg.Income.WindowMonths)
	}
	fmt.Println()

	fmt.Println("  [Baseline]")
	fmt.Printf("    Window: %d months\n", cfg.Baseline.WindowMonths)
	fmt.Println()

	fmt.Println("  [Budgets]")
	cats := make([]string, 0, len(cfg.Budgets))
	for c := range cfg.Budgets {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Printf("    %-15s %s\n", c, cli.FormatMoney(cfg.Budgets[c]))
	}
	fmt.Println()

	fmt.Println("  [Thresholds]")
	fmt.Printf("    Rent:  %.0f%% of income\n", cfg.Thresholds.RentPctIncome)
	fmt.Printf("    Spend: %.0f%% of income\n", cfg.Thresholds.SpendPctIncome)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `spendwise setup` to reconfigure.")
	return nil
}
