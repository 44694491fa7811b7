package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"spendwise/internal/config"
	"spendwise/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// parseMoney accepts "1500", "1500.50", or "$1,500.50".
func parseMoney(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

func validateMoney(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := parseMoney(s); err != nil {
		return fmt.Errorf("not a dollar amount")
	}
	return nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	files, _ := source.ScanDir(dataDir(cfg))

	fmt.Println()
	fmt.Println("  Welcome to spendwise!")
	if len(files) > 0 {
		fmt.Printf("  Found %d CSV statements in %s.\n", len(files), dataDir(cfg))
	}
	fmt.Println()

	dataDirIn := cfg.General.DataDir
	rentIn := strconv.FormatFloat(cfg.Rent.MonthlyAmount, 'f', -1, 64)
	rentMonthIn := cfg.Rent.StartMonth
	rentDayIn := strconv.Itoa(cfg.Rent.StartDay)
	incomeIn := ""
	if cfg.Income.MonthlyOverride != nil {
		incomeIn = strconv.FormatFloat(*cfg.Income.MonthlyOverride, 'f', -1, 64)
	}
	themeIn := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Statement directory").
				Description("Where your CSV bank exports live (blank for ./data).").
				Value(&dataDirIn),
			huh.NewInput().
				Title("Monthly rent").
				Description("The fixed cost to plan around.").
				Validate(validateMoney).
				Value(&rentIn),
			huh.NewInput().
				Title("Rent start month").
				Description("YYYY-MM, blank if rent already applies.").
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if len(s) != 7 || s[4] != '-' {
						return fmt.Errorf("use YYYY-MM")
					}
					return nil
				}).
				Value(&rentMonthIn),
			huh.NewInput().
				Title("Rent start day").
				Description("Day of month the lease starts (prorates the first month).").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 || n > 31 {
						return fmt.Errorf("use a day between 1 and 31")
					}
					return nil
				}).
				Value(&rentDayIn),
			huh.NewInput().
				Title("Monthly income override").
				Description("Blank to estimate from paychecks in the data.").
				Validate(validateMoney).
				Value(&incomeIn),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&themeIn),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DataDir = strings.TrimSpace(dataDirIn)
	if v, err := parseMoney(rentIn); err == nil && strings.TrimSpace(rentIn) != "" {
		cfg.Rent.MonthlyAmount = v
	}
	cfg.Rent.StartMonth = strings.TrimSpace(rentMonthIn)
	if d, err := strconv.Atoi(strings.TrimSpace(rentDayIn)); err == nil {
		cfg.Rent.StartDay = d
	}
	if strings.TrimSpace(incomeIn) == "" {
		cfg.Income.MonthlyOverride = nil
	} else if v, err := parseMoney(incomeIn); err == nil {
		cfg.Income.MonthlyOverride = &v
	}
	cfg.Appearance.Theme = themeIn

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `spendwise setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
