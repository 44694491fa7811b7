package cmd

import (
	"fmt"
	"time"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var affordabilityCmd = &cobra.Command{
	Use:   "affordability [month]",
	Short: "Forecast whether next month's budget works out",
	Long: "Combine projected income, baseline non-rent spending, and the " +
		"configured rent (prorated in its start month) into a monthly " +
		"affordability forecast.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAffordability,
}

func init() {
	rootCmd.AddCommand(affordabilityCmd)
}

// nextMonth returns the month key after the given one.
func nextMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 1, 0).Format("2006-01")
}

func runAffordability(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := loadData(cfg)
	if err != nil {
		return err
	}
	if len(result.Transactions) == 0 {
		fmt.Println("\n  No transactions found.")
		return nil
	}

	income, expenses := analyze.SplitByKind(result.Transactions)

	byMonth, err := analyze.ByMonth(expenses)
	if err != nil {
		return err
	}

	// Target month: positional arg, then --month, then the month after
	// the latest data month.
	target := ""
	switch {
	case len(args) == 1:
		target = args[0]
	case flagMonth != "":
		target = flagMonth
	default:
		latest := analyze.LatestMonth(byMonth)
		if latest == "" {
			fmt.Println("\n  No expense data found.")
			return nil
		}
		target = nextMonth(latest)
	}

	byMonthCat, err := analyze.ByMonthAndCategory(expenses)
	if err != nil {
		return err
	}
	baseline := analyze.EstimateBaseline(byMonthCat, cfg.Baseline.WindowMonths, cfg.Rent.Category)

	im := analyze.IncomeModel{Override: cfg.Income.MonthlyOverride}
	if im.Override == nil {
		im, err = analyze.PaycheckStats(income, cfg.Income.WindowMonths)
		if err != nil {
			return err
		}
	}

	fixed := analyze.FixedCost{
		Amount:     cfg.Rent.MonthlyAmount,
		StartMonth: cfg.Rent.StartMonth,
		StartDay:   cfg.Rent.StartDay,
	}
	if fixed.StartMonth == "" {
		fixed.StartMonth = target
	}

	report, err := analyze.ProjectAffordability(target, im, baseline.MonthlySpend, fixed)
	if err != nil {
		return err
	}
	status := analyze.ClassifyStatus(report, analyze.Thresholds{
		RentPctIncome:  cfg.Thresholds.RentPctIncome,
		SpendPctIncome: cfg.Thresholds.SpendPctIncome,
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("AFFORDABILITY  %s", cli.FormatMonth(target))))
	fmt.Println()

	statusStr := status.Label()
	switch status {
	case model.StatusComfortable:
		statusStr = cli.Good(statusStr)
	case model.StatusTight:
		statusStr = cli.Warn(statusStr)
	default:
		statusStr = cli.Bad(statusStr)
	}

	netStr := cli.FormatMoney(report.ProjectedNet)
	if report.ProjectedNet < 0 {
		netStr = cli.Bad(netStr)
	} else {
		netStr = cli.Good(netStr)
	}

	baselineNote := ""
	if len(baseline.MonthsUsed) > 0 {
		baselineNote = fmt.Sprintf("  (avg of %d months)", len(baseline.MonthsUsed))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Projected Income", cli.FormatMoney(report.ProjectedIncome)},
			{"Baseline Spending", cli.FormatMoney(report.BaselineNonRent) + baselineNote},
			{"Rent", cli.FormatMoney(report.ProjectedRent)},
			{"Total Outflow", cli.FormatMoney(report.ProjectedTotalSpend)},
			{"---"},
			{"Projected Net", netStr},
			{"Rent % of Income", cli.FormatPercent(report.RentPctIncome)},
			{"Spend % of Income", cli.FormatPercent(report.SpendPctIncome)},
			{"---"},
			{"Verdict", statusStr},
		},
	}))

	reportIssues(result)
	return nil
}
