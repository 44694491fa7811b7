package cmd

import (
	"fmt"
	"math"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var flagCutoff int

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Check how well the mid-month projection would have predicted past months",
	RunE:  runAccuracy,
}

func init() {
	accuracyCmd.Flags().IntVar(&flagCutoff, "cutoff", 15, "Simulated prediction day of month")
	rootCmd.AddCommand(accuracyCmd)
}

func runAccuracy(_ *cobra.Command, _ []string) error {
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

	_, expenses := analyze.SplitByKind(result.Transactions)

	byMonth, err := analyze.ByMonth(expenses)
	if err != nil {
		return err
	}
	months := analyze.SortedMonths(byMonth)
	if len(months) == 0 {
		fmt.Println("\n  No expense data found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION ACCURACY  Day-%d Cutoff", flagCutoff)))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		predicted, err := analyze.ProjectAtCutoff(expenses, m, flagCutoff)
		if err != nil {
			return err
		}
		if predicted == nil {
			rows = append(rows, []string{cli.FormatMonth(m), "-", cli.FormatMoney(math.Abs(byMonth[m])), "-", "-"})
			continue
		}

		actual := byMonth[m]
		acc := analyze.EvaluateAccuracy(*predicted, actual)

		pctStr := cli.FormatSignedPercent(acc.PercentError)
		switch {
		case math.Abs(acc.PercentError) >= 25:
			pctStr = cli.Bad(pctStr)
		case math.Abs(acc.PercentError) >= 10:
			pctStr = cli.Warn(pctStr)
		default:
			pctStr = cli.Good(pctStr)
		}

		rows = append(rows, []string{
			cli.FormatMonth(m),
			cli.FormatMoney(math.Abs(*predicted)),
			cli.FormatMoney(math.Abs(actual)),
			cli.FormatDelta(-acc.Error),
			pctStr,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Predicted", "Actual", "Miss", "Error"},
		Rows:    rows,
	}))

	reportIssues(result)
	return nil
}
