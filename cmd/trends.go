package cmd

import (
	"fmt"
	"math"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Month-over-month spending changes",
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

// absMonthly flips expense totals to positive spend magnitudes so
// trend deltas read as "spending went up/down".
func absMonthly(totals model.MonthlyTotals) model.MonthlyTotals {
	out := make(model.MonthlyTotals, len(totals))
	for m, v := range totals {
		out[m] = math.Abs(v)
	}
	return out
}

func absCategories(totals model.CategoryTotals) model.CategoryTotals {
	out := make(model.CategoryTotals, len(totals))
	for c, v := range totals {
		out[c] = math.Abs(v)
	}
	return out
}

func runTrends(_ *cobra.Command, _ []string) error {
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
	spend := absMonthly(byMonth)

	changes := analyze.MonthOverMonth(spend)
	if changes == nil {
		fmt.Println("\n  Need at least two months of data to compute trends.")
		return nil
	}

	byMonthCat, err := analyze.ByMonthAndCategory(expenses)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTH-OVER-MONTH TRENDS"))
	fmt.Println()

	rows := make([][]string, 0, len(changes))
	for _, tc := range changes {
		changeStr := cli.FormatDelta(tc.Change)
		pctStr := cli.FormatSignedPercent(tc.PercentChange)
		if tc.Change > 0 {
			changeStr = cli.Warn(changeStr)
			pctStr = cli.Warn(pctStr)
		} else if tc.Change < 0 {
			changeStr = cli.Good(changeStr)
			pctStr = cli.Good(pctStr)
		}

		mover := ""
		prevCats := absCategories(byMonthCat[tc.From])
		currCats := absCategories(byMonthCat[tc.To])
		if cat, delta, ok := analyze.BiggestCategoryMover(prevCats, currCats); ok {
			mover = fmt.Sprintf("%s %s", cat, cli.FormatDelta(delta))
		}

		rows = append(rows, []string{
			fmt.Sprintf("%s → %s", cli.FormatMonth(tc.From), cli.FormatMonth(tc.To)),
			cli.FormatMoney(spend[tc.To]),
			changeStr,
			pctStr,
			mover,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Period", "Spent", "Change", "%", "Biggest Mover"},
		Rows:    rows,
	}))

	reportIssues(result)
	return nil
}
