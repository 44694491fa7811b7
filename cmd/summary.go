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

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Overall income, spending, and net position",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// resolveMonth picks the target month: the --month flag if given,
// otherwise the latest month present in the data.
func resolveMonth(totals model.MonthlyTotals) string {
	if flagMonth != "" {
		return flagMonth
	}
	return analyze.LatestMonth(totals)
}

func runSummary(_ *cobra.Command, _ []string) error {
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
		fmt.Printf("  Drop CSV statements into %s and try again.\n", dataDir(cfg))
		return nil
	}

	income, expenses := analyze.SplitByKind(result.Transactions)
	totalIncome := analyze.Total(income)
	totalSpend := math.Abs(analyze.Total(expenses))
	net := totalIncome - totalSpend

	monthTotals, err := analyze.ByMonth(expenses)
	if err != nil {
		return err
	}
	latest := resolveMonth(monthTotals)

	byCategory := analyze.ByCategory(expenses)
	topCat, topAmt := "", 0.0
	for cat, amt := range byCategory {
		a := math.Abs(amt)
		if a > topAmt || (a == topAmt && (topCat == "" || cat < topCat)) {
			topCat, topAmt = cat, a
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING SUMMARY"))
	fmt.Println()

	netStr := cli.FormatMoney(net)
	if net < 0 {
		netStr = cli.Bad(netStr)
	} else {
		netStr = cli.Good(netStr)
	}

	rows := [][]string{
		{"Transactions", cli.FormatNumber(int64(len(result.Transactions)))},
		{"Months Covered", cli.FormatNumber(int64(len(monthTotals)))},
		{"---"},
		{"Total Income", cli.FormatMoney(totalIncome)},
		{"Total Spending", cli.FormatMoney(totalSpend)},
		{"Net", netStr},
		{"---"},
	}
	if latest != "" {
		rows = append(rows, []string{
			fmt.Sprintf("Spend in %s", cli.FormatMonth(latest)),
			cli.FormatMoney(math.Abs(monthTotals[latest])),
		})
	}
	if topCat != "" {
		rows = append(rows, []string{"Top Category", fmt.Sprintf("%s (%s)", topCat, cli.FormatMoney(topAmt))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	reportIssues(result)
	return nil
}
