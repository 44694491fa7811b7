package cmd

import (
	"fmt"
	"math"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Spending totals per month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
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

	spendByMonth, err := analyze.ByMonth(expenses)
	if err != nil {
		return err
	}
	incomeByMonth, err := analyze.ByMonth(income)
	if err != nil {
		return err
	}

	months := analyze.SortedMonths(spendByMonth)
	if len(months) == 0 {
		fmt.Println("\n  No expense data found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY TOTALS"))
	fmt.Println()

	var spark []float64
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		spend := math.Abs(spendByMonth[m])
		earned := incomeByMonth[m]
		net := earned - spend
		netStr := cli.FormatMoney(net)
		if net < 0 {
			netStr = cli.Bad(netStr)
		}
		rows = append(rows, []string{
			cli.FormatMonth(m),
			cli.FormatMoney(spend),
			cli.FormatMoney(earned),
			netStr,
		})
		spark = append(spark, spend)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Spent", "Income", "Net"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Spend trend: %s\n", cli.RenderSparkline(spark))

	reportIssues(result)
	return nil
}
