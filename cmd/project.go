package cmd

import (
	"fmt"
	"math"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project end-of-month spending from the run rate so far",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
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
	target := resolveMonth(byMonth)
	if target == "" {
		fmt.Println("\n  No expense data found.")
		return nil
	}

	proj, err := analyze.ProjectEndOfMonth(expenses, target)
	if err != nil {
		return err
	}
	if proj == nil {
		fmt.Printf("\n  No spending recorded in %s yet.\n", cli.FormatMonth(target))
		return nil
	}

	days, err := analyze.DaysInMonth(target)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION  %s", cli.FormatMonth(target))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Spent So Far", cli.FormatMoney(math.Abs(proj.SpentSoFar))},
			{"Through Day", fmt.Sprintf("%d of %d", proj.LastActiveDay, days)},
			{"Daily Rate", cli.FormatMoney(math.Abs(proj.DailyRate))},
			{"---"},
			{"Projected Total", cli.FormatMoney(math.Abs(proj.ProjectedTotal))},
		},
	}))

	reportIssues(result)
	return nil
}
