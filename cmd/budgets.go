package cmd

import (
	"fmt"
	"math"
	"sort"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Check the month's spending against budget ceilings",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
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

	byMonthCat, err := analyze.ByMonthAndCategory(expenses)
	if err != nil {
		return err
	}
	monthCats := byMonthCat[target]

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", cli.FormatMonth(target))))
	fmt.Println()

	categories := make([]string, 0, len(cfg.Budgets))
	for c := range cfg.Budgets {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		ceiling := cfg.Budgets[cat]
		spent := math.Abs(monthCats[cat])
		pct := 0.0
		if ceiling > 0 {
			pct = spent / ceiling * 100
		}

		pctStr := cli.FormatPercent(pct)
		switch {
		case pct >= 100:
			pctStr = cli.Bad(pctStr)
		case pct >= 80:
			pctStr = cli.Warn(pctStr)
		default:
			pctStr = cli.Good(pctStr)
		}

		rows = append(rows, []string{
			cat,
			cli.FormatMoney(spent),
			cli.FormatMoney(ceiling),
			pctStr,
			cli.RenderHorizontalBar(math.Min(pct, 100), 100, 15),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent", "Budget", "Used", ""},
		Rows:    rows,
	}))

	alerts := analyze.EvaluateBudgets(monthCats, cfg.Budgets)
	if len(alerts) > 0 {
		fmt.Println()
		for _, a := range alerts {
			msg := fmt.Sprintf("%s at %.0f%% of budget (%s of %s)",
				a.Category, a.PctUsed, cli.FormatMoneyShort(a.Spent), cli.FormatMoneyShort(a.Ceiling))
			if a.Level == model.AlertOver {
				fmt.Println("  " + cli.Bad("OVER "+msg))
			} else {
				fmt.Println("  " + cli.Warn("WARN "+msg))
			}
		}
	}

	reportIssues(result)
	return nil
}
