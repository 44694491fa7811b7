package cmd

import (
	"fmt"
	"math"
	"sort"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending broken down by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
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

	title := "SPENDING BY CATEGORY"
	if flagMonth != "" {
		byMonthCat, err := analyze.ByMonthAndCategory(expenses)
		if err != nil {
			return err
		}
		monthCats, ok := byMonthCat[flagMonth]
		if !ok {
			fmt.Printf("\n  No spending recorded in %s.\n", flagMonth)
			return nil
		}
		title = fmt.Sprintf("CATEGORIES  %s", cli.FormatMonth(flagMonth))
		printCategoryTable(title, monthCats)
		reportIssues(result)
		return nil
	}

	printCategoryTable(title, analyze.ByCategory(expenses))
	reportIssues(result)
	return nil
}

func printCategoryTable(title string, totals map[string]float64) {
	type entry struct {
		cat string
		amt float64
	}
	entries := make([]entry, 0, len(totals))
	var grand, max float64
	for cat, amt := range totals {
		a := math.Abs(amt)
		entries = append(entries, entry{cat, a})
		grand += a
		if a > max {
			max = a
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amt != entries[j].amt {
			return entries[i].amt > entries[j].amt
		}
		return entries[i].cat < entries[j].cat
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(entries)+2)
	for _, e := range entries {
		share := 0.0
		if grand > 0 {
			share = e.amt / grand * 100
		}
		rows = append(rows, []string{
			e.cat,
			cli.FormatMoney(e.amt),
			cli.FormatPercent(share),
			cli.RenderHorizontalBar(e.amt, max, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(grand), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent", "Share", ""},
		Rows:    rows,
	}))
}
