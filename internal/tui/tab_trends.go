package tui

import (
	"fmt"
	"math"
	"strings"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/model"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func absCategoryTotals(totals model.CategoryTotals) model.CategoryTotals {
	out := make(model.CategoryTotals, len(totals))
	for c, v := range totals {
		out[c] = math.Abs(v)
	}
	return out
}

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if a.trendChanges == nil {
		return "\n  Need at least two months of data to compute trends."
	}

	// Row 1: Spend sparkline
	vals := make([]float64, len(a.months))
	for i, m := range a.months {
		vals[i] = a.spendByMonth[m]
	}
	sparkBody := components.Sparkline(vals, t.Blue) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render(fmt.Sprintf("%s – %s", cli.FormatMonth(a.months[0]), cli.FormatMonth(a.months[len(a.months)-1])))
	b.WriteString(components.ContentCard("Spend Trend", sparkBody, cw))
	b.WriteString("\n")

	// Row 2: Month-over-month changes with biggest movers
	periodStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	moverStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var body strings.Builder
	for i, tc := range a.trendChanges {
		if i > 0 {
			body.WriteString("\n")
		}

		deltaStyle := downStyle
		if tc.Change > 0 {
			deltaStyle = upStyle
		}

		mover := ""
		prevCats := absCategoryTotals(a.byMonthCat[tc.From])
		currCats := absCategoryTotals(a.byMonthCat[tc.To])
		if cat, delta, ok := analyze.BiggestCategoryMover(prevCats, currCats); ok {
			mover = fmt.Sprintf("  driven by %s %s", cat, cli.FormatDelta(delta))
		}

		body.WriteString(periodStyle.Render(fmt.Sprintf("%-20s", cli.FormatMonth(tc.From)+" → "+cli.FormatMonth(tc.To))))
		body.WriteString(deltaStyle.Render(fmt.Sprintf("%10s  %8s",
			cli.FormatDelta(tc.Change), cli.FormatSignedPercent(tc.PercentChange))))
		body.WriteString(moverStyle.Render(mover))
	}

	b.WriteString(components.ContentCard("Month-over-Month", body.String(), cw))

	return b.String()
}
