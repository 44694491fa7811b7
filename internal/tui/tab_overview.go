package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	totalIncome := analyze.Total(a.income)
	totalSpend := math.Abs(analyze.Total(a.expenses))
	net := totalIncome - totalSpend

	// Row 1: Metric cards
	latestDelta := ""
	if a.latest != "" {
		latestDelta = cli.FormatMonth(a.latest)
	}
	netDelta := "surplus"
	if net < 0 {
		netDelta = "deficit"
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Income", cli.FormatMoneyShort(totalIncome), fmt.Sprintf("%d months", len(a.months))},
		{"Spending", cli.FormatMoneyShort(totalSpend), fmt.Sprintf("%d transactions", len(a.expenses))},
		{"Net", cli.FormatMoneyShort(net), netDelta},
		{"This Month", cli.FormatMoneyShort(a.spendByMonth[a.latest]), latestDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly spend chart
	if len(a.months) > 0 {
		vals := make([]float64, len(a.months))
		for i, m := range a.months {
			vals[i] = a.spendByMonth[m]
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			"Monthly Spending",
			components.BarChart(vals, monthShortLabels(a.months), t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Top categories for the latest month
	if a.latest != "" {
		type entry struct {
			cat string
			amt float64
		}
		var entries []entry
		var peak float64
		for cat, amt := range a.byMonthCat[a.latest] {
			v := math.Abs(amt)
			entries = append(entries, entry{cat, v})
			if v > peak {
				peak = v
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].amt != entries[j].amt {
				return entries[i].amt > entries[j].amt
			}
			return entries[i].cat < entries[j].cat
		})
		if len(entries) > 6 {
			entries = entries[:6]
		}

		innerW := components.CardInnerWidth(cw)
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
		amtStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

		nameW := innerW / 3
		if nameW > 18 {
			nameW = 18
		}
		barMax := innerW - nameW - 12
		if barMax < 5 {
			barMax = 5
		}

		var body strings.Builder
		for i, e := range entries {
			if i > 0 {
				body.WriteString("\n")
			}
			barLen := 0
			if peak > 0 {
				barLen = int(e.amt / peak * float64(barMax))
			}
			body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.cat, nameW))))
			body.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
			body.WriteString(amtStyle.Render(" " + cli.FormatMoneyShort(e.amt)))
		}

		b.WriteString(components.ContentCard(
			fmt.Sprintf("Top Categories · %s", cli.FormatMonth(a.latest)),
			body.String(),
			cw,
		))
	}

	return b.String()
}
