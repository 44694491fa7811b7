package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"spendwise/internal/analyze"
	"spendwise/internal/cli"
	"spendwise/internal/model"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

type categoryEntry struct {
	cat string
	amt float64
}

func sortedCategoryEntries(totals model.CategoryTotals) ([]categoryEntry, float64, float64) {
	entries := make([]categoryEntry, 0, len(totals))
	var grand, peak float64
	for cat, amt := range totals {
		v := math.Abs(amt)
		entries = append(entries, categoryEntry{cat, v})
		grand += v
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
	return entries, grand, peak
}

func (a App) renderCategoryList(totals model.CategoryTotals, innerW int) string {
	t := theme.Active
	entries, grand, peak := sortedCategoryEntries(totals)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	nameW := innerW / 3
	if nameW > 16 {
		nameW = 16
	}
	barMax := innerW - nameW - 18
	if barMax < 5 {
		barMax = 5
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		barLen := 0
		if peak > 0 {
			barLen = int(e.amt / peak * float64(barMax))
		}
		share := 0.0
		if grand > 0 {
			share = e.amt / grand * 100
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.cat, nameW))))
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(amtStyle.Render(" " + cli.FormatMoneyShort(e.amt)))
		b.WriteString(pctStyle.Render(fmt.Sprintf(" (%.0f%%)", share)))
	}
	return b.String()
}

func (a App) renderCategoriesTab(cw int) string {
	var b strings.Builder

	allTime := analyze.ByCategory(a.expenses)

	if a.isCompactLayout() || a.latest == "" {
		b.WriteString(components.ContentCard(
			"All Time",
			a.renderCategoryList(allTime, components.CardInnerWidth(cw)),
			cw,
		))
		if a.latest != "" {
			b.WriteString("\n")
			b.WriteString(components.ContentCard(
				cli.FormatMonth(a.latest),
				a.renderCategoryList(a.byMonthCat[a.latest], components.CardInnerWidth(cw)),
				cw,
			))
		}
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)
	left := components.ContentCard(
		"All Time",
		a.renderCategoryList(allTime, components.CardInnerWidth(halves[0])),
		halves[0],
	)
	right := components.ContentCard(
		cli.FormatMonth(a.latest),
		a.renderCategoryList(a.byMonthCat[a.latest], components.CardInnerWidth(halves[1])),
		halves[1],
	)
	b.WriteString(components.CardRow([]string{left, right}))

	return b.String()
}
