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

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.cfg.Budgets) == 0 {
		return "\n  No budgets configured. Run `spendwise setup` to add some."
	}
	if a.latest == "" {
		return "\n  No expense data found."
	}

	monthCats := a.byMonthCat[a.latest]

	categories := make([]string, 0, len(a.cfg.Budgets))
	labelW := 0
	for c := range a.cfg.Budgets {
		categories = append(categories, c)
		if len(c) > labelW {
			labelW = len(c)
		}
	}
	sort.Strings(categories)

	innerW := components.CardInnerWidth(cw)
	barW := innerW - labelW - 30
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	var body strings.Builder
	for i, cat := range categories {
		if i > 0 {
			body.WriteString("\n")
		}
		ceiling := a.cfg.Budgets[cat]
		spent := math.Abs(monthCats[cat])
		pct := 0.0
		if ceiling > 0 {
			pct = spent / ceiling
		}
		detail := fmt.Sprintf("%s / %s", cli.FormatMoneyShort(spent), cli.FormatMoneyShort(ceiling))
		body.WriteString(components.BudgetBar(cat, pct, detail, labelW, barW))
	}

	b.WriteString(components.ContentCard(
		"Budgets · "+cli.FormatMonth(a.latest),
		body.String(),
		cw,
	))
	b.WriteString("\n")

	// Alerts card
	alerts := analyze.EvaluateBudgets(monthCats, a.cfg.Budgets)
	if len(alerts) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

		var alertBody strings.Builder
		for i, al := range alerts {
			if i > 0 {
				alertBody.WriteString("\n")
			}
			msg := fmt.Sprintf("%s at %.0f%% of budget (%s of %s)",
				al.Category, al.PctUsed, cli.FormatMoneyShort(al.Spent), cli.FormatMoneyShort(al.Ceiling))
			if al.Level == model.AlertOver {
				alertBody.WriteString(overStyle.Render("OVER  " + msg))
			} else {
				alertBody.WriteString(warnStyle.Render("WARN  " + msg))
			}
		}
		b.WriteString(components.ContentCard("Alerts", alertBody.String(), cw))
	} else {
		okStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		b.WriteString(components.ContentCard("Alerts", okStyle.Render("All categories within budget."), cw))
	}

	return b.String()
}
