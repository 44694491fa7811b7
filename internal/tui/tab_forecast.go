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

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

	line := func(b *strings.Builder, label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	// Card 1: Run-rate projection for the in-progress month
	var projBody strings.Builder
	if a.projection == nil {
		projBody.WriteString(labelStyle.Render("No spending recorded this month yet."))
	} else {
		days, _ := analyze.DaysInMonth(a.projection.Month)
		line(&projBody, "Spent so far", cli.FormatMoney(math.Abs(a.projection.SpentSoFar)))
		line(&projBody, "Through day", fmt.Sprintf("%d of %d", a.projection.LastActiveDay, days))
		line(&projBody, "Daily rate", cli.FormatMoney(math.Abs(a.projection.DailyRate)))
		projBody.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", "Projected total")))
		projBody.WriteString(valueStyle.Bold(true).Render(cli.FormatMoney(math.Abs(a.projection.ProjectedTotal))))
	}

	projTitle := "Run-Rate Projection"
	if a.latest != "" {
		projTitle += " · " + cli.FormatMonth(a.latest)
	}

	// Card 2: Affordability forecast for next month
	var affBody strings.Builder
	if a.forecastMonth == "" {
		affBody.WriteString(labelStyle.Render("Not enough data to forecast."))
	} else {
		r := a.afford
		line(&affBody, "Projected income", cli.FormatMoney(r.ProjectedIncome))
		baselineNote := ""
		if n := len(a.baseline.MonthsUsed); n > 0 {
			baselineNote = fmt.Sprintf("  (avg of %d months)", n)
		}
		line(&affBody, "Baseline spending", cli.FormatMoney(r.BaselineNonRent)+baselineNote)
		line(&affBody, "Rent", cli.FormatMoney(r.ProjectedRent))
		line(&affBody, "Total outflow", cli.FormatMoney(r.ProjectedTotalSpend))
		line(&affBody, "Projected net", cli.FormatMoney(r.ProjectedNet))
		line(&affBody, "Rent % of income", cli.FormatPercent(r.RentPctIncome))
		line(&affBody, "Spend % of income", cli.FormatPercent(r.SpendPctIncome))

		statusStyle := goodStyle
		switch a.affordStatus {
		case model.StatusTight:
			statusStyle = warnStyle
		case model.StatusNoIncome, model.StatusNegativeNet:
			statusStyle = badStyle
		}
		affBody.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", "Verdict")))
		affBody.WriteString(statusStyle.Render(a.affordStatus.Label()))
	}

	affTitle := "Affordability"
	if a.forecastMonth != "" {
		affTitle += " · " + cli.FormatMonth(a.forecastMonth)
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(projTitle, projBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard(affTitle, affBody.String(), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard(projTitle, projBody.String(), halves[0]),
			components.ContentCard(affTitle, affBody.String(), halves[1]),
		}))
	}

	return b.String()
}
