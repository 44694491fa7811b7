// Package tui provides the interactive Bubble Tea dashboard for spendwise.
package tui

import (
	"math"
	"strings"
	"time"

	"spendwise/internal/analyze"
	"spendwise/internal/config"
	"spendwise/internal/model"
	"spendwise/internal/pipeline"
	"spendwise/internal/store"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Transactions []model.Transaction
	LoadTime     time.Duration
	RowErrors    int
	FileErrors   int
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// LoadFailedMsg is sent when the pipeline cannot load at all.
type LoadFailedMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	dataDir  string
	useCache bool

	// Data
	txs        []model.Transaction
	loaded     bool
	loadErr    error
	loadTime   time.Duration
	rowErrors  int
	fileErrors int

	// Pre-computed aggregations
	income        []model.Transaction
	expenses      []model.Transaction
	spendByMonth  model.MonthlyTotals // absolute spend per month
	incomeByMonth model.MonthlyTotals
	byMonthCat    model.MonthlyCategoryTotals
	months        []string
	latest        string
	trendChanges  []model.TrendChange
	projection    *model.Projection
	baseline      model.BaselineEstimate
	afford        model.AffordabilityReport
	affordStatus  model.AffordabilityStatus
	forecastMonth string
	computeErr    error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Loading — channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config, dataDir string, useCache bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:      cfg,
		dataDir:  dataDir,
		useCache: useCache,
		spinner:  sp,
		loadSub:  make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dataDir, a.useCache, a.loadSub),
		waitForLoadMsg(a.loadSub),
		a.spinner.Tick,
	)
}

// nextMonthKey returns the month key after the given one.
func nextMonthKey(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 1, 0).Format("2006-01")
}

func (a *App) recompute() {
	a.income, a.expenses = analyze.SplitByKind(a.txs)

	rawSpend, err := analyze.ByMonth(a.expenses)
	if err != nil {
		a.computeErr = err
		return
	}
	a.spendByMonth = make(model.MonthlyTotals, len(rawSpend))
	for m, v := range rawSpend {
		a.spendByMonth[m] = math.Abs(v)
	}

	a.incomeByMonth, err = analyze.ByMonth(a.income)
	if err != nil {
		a.computeErr = err
		return
	}

	a.byMonthCat, err = analyze.ByMonthAndCategory(a.expenses)
	if err != nil {
		a.computeErr = err
		return
	}

	a.months = analyze.SortedMonths(a.spendByMonth)
	a.latest = analyze.LatestMonth(a.spendByMonth)
	a.trendChanges = analyze.MonthOverMonth(a.spendByMonth)

	if a.latest != "" {
		a.projection, err = analyze.ProjectEndOfMonth(a.expenses, a.latest)
		if err != nil {
			a.computeErr = err
			return
		}
	}

	a.baseline = analyze.EstimateBaseline(a.byMonthCat, a.cfg.Baseline.WindowMonths, a.cfg.Rent.Category)

	im := analyze.IncomeModel{Override: a.cfg.Income.MonthlyOverride}
	if im.Override == nil {
		im, err = analyze.PaycheckStats(a.income, a.cfg.Income.WindowMonths)
		if err != nil {
			a.computeErr = err
			return
		}
	}

	if a.latest != "" {
		a.forecastMonth = nextMonthKey(a.latest)
		fixed := analyze.FixedCost{
			Amount:     a.cfg.Rent.MonthlyAmount,
			StartMonth: a.cfg.Rent.StartMonth,
			StartDay:   a.cfg.Rent.StartDay,
		}
		if fixed.StartMonth == "" {
			fixed.StartMonth = a.forecastMonth
		}
		a.afford, err = analyze.ProjectAffordability(a.forecastMonth, im, a.baseline.MonthlySpend, fixed)
		if err != nil {
			a.computeErr = err
			return
		}
		a.affordStatus = analyze.ClassifyStatus(a.afford, analyze.Thresholds{
			RentPctIncome:  a.cfg.Thresholds.RentPctIncome,
			SpendPctIncome: a.cfg.Thresholds.SpendPctIncome,
		})
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.txs = msg.Transactions
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.rowErrors = msg.RowErrors
		a.fileErrors = msg.FileErrors
		a.recompute()
		return a, nil

	case LoadFailedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := "\n  Terminal too narrow.\n\n  spendwise needs at least " +
		"70 columns.\n"

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ spendwise"))
	b.WriteString(subtitleStyle.Render(" · Transaction Analyzer"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > w-30 {
			barW = w - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Parsing statements\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Scanning statements..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o c t f b", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(bind.key))
		b.WriteString(strings.Repeat(" ", 12-len(bind.key)))
		b.WriteString(descStyle.Render(bind.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	headerRowStyle := lipgloss.NewStyle().
		Background(t.Background).
		Width(w)

	header := headerRowStyle.Render(components.RenderTabBar(a.activeTab))

	dataAge := ""
	if a.loadTime > 0 {
		dataAge = a.loadTime.Round(time.Millisecond).String()
	}
	statusBar := components.RenderStatusBar(w, dataAge)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.loadErr != nil:
		content = "\n  Could not load data: " + a.loadErr.Error()
	case a.computeErr != nil:
		content = "\n  Could not analyze data: " + a.computeErr.Error()
	case len(a.txs) == 0:
		content = "\n  No transactions found in " + a.dataDir + ".\n\n  Drop CSV statements there and restart."
	default:
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderCategoriesTab(cw)
		case 2:
			content = a.renderTrendsTab(cw)
		case 3:
			content = a.renderForecastTab(cw)
		case 4:
			content = a.renderBudgetsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd starts the data loading pipeline in a background goroutine.
// It streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(dataDir string, useCache bool, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so parser workers aren't stalled. A full
			// channel just drops the update; the next one catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			if useCache {
				cache, err := store.Open(pipeline.CachePath())
				if err == nil {
					cr, loadErr := pipeline.LoadWithCache(dataDir, cache, progressFn)
					_ = cache.Close()
					if loadErr == nil {
						sub <- DataLoadedMsg{
							Transactions: cr.Transactions,
							LoadTime:     time.Since(start),
							RowErrors:    cr.RowErrors,
							FileErrors:   cr.FileErrors,
						}
						return
					}
				}
			}

			result, err := pipeline.Load(dataDir, progressFn)
			if err != nil {
				sub <- LoadFailedMsg{Err: err}
				return
			}
			sub <- DataLoadedMsg{
				Transactions: result.Transactions,
				LoadTime:     time.Since(start),
				RowErrors:    result.RowErrors,
				FileErrors:   result.FileErrors,
			}
		}()
		return nil
	}
}

func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

// monthShortLabels turns "2026-02" keys into "Feb" axis labels.
func monthShortLabels(months []string) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		t, err := time.Parse("2006-01", m)
		if err != nil {
			labels[i] = m
			continue
		}
		labels[i] = t.Format("Jan")
	}
	return labels
}

func truncStr(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 1 {
		return s[:limit]
	}
	return s[:limit-1] + "…"
}
