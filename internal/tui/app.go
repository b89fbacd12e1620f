// Package tui provides the interactive Bubble Tea dashboard for cartscope.
package tui

import (
	"fmt"
	"strings"
	"time"

	"cartscope/internal/cli"
	"cartscope/internal/model"
	"cartscope/internal/pipeline"
	"cartscope/internal/store"
	"cartscope/internal/tui/components"
	"cartscope/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Transactions []model.TransactionRecord
	LoadTime     time.Duration
	Err          error
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// Options configures the dashboard at startup.
type Options struct {
	DataDir  string
	DSN      string
	NoCache  bool
	Period   model.PeriodConfig
	Baseline model.PeriodConfig
	TopN     int
	Status   string
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	transactions []model.TransactionRecord
	loaded       bool
	loadTime     time.Duration
	loadErr      error

	// Pre-computed summaries for the configured periods
	current    *pipeline.Summary
	baseline   *pipeline.Summary
	changes    map[string]model.ComparisonResult
	computeErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Loading — channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg // progress + completion messages from loader goroutine
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		opts:    opts,
		spinner: sp,
		loadSub: make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.opts, a.loadSub),
		a.spinner.Tick,
	)
}

// recompute reruns both period summaries and the comparison over the
// loaded transaction set.
func (a *App) recompute() {
	txns := a.transactions
	if a.opts.Status != "" && a.opts.Status != "all" {
		txns = pipeline.FilterByStatus(txns, model.OrderStatus(a.opts.Status))
	}

	cur, err := pipeline.Summarize(txns, a.opts.Period, a.opts.TopN)
	if err != nil {
		a.computeErr = err
		return
	}
	base, err := pipeline.Summarize(txns, a.opts.Baseline, a.opts.TopN)
	if err != nil {
		a.computeErr = err
		return
	}

	a.current = cur
	a.baseline = base
	a.changes = make(map[string]model.ComparisonResult)
	for _, cr := range pipeline.Compare(cur.Metrics(), base.Metrics()) {
		a.changes[cr.Metric] = cr
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
		case "right", "l", "tab":
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
		a.transactions = msg.Transactions
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.loadErr = msg.Err
		a.recompute()
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

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  cartscope needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ cartscope"))
	b.WriteString(subtitleStyle.Render(" · Business Metrics"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > a.width-30 {
			barW = a.width - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Parsing transactions\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
	} else {
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Discovering transaction files..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p g e", "Jump to tab"},
		{"← → / h l", "Previous / Next tab"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar plus the period pill
	pillDim := lipgloss.NewStyle().Foreground(t.TextDim)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	pill := " " + pillAccent.Render(a.opts.Period.Label()) +
		pillDim.Render(" vs ") + pillAccent.Render(a.opts.Baseline.Label())
	if a.opts.Status != "" && a.opts.Status != "all" {
		pill += pillDim.Render(" │ ") + pillAccent.Render(a.opts.Status)
	}

	header := components.RenderTabBar(a.activeTab, w) + pill

	dataAge := fmt.Sprintf("%.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, len(a.transactions), dataAge)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.computeErr != nil:
		content = lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("\n  %v", a.computeErr))
	case a.loadErr != nil && len(a.transactions) == 0:
		content = lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("\n  Load failed: %v", a.loadErr))
	case len(a.transactions) == 0:
		content = lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No transactions found. Check --data-dir or run `cartscope setup`.")
	default:
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderProductsTab(cw)
		case 2:
			content = a.renderGeographyTab(cw)
		case 3:
			content = a.renderExperienceTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// changeStr renders a metric's period-over-period change for card deltas.
func (a App) changeStr(name string) string {
	cr, ok := a.changes[name]
	if !ok {
		return ""
	}
	return "vs " + a.opts.Baseline.Label() + " " + cli.FormatChange(cr)
}

// ─── Helpers ────────────────────────────────────────────────────

func lipglossMuted(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(s)
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// loadDataCmd starts the data loading pipeline in a background goroutine.
// It streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(opts Options, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			if opts.DSN != "" {
				result, err := pipeline.LoadFromDB(opts.DSN)
				if err != nil {
					sub <- DataLoadedMsg{LoadTime: time.Since(start), Err: err}
					return
				}
				sub <- DataLoadedMsg{Transactions: result.Transactions, LoadTime: time.Since(start)}
				return
			}

			// Progress callback: non-blocking send so workers aren't stalled.
			// If the channel is full, we skip this update — the next one catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			if !opts.NoCache {
				cache, err := store.Open(pipeline.CachePath())
				if err == nil {
					cr, loadErr := pipeline.LoadWithCache(opts.DataDir, cache, progressFn)
					_ = cache.Close()
					if loadErr == nil {
						sub <- DataLoadedMsg{
							Transactions: cr.Transactions,
							LoadTime:     time.Since(start),
							Err:          cr.FirstErr,
						}
						return
					}
				}
			}

			result, err := pipeline.Load(opts.DataDir, progressFn)
			if err != nil {
				sub <- DataLoadedMsg{LoadTime: time.Since(start), Err: err}
				return
			}
			sub <- DataLoadedMsg{
				Transactions: result.Transactions,
				LoadTime:     time.Since(start),
				Err:          result.FirstErr,
			}
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}
