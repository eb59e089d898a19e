package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// adminRefreshInterval re-reads totals so open shifts keep counting.
const adminRefreshInterval = 30 * time.Second

// ── messages ─────────────────────────────────────────────────────────────────

type adminLoadedMsg struct {
	totals  []service.UserTotal
	history []service.HistoryEntry
	err     error
}

// reportReadyMsg carries the finished daily report markdown.
type reportReadyMsg struct {
	text string
	err  error
}

type adminTickMsg struct{}

func adminTick() tea.Cmd {
	return tea.Tick(adminRefreshInterval, func(time.Time) tea.Msg { return adminTickMsg{} })
}

// ── view ─────────────────────────────────────────────────────────────────────

// adminView shows totals per user, the shift history and the AI report.
type adminView struct {
	state   *SharedState
	totals  []service.UserTotal
	history []service.HistoryEntry
	loading bool
	err     error

	generating bool
	spin       spinner.Model
	report     string

	vp viewport.Model
}

func newAdminView(state *SharedState) *adminView {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{Frames: formatter.SpinnerFrames, FPS: formatter.SpinnerInterval}
	sp.Style = formatter.StylePurple

	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = outputViewportKeyMap()

	return &adminView{state: state, loading: true, spin: sp, vp: vp}
}

func (v *adminView) ID() ViewID    { return ViewAdmin }
func (v *adminView) Title() string { return "Admin" }

func (v *adminView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "AI report")),
	}
	if v.report != "" {
		bindings = append(bindings, key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "close report")))
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	)
}

func (v *adminView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), adminTick())
}

func (v *adminView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		totals, err := app.Admin.UserTotals(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}
		history, err := app.Admin.History(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}
		return adminLoadedMsg{totals: totals, history: history}
	}
}

func (v *adminView) generateReport() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		text, err := dailyReport(context.Background(), app)
		return reportReadyMsg{text: text, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *adminView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.syncContent()
		return v, nil

	case adminLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.totals = msg.totals
			v.history = msg.history
		}
		v.syncContent()
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case adminTickMsg:
		return v, tea.Batch(v.loadData(), adminTick())

	case reportReadyMsg:
		v.generating = false
		if msg.err != nil {
			v.report = errorLine(msg.err)
		} else {
			v.report = msg.text
		}
		v.syncContent()
		v.vp.GotoTop()
		return v, nil

	case spinner.TickMsg:
		if !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		v.syncContent()
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			if v.generating {
				return v, nil
			}
			v.generating = true
			v.report = ""
			v.syncContent()
			return v, tea.Batch(v.spin.Tick, v.generateReport())
		case "c":
			v.report = ""
			v.syncContent()
			return v, nil
		case "r":
			return v, v.loadData()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *adminView) syncContent() {
	v.vp.SetContent(v.content())
}

func (v *adminView) content() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	var b strings.Builder
	b.WriteString("\n")

	switch {
	case v.generating:
		b.WriteString("  " + v.spin.View() + " " + formatter.Dim("Writing today's report...") + "\n\n")
	case v.report != "":
		width := max(v.state.Width-8, 40)
		b.WriteString(formatter.RenderBox("Daily Report", formatter.RenderMarkdown(v.report, width, v.state.Theme)))
		b.WriteString("\n\n")
	}

	b.WriteString(indent(formatter.Header("Total hours")) + "\n")
	b.WriteString(indent(formatter.FormatTotals(v.totals)) + "\n")
	b.WriteString(indent(formatter.Header("History")) + "\n")
	b.WriteString(indent(formatter.FormatHistory(v.history, v.state.Now())))
	return b.String()
}

func (v *adminView) View() string {
	if v.state.Height <= 0 {
		return v.content()
	}
	return v.vp.View()
}

// indent prefixes every non-empty line with two spaces.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
