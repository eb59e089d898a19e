package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries the open shift, if any.
type dashboardLoadedMsg struct {
	active *domain.ShiftRecord
	err    error
}

// startResultMsg carries the controller's answer to a clock-in.
type startResultMsg struct {
	res *service.StartResult
	err error
}

// shiftNoticeMsg is a one-line notice shown under the duty banner.
type shiftNoticeMsg struct {
	text string
}

// clockTickMsg advances the on-screen clock.
type clockTickMsg time.Time

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the on-duty screen for the selected user.
type dashboardView struct {
	state   *SharedState
	active  *domain.ShiftRecord
	now     time.Time
	notice  string
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true, now: state.Now()}
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }

func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if v.isMine() {
		bindings = append(bindings, key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "clock out")))
	} else {
		bindings = append(bindings, key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start shift")))
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "change user")),
	)
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), clockTick())
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		active, err := app.Shifts.Active(context.Background())
		return dashboardLoadedMsg{active: active, err: err}
	}
}

// isMine reports whether the selected user holds the open shift.
func (v *dashboardView) isMine() bool {
	u := v.state.SelectedUser
	return u != nil && v.active != nil && v.active.UserID == u.ID
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.active = msg.active
		v.now = v.state.Now()
		return v, nil

	case refreshViewMsg:
		if v.state.SelectedUser == nil {
			// The acting user was removed from the roster.
			return v, popView()
		}
		return v, v.loadData()

	case clockTickMsg:
		v.now = v.state.Now()
		return v, clockTick()

	case startResultMsg:
		return v.handleStartResult(msg)

	case shiftNoticeMsg:
		v.notice = msg.text
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if !v.isMine() {
				return v, v.requestStart()
			}
		case "o":
			if v.isMine() {
				return v, v.requestEnd()
			}
		}
	}
	return v, nil
}

func (v *dashboardView) requestStart() tea.Cmd {
	app := v.state.App
	user := v.state.SelectedUser
	if user == nil {
		return nil
	}
	return func() tea.Msg {
		res, err := app.Shifts.RequestStart(context.Background(), user)
		return startResultMsg{res: res, err: err}
	}
}

func (v *dashboardView) handleStartResult(msg startResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		v.notice = errorLine(msg.err)
		return v, v.loadData()
	}
	if msg.res.Outcome != service.OutcomeTakeoverRequired {
		v.notice = formatter.FormatStartResult(msg.res)
		return v, v.loadData()
	}
	return v, confirmTakeoverCmd(v.state, msg.res.Previous)
}

// confirmTakeoverCmd asks whether to end previous and start the selected
// user's shift. Both answers and esc resolve the pending takeover.
func confirmTakeoverCmd(state *SharedState, previous *domain.ShiftRecord) tea.Cmd {
	app := state.App
	user := state.SelectedUser
	confirmed := true
	form := wizardConfirm(
		formatter.TakeoverPrompt(previous),
		"Their shift ends the moment yours starts.",
		&confirmed,
	)
	wv := newWizardView(state, "Take Over", form, func() tea.Cmd {
		if !confirmed {
			app.Shifts.CancelTakeover()
			return func() tea.Msg {
				return wizardCompleteThen(noticeCmd(formatter.Dim("Takeover cancelled.")))
			}
		}
		return func() tea.Msg {
			res, err := app.Shifts.ConfirmTakeover(context.Background(), user)
			if err != nil {
				return wizardCompleteThen(noticeCmd(errorLine(err)))
			}
			return wizardCompleteThen(noticeCmd(formatter.FormatStartResult(res)))
		}
	}).onCancel(app.Shifts.CancelTakeover)
	return pushView(wv)
}

func (v *dashboardView) requestEnd() tea.Cmd {
	app := v.state.App
	user := v.state.SelectedUser
	return func() tea.Msg {
		rec, err := app.Shifts.RequestEnd(context.Background(), user)
		switch {
		case errors.Is(err, domain.ErrNoActiveShift), errors.Is(err, domain.ErrNotOnDuty):
			return shiftNoticeMsg{text: formatter.Dim("You are not on duty.")}
		case err != nil:
			return shiftNoticeMsg{text: errorLine(err)}
		}
		return shiftNoticeMsg{text: formatter.FormatShiftEnded(rec)}
	}
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return shiftNoticeMsg{text: text} }
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	u := v.state.SelectedUser
	if u == nil {
		return "\n  " + formatter.Dim("No user selected.")
	}

	clock := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Render(v.now.Format("15:04:05"))
	date := formatter.Dim(v.now.Format("Monday, January 2"))

	var body strings.Builder
	body.WriteString("Hello, " + formatter.UserBadge(u.Avatar, u.Name, u.Color) + "\n\n")
	body.WriteString(clock + "  " + date + "\n\n")
	body.WriteString(formatter.DutyBanner(v.active, u.ID) + "\n")
	if v.active != nil {
		body.WriteString(formatter.Dim("Started "+formatter.ClockTime(v.active.StartTime)) + "  " +
			formatter.Bold(domain.FormatDuration(v.active.StartTime, v.now)) + "\n")
	}
	body.WriteString("\n")
	if v.isMine() {
		body.WriteString(formatter.StyleRed.Render("[o] Clock out"))
	} else {
		body.WriteString(formatter.StyleGreen.Render("[s] Start shift"))
	}

	out := "\n" + formatter.RenderBox("On Duty", body.String()) + "\n"
	if v.notice != "" {
		out += "\n  " + v.notice + "\n"
	}
	return out
}
