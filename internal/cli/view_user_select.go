package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// usersLoadedMsg signals that the roster and the open shift have been loaded.
type usersLoadedMsg struct {
	users  []*domain.User
	active *domain.ShiftRecord
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// userSelectView is the home screen: pick who is at the workstation.
type userSelectView struct {
	state   *SharedState
	users   []*domain.User
	active  *domain.ShiftRecord
	cursor  int
	loading bool
	err     error

	// The create form opens by itself once, for an empty roster.
	autoPrompted bool
}

func newUserSelectView(state *SharedState) *userSelectView {
	return &userSelectView{state: state, loading: true}
}

func (v *userSelectView) ID() ViewID    { return ViewUserSelect }
func (v *userSelectView) Title() string { return "Who's working?" }

func (v *userSelectView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
	if len(v.users) > 0 {
		bindings = append([]key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		}, bindings...)
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		)
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "admin")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	)
}

func (v *userSelectView) Init() tea.Cmd {
	return v.loadData()
}

func (v *userSelectView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		users, err := app.Roster.ListUsers(ctx)
		if err != nil {
			return usersLoadedMsg{err: err}
		}
		active, err := app.Shifts.Active(ctx)
		if err != nil {
			return usersLoadedMsg{err: err}
		}
		return usersLoadedMsg{users: users, active: active}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *userSelectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.users = msg.users
		v.active = msg.active
		if v.cursor >= len(v.users) {
			v.cursor = max(len(v.users)-1, 0)
		}
		if len(v.users) == 0 && !v.autoPrompted {
			v.autoPrompted = true
			return v, createUserCmd(v.state)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *userSelectView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.users)-1 {
			v.cursor++
		}
	case "enter":
		if u := v.selected(); u != nil {
			v.state.SelectUser(u)
			return v, pushView(newDashboardView(v.state))
		}
	case "n":
		return v, createUserCmd(v.state)
	case "e":
		if u := v.selected(); u != nil {
			return v, renameUserCmd(v.state, u)
		}
	case "x":
		if u := v.selected(); u != nil {
			return v, deleteUserCmd(v.state, u)
		}
	case "a":
		return v, pushView(newAdminView(v.state))
	case "t":
		return v, toggleThemeCmd(v.state.App)
	}
	return v, nil
}

func (v *userSelectView) selected() *domain.User {
	if v.cursor < 0 || v.cursor >= len(v.users) {
		return nil
	}
	return v.users[v.cursor]
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *userSelectView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Who's working?") + "\n\n")

	if len(v.users) == 0 {
		b.WriteString("  " + formatter.Dim("No one on the roster yet. Press n to add yourself.") + "\n")
		return b.String()
	}

	for i, u := range v.users {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		line := cursor + formatter.UserBadge(u.Avatar, u.Name, u.Color)
		if v.active != nil && v.active.UserID == u.ID {
			line += "  " + formatter.OnDutyPill(true)
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + formatter.DutyBanner(v.active, "") + "\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Theme: %s", v.state.Theme)) + "\n")
	return b.String()
}
