package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// createUserCmd opens the new-user form. The created user becomes the
// acting user and lands on the dashboard.
func createUserCmd(state *SharedState) tea.Cmd {
	var name string
	form := wizardInputName("What's your name?", &name)
	return pushView(newWizardView(state, "New User", form, func() tea.Cmd {
		return func() tea.Msg {
			u, err := state.App.Roster.CreateUser(context.Background(), name)
			if err != nil {
				return wizardCompleteError(err)
			}
			state.SelectUser(u)
			return wizardCompleteThen(pushView(newDashboardView(state)))
		}
	}))
}

// renameUserCmd opens a form prefilled with the user's current name.
func renameUserCmd(state *SharedState, u *domain.User) tea.Cmd {
	name := u.Name
	form := wizardInputName(fmt.Sprintf("Rename %s", u.Name), &name)
	return pushView(newWizardView(state, "Rename", form, func() tea.Cmd {
		return func() tea.Msg {
			renamed, err := state.App.Roster.RenameUser(context.Background(), u.ID, name)
			if err != nil {
				return wizardCompleteError(err)
			}
			if state.SelectedUser != nil && state.SelectedUser.ID == renamed.ID {
				state.SelectUser(renamed)
			}
			return wizardCompleteOutput(fmt.Sprintf("%s Renamed %s to %s",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(u.Name),
				formatter.UserBadge(renamed.Avatar, renamed.Name, renamed.Color)))
		}
	}))
}

// deleteUserCmd asks for confirmation, then removes the user. Recorded
// shifts are kept.
func deleteUserCmd(state *SharedState, u *domain.User) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(
		fmt.Sprintf("Remove %s from the roster?", u.Name),
		"Their past shifts stay in the history.",
		&confirmed,
	)
	return pushView(newWizardView(state, "Confirm Delete", form, func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg { return wizardCompleteOutput(formatter.Dim("Cancelled.")) }
		}
		return func() tea.Msg {
			if err := state.App.Roster.DeleteUser(context.Background(), u.ID); err != nil {
				return wizardCompleteError(err)
			}
			state.ClearSelectedUser(u.ID)
			return wizardCompleteOutput(fmt.Sprintf("%s Removed: %s",
				formatter.StyleGreen.Render("✔"), formatter.Bold(u.Name)))
		}
	}))
}

// toggleThemeCmd flips and persists the theme.
func toggleThemeCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		prefs, err := app.Prefs.ToggleTheme(context.Background())
		if err != nil {
			return cmdOutputMsg{output: errorLine(err)}
		}
		return themeChangedMsg{theme: prefs.Theme}
	}
}
