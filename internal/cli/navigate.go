package cli

import (
	"fmt"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output to be displayed transiently over the
// active view until the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// themeChangedMsg reports a persisted theme switch.
type themeChangedMsg struct {
	theme string
	err   error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// wizardCompleteError pops the wizard and shows a formatted error.
func wizardCompleteError(err error) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(errorLine(err))}
}

// wizardCompleteOutput pops the wizard and shows msg.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}

// wizardCompleteThen pops the wizard and runs next.
func wizardCompleteThen(next tea.Cmd) tea.Msg {
	return wizardCompleteMsg{nextCmd: next}
}

// errorLine formats err for display inside the TUI.
func errorLine(err error) string {
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}
