package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewUserSelect ViewID = iota
	ViewDashboard
	ViewAdmin
	ViewForm
)

func (id ViewID) String() string {
	switch id {
	case ViewUserSelect:
		return "user_select"
	case ViewDashboard:
		return "dashboard"
	case ViewAdmin:
		return "admin"
	case ViewForm:
		return "form"
	default:
		return "unknown"
	}
}

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
