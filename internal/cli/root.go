package cli

import (
	"time"

	"github.com/alexanderramin/joyshift/internal/intelligence"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands
// and the TUI.
type App struct {
	Shifts service.ShiftService
	Roster service.RosterService
	Admin  service.AdminService
	Prefs  service.PreferencesService
	Report intelligence.ReportService

	Logger *zap.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal. When it returns
	// true, running joyshift with no subcommand opens the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) logger() *zap.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return zap.NewNop()
}

// NewRootCmd creates the top-level "joyshift" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "joyshift",
		Short:         "Shift clock-in tracker for a shared workstation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newUsersCmd(app),
		newStartCmd(app),
		newEndCmd(app),
		newStatusCmd(app),
		newAdminCmd(app),
		newReportCmd(app),
		newTUICmd(app),
	)

	return root
}
