package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Hours per user and shift history",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "totals",
			Short: "Total logged time per user, open shifts included",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				totals, err := app.Admin.UserTotals(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(totals))
				return nil
			},
		},
		&cobra.Command{
			Use:   "history",
			Short: "Every shift, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := app.Admin.History(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries, app.now()))
				return nil
			},
		},
	)

	return cmd
}

func newReportCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "AI summary of today's shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Writing today's report...")
			}
			text, err := dailyReport(ctx, app)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintln(out, text)
				return nil
			}
			fmt.Fprint(out, formatter.RenderMarkdown(text, width, formatter.CurrentTheme()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown without rendering it")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}

// dailyReport gathers the ledger and roster and asks the report service for
// today's summary. Only storage errors are returned; report failures are
// already folded into the text.
func dailyReport(ctx context.Context, app *App) (string, error) {
	logs, err := app.Shifts.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("loading shifts: %w", err)
	}
	users, err := app.Roster.ListUsers(ctx)
	if err != nil {
		return "", fmt.Errorf("loading users: %w", err)
	}
	return app.Report.DailyReport(ctx, logs, users), nil
}
