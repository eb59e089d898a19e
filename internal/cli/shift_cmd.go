package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var userRef string
	var takeover bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Clock in",
		Long: `Clock in as the given user. When someone else is on duty the
command stops and asks for --takeover, which ends their shift at the
moment yours begins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, userRef)
			if err != nil {
				return err
			}

			res, err := app.Shifts.RequestStart(ctx, u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Outcome != service.OutcomeTakeoverRequired {
				fmt.Fprintln(out, formatter.FormatStartResult(res))
				return nil
			}

			if !takeover {
				app.Shifts.CancelTakeover()
				fmt.Fprintln(out, formatter.FormatStartResult(res))
				fmt.Fprintln(out, formatter.Dim("Run again with --takeover to confirm."))
				return nil
			}

			res, err = app.Shifts.ConfirmTakeover(ctx, u)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatStartResult(res))
			return nil
		},
	}

	userFlag(cmd, cmd.Flags(), &userRef)
	cmd.Flags().BoolVar(&takeover, "takeover", false, "End another user's open shift and start yours")

	return cmd
}

func newEndCmd(app *App) *cobra.Command {
	var userRef string

	cmd := &cobra.Command{
		Use:     "end",
		Aliases: []string{"stop"},
		Short:   "Clock out",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, userRef)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rec, err := app.Shifts.RequestEnd(ctx, u)
			switch {
			case errors.Is(err, domain.ErrNoActiveShift):
				fmt.Fprintln(out, formatter.Dim("No one is on duty."))
				return nil
			case errors.Is(err, domain.ErrNotOnDuty):
				fmt.Fprintln(out, formatter.StyleYellow.Render(fmt.Sprintf("%s is not on duty.", u.Name)))
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintln(out, formatter.FormatShiftEnded(rec))
			return nil
		},
	}

	userFlag(cmd, cmd.Flags(), &userRef)

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is on duty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := app.Shifts.Active(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShiftStatus(active, app.now()))
			return nil
		},
	}
}
