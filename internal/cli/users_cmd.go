package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage the roster",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersAddCmd(app),
		newUsersRenameCmd(app),
		newUsersRemoveCmd(app),
	)

	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			users, err := app.Roster.ListUsers(ctx)
			if err != nil {
				return err
			}
			active, err := app.Shifts.Active(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUsers(users, active))
			return nil
		},
	}
}

func newUsersAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a user to the roster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Roster.CreateUser(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.UserBadge(u.Avatar, u.Name, u.Color),
				formatter.TruncID(u.ID))
			return nil
		},
	}
}

func newUsersRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <user> <new name>",
		Short: "Change a user's display name",
		Long: `Change a user's display name. Shifts already recorded keep the
name the user had when they clocked in.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, args[0])
			if err != nil {
				return err
			}
			renamed, err := app.Roster.RenameUser(ctx, u.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Renamed %s to %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(u.Name),
				formatter.UserBadge(renamed.Avatar, renamed.Name, renamed.Color))
			return nil
		},
	}
}

func newUsersRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <user>",
		Aliases: []string{"rm"},
		Short:   "Remove a user from the roster",
		Long: `Remove a user from the roster. Their recorded shifts stay in the
history and show up as Unknown in the admin totals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roster.DeleteUser(ctx, u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(u.Name))
			return nil
		},
	}
}
