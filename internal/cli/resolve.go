package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resolveUser finds a roster entry by:
//   - exact ID
//   - case-insensitive display name
//   - unique ID prefix
func resolveUser(ctx context.Context, app *App, input string) (*domain.User, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, domain.NewValidationError("user is required")
	}

	u, err := app.Roster.GetUser(ctx, input)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	users, err := app.Roster.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var byName []*domain.User
	for _, u := range users {
		if strings.EqualFold(u.Name, input) {
			byName = append(byName, u)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("%d users are named %q, use an ID instead", len(byName), input)
	}

	var byPrefix []*domain.User
	for _, u := range users {
		if strings.HasPrefix(u.ID, input) {
			byPrefix = append(byPrefix, u)
		}
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return nil, fmt.Errorf("ID prefix %q matches %d users", input, len(byPrefix))
	}
	return nil, fmt.Errorf("user %q: %w", input, repository.ErrNotFound)
}

// userFlag registers the required --user/-u flag on fs.
func userFlag(cmd *cobra.Command, fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "user", "u", "", "User name or ID")
	_ = cmd.MarkFlagRequired("user")
}
