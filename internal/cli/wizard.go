package cli

import (
	"fmt"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// joyshiftHuhTheme builds a huh theme from the active palette, so forms
// follow the dark/light toggle. Built per form, after ApplyTheme.
func joyshiftHuhTheme() *huh.Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	accent, text, dim, bad := formatter.ColorHeader, formatter.ColorFg, formatter.ColorDim, formatter.ColorRed

	t := huh.ThemeBase()

	f := &t.Focused
	f.Title = fg(accent).Bold(true)
	f.Description = fg(dim)
	f.ErrorIndicator = fg(bad)
	f.ErrorMessage = fg(bad)
	f.TextInput.Cursor = fg(accent)
	f.TextInput.Prompt = fg(accent)
	f.TextInput.Text = fg(text)
	f.TextInput.Placeholder = fg(dim)
	f.FocusedButton = fg(text).Background(accent).Bold(true).Padding(0, 2)
	f.BlurredButton = fg(dim).Padding(0, 2)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = fg(dim)
	t.Blurred.TextInput.Prompt = fg(dim)
	t.Blurred.TextInput.Text = fg(dim)

	return t
}

// validateName mirrors the roster's own check so the form can reject blank
// names before submitting.
func validateName(s string) error {
	if _, err := domain.NormalizeName(s); err != nil {
		return fmt.Errorf("enter a name")
	}
	return nil
}

// wizardInputName creates a form for a display name. result may carry a
// prefilled value.
func wizardInputName(title string, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("e.g. Alice").
				CharLimit(40).
				Value(result).
				Validate(validateName),
		),
	).WithTheme(joyshiftHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title, description string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(joyshiftHuhTheme()).WithShowHelp(false)
}
