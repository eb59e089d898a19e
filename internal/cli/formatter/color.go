package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of Gruvbox-inspired colors.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

var (
	DarkPalette = Palette{
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	}
	LightPalette = Palette{
		Green:  lipgloss.Color("#79740e"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Header: lipgloss.Color("#af3a03"),
	}
)

// Active colors. ApplyTheme swaps them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var currentTheme string

func init() {
	ApplyTheme(domain.ThemeDark)
}

// ApplyTheme switches the package palette to the named theme. Unknown
// names fall back to light.
func ApplyTheme(theme string) {
	currentTheme = domain.NormalizeTheme(theme)
	p := LightPalette
	if currentTheme == domain.ThemeDark {
		p = DarkPalette
	}

	ColorGreen, ColorYellow, ColorRed, ColorBlue = p.Green, p.Yellow, p.Red, p.Blue
	ColorPurple, ColorDim, ColorFg, ColorHeader = p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// CurrentTheme returns the theme last passed to ApplyTheme.
func CurrentTheme() string {
	return currentTheme
}

// UserColor maps a user's display tag to a style.
func UserColor(tag string) lipgloss.Style {
	switch tag {
	case "yellow", "orange":
		return StyleYellow
	case "blue", "indigo", "teal":
		return StyleBlue
	case "green":
		return StyleGreen
	case "purple", "pink":
		return StylePurple
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
