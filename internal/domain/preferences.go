package domain

// Theme names accepted by the UI.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preferences holds workstation-wide UI settings.
type Preferences struct {
	Theme string
}

// ToggleTheme flips between dark and light.
func (p *Preferences) ToggleTheme() {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
		return
	}
	p.Theme = ThemeDark
}

// NormalizeTheme maps unknown values to the light theme.
func NormalizeTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
