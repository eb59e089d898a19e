package domain

import "strings"

type User struct {
	ID     string
	Name   string
	Avatar string // emoji glyph
	Color  string // display tag
}

// Avatars is the fixed avatar palette new users draw from.
var Avatars = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨",
	"🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🦄", "🐝", "🐙",
}

// Colors is the fixed display-tag palette new users draw from.
var Colors = []string{
	"yellow", "orange", "blue", "green", "purple", "pink", "indigo", "teal",
}

// UnknownAvatar stands in for users that were removed from the roster.
const UnknownAvatar = "👤"

// PaletteFor picks the avatar and color for the n-th user created.
func PaletteFor(n int) (avatar, color string) {
	if n < 0 {
		n = -n
	}
	return Avatars[n%len(Avatars)], Colors[(n*5)%len(Colors)]
}

// NormalizeName trims a display name and rejects blank ones.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name is required")
	}
	return trimmed, nil
}
