package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DayLabel names the calendar day of t relative to now.
func DayLabel(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	if y1 == y2 {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

// ClockTime renders a wall-clock time as HH:MM.
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// UserBadge renders "avatar name" in the user's display color.
func UserBadge(avatar, name, color string) string {
	if avatar == "" {
		avatar = domain.UnknownAvatar
	}
	return avatar + " " + UserColor(color).Bold(true).Render(name)
}

// OnDutyPill marks a row whose shift is still open.
func OnDutyPill(onDuty bool) string {
	if onDuty {
		return StyleGreen.Render("● on duty")
	}
	return ""
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
