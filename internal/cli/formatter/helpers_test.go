package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDayLabel(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now.Add(-3 * time.Hour), "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"same year", time.Date(2026, 1, 15, 9, 0, 0, 0, time.Local), "Jan 15"},
		{"other year", time.Date(2025, 12, 30, 9, 0, 0, 0, time.Local), "Dec 30, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(tt.input, now))
		})
	}
}

func TestClockTime(t *testing.T) {
	assert.Equal(t, "09:05", ClockTime(time.Date(2026, 2, 7, 9, 5, 59, 0, time.Local)))
}

func TestUserBadge(t *testing.T) {
	got := UserBadge("🦊", "Alice", "orange")
	assert.Contains(t, got, "🦊")
	assert.Contains(t, got, "Alice")

	got = UserBadge("", "Ghost", "")
	assert.Contains(t, got, domain.UnknownAvatar)
}

func TestOnDutyPill(t *testing.T) {
	assert.Contains(t, OnDutyPill(true), "on duty")
	assert.Empty(t, OnDutyPill(false))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(domain.ThemeDark) })

	ApplyTheme(domain.ThemeLight)
	assert.Equal(t, domain.ThemeLight, CurrentTheme())
	assert.Equal(t, LightPalette.Header, ColorHeader)

	ApplyTheme(domain.ThemeDark)
	assert.Equal(t, domain.ThemeDark, CurrentTheme())
	assert.Equal(t, DarkPalette.Header, ColorHeader)

	ApplyTheme("neon")
	assert.Equal(t, domain.ThemeLight, CurrentTheme())
}

func TestUserColor(t *testing.T) {
	for _, tag := range domain.Colors {
		assert.NotPanics(t, func() { _ = UserColor(tag).Render("x") })
	}
}
