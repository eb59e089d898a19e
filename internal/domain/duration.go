package domain

import (
	"fmt"
	"time"
)

// FormatDuration renders the span between two instants as "1h 5m" or "5m".
// Partial minutes are dropped; zero and negative spans render as "0m".
func FormatDuration(start, end time.Time) string {
	return FormatSpan(end.Sub(start))
}

// FormatSpan renders a duration the same way FormatDuration does.
func FormatSpan(d time.Duration) string {
	mins := d.Milliseconds() / 60000
	if mins <= 0 {
		return "0m"
	}
	h, m := mins/60, mins%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
