package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/charmbracelet/glamour"
)

const totalsShareWidth = 10

// ActiveLabel replaces the end column for a shift that is still open.
const ActiveLabel = "Active"

// FormatUsers renders the roster as a table, flagging the on-duty user.
func FormatUsers(users []*domain.User, active *domain.ShiftRecord) string {
	if len(users) == 0 {
		return Dim("No users yet. Add one with: joyshift users add <name>") + "\n"
	}
	cols := Cols("USER", "ID", "")
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		onDuty := active != nil && active.UserID == u.ID
		rows = append(rows, []string{
			UserBadge(u.Avatar, u.Name, u.Color),
			TruncID(u.ID),
			OnDutyPill(onDuty),
		})
	}
	return RenderTable(cols, rows)
}

// DutyBanner describes who holds the open shift from viewer's point of view.
// An empty viewerID renders the neutral form.
func DutyBanner(active *domain.ShiftRecord, viewerID string) string {
	switch {
	case active == nil:
		return Dim("No one is on duty")
	case viewerID != "" && active.UserID == viewerID:
		return StyleGreen.Render("● You are on duty")
	default:
		return StyleYellow.Render(fmt.Sprintf("● %s is on duty", active.UserName))
	}
}

// FormatShiftStatus renders the open shift, if any, with its running time.
func FormatShiftStatus(active *domain.ShiftRecord, now time.Time) string {
	if active == nil {
		return RenderBox("Status", DutyBanner(nil, ""))
	}
	var b strings.Builder
	b.WriteString(DutyBanner(active, "") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Since:  "), StyleFg.Render(DayLabel(active.StartTime, now)+" "+ClockTime(active.StartTime))))
	b.WriteString(fmt.Sprintf("%s %s", Dim("Elapsed:"), Bold(domain.FormatDuration(active.StartTime, now))))
	return RenderBox("Status", b.String())
}

// FormatStartResult renders the outcome of a clock-in request.
func FormatStartResult(res *service.StartResult) string {
	switch res.Outcome {
	case service.OutcomeStarted:
		return fmt.Sprintf("%s Shift started for %s at %s",
			StyleGreen.Render("✔"), Bold(res.Shift.UserName), ClockTime(res.Shift.StartTime))
	case service.OutcomeTookOver:
		return fmt.Sprintf("%s %s took over from %s at %s",
			StyleGreen.Render("✔"), Bold(res.Shift.UserName), Bold(res.Previous.UserName), ClockTime(res.Shift.StartTime))
	case service.OutcomeAlreadyOnDuty:
		return StyleYellow.Render("You are already on duty.")
	case service.OutcomeTakeoverRequired:
		return StyleYellow.Render(TakeoverPrompt(res.Previous))
	default:
		return res.Outcome.String()
	}
}

// TakeoverPrompt asks whether to end someone else's open shift.
func TakeoverPrompt(previous *domain.ShiftRecord) string {
	name := "Someone"
	if previous != nil {
		name = previous.UserName
	}
	return fmt.Sprintf("%s is currently on duty. End their shift and start yours?", name)
}

// FormatShiftEnded renders a clock-out confirmation.
func FormatShiftEnded(rec *domain.ShiftRecord) string {
	return fmt.Sprintf("%s Shift ended for %s after %s",
		StyleGreen.Render("✔"), Bold(rec.UserName), Bold(domain.FormatDuration(rec.StartTime, *rec.EndTime)))
}

// FormatTotals renders per-user accumulated hours.
func FormatTotals(totals []service.UserTotal) string {
	if len(totals) == 0 {
		return Dim("No shifts recorded yet.") + "\n"
	}
	var all time.Duration
	for _, t := range totals {
		all += t.Total
	}
	cols := []Column{{Title: "USER"}, {Title: "TOTAL", Right: true}, {Title: "SHARE"}, {}}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		share := 0.0
		if all > 0 {
			share = float64(t.Total) / float64(all)
		}
		rows = append(rows, []string{
			t.Avatar + " " + Bold(t.Name),
			StyleFg.Render(domain.FormatSpan(t.Total)),
			RenderShare(share, totalsShareWidth),
			OnDutyPill(t.OnDuty),
		})
	}
	return RenderTable(cols, rows)
}

// FormatHistory renders every shift, newest first.
func FormatHistory(entries []service.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No shifts recorded yet.") + "\n"
	}
	cols := append(Cols("USER", "DATE", "START", "END"), Column{Title: "DURATION", Right: true})
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		s := e.Shift
		end := StyleGreen.Render(ActiveLabel)
		duration := domain.FormatDuration(s.StartTime, now)
		if s.EndTime != nil {
			end = ClockTime(*s.EndTime)
			duration = domain.FormatDuration(s.StartTime, *s.EndTime)
		}
		rows = append(rows, []string{
			e.Avatar + " " + s.UserName,
			Dim(DayLabel(s.StartTime, now)),
			ClockTime(s.StartTime),
			end,
			duration,
		})
	}
	return RenderTable(cols, rows)
}

// RenderMarkdown renders report markdown for the terminal. It falls back to
// the raw text when the renderer cannot be built.
func RenderMarkdown(md string, width int, theme string) string {
	if width <= 0 {
		width = 80
	}
	style := "light"
	if domain.NormalizeTheme(theme) == domain.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
