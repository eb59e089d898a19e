package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/llm"
	"go.uber.org/zap"
)

// User-facing report messages.
const (
	MsgMissingAPIKey  = "API Key is missing. Please check your environment configuration."
	MsgNoShiftsToday  = "No shifts recorded today yet."
	MsgAIUnavailable  = "Oops! AI is taking a nap. Please try again later."
	MsgEmptyReport    = "Could not generate report."
	stillWorkingLabel = "Still Working"
)

// ReportService writes the manager's daily summary. It never returns an
// error: every failure is turned into a message the UI can show as-is.
type ReportService interface {
	DailyReport(ctx context.Context, logs []*domain.ShiftRecord, users []*domain.User) string
}

// ReportOption configures NewReportService.
type ReportOption func(*reportService)

// WithReportClock replaces time.Now.
func WithReportClock(clock func() time.Time) ReportOption {
	return func(s *reportService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithReportLogger(logger *zap.Logger) ReportOption {
	return func(s *reportService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type reportService struct {
	client llm.LLMClient
	clock  func() time.Time
	logger *zap.Logger
}

// NewReportService creates a ReportService. A nil client means no provider
// credential is configured.
func NewReportService(client llm.LLMClient, opts ...ReportOption) ReportService {
	s := &reportService{client: client, clock: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// reportRow is one shift as the model sees it.
type reportRow struct {
	User     string `json:"user"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

func (s *reportService) DailyReport(ctx context.Context, logs []*domain.ShiftRecord, users []*domain.User) string {
	if s.client == nil {
		return MsgMissingAPIKey
	}

	now := s.clock()
	today := TodaysShifts(logs, now)
	if len(today) == 0 {
		return MsgNoShiftsToday
	}

	rows := make([]reportRow, 0, len(today))
	for _, rec := range today {
		rows = append(rows, toReportRow(rec, now))
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		s.logger.Warn("encoding report rows", zap.Error(err))
		return unavailableReport(today, users, now)
	}

	if !s.client.Available(ctx) {
		s.logger.Warn("daily report backend unavailable", zap.Int("shifts", len(today)))
		return unavailableReport(today, users, now)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReport,
		SystemPrompt: reportSystemPrompt,
		UserPrompt:   reportUserPromptPrefix + string(data),
	})
	if err != nil {
		s.logger.Warn("daily report generation failed", zap.Error(err), zap.Int("shifts", len(today)))
		return unavailableReport(today, users, now)
	}

	text := llm.CleanMarkdown(resp.Text)
	if text == "" {
		return MsgEmptyReport
	}
	return text
}

func unavailableReport(today []*domain.ShiftRecord, users []*domain.User, now time.Time) string {
	return MsgAIUnavailable + "\n\n" + DeterministicDailySummary(today, users, now)
}

// TodaysShifts keeps the records that started on or after local midnight
// of now's day, in ledger order.
func TodaysShifts(logs []*domain.ShiftRecord, now time.Time) []*domain.ShiftRecord {
	midnight := domain.StartOfDay(now)
	var today []*domain.ShiftRecord
	for _, rec := range logs {
		if !rec.StartTime.Before(midnight) {
			today = append(today, rec)
		}
	}
	return today
}

func toReportRow(rec *domain.ShiftRecord, now time.Time) reportRow {
	end := now
	endLabel := stillWorkingLabel
	if rec.EndTime != nil {
		end = *rec.EndTime
		endLabel = clockLabel(end)
	}
	return reportRow{
		User:     rec.UserName,
		Start:    clockLabel(rec.StartTime),
		End:      endLabel,
		Duration: domain.FormatDuration(rec.StartTime, end),
	}
}

func clockLabel(t time.Time) string {
	return t.In(time.Local).Format("15:04")
}

// DeterministicDailySummary builds a plain Markdown summary of today's
// shifts without the model.
func DeterministicDailySummary(today []*domain.ShiftRecord, users []*domain.User, now time.Time) string {
	if len(today) == 0 {
		return MsgNoShiftsToday
	}
	avatars := make(map[string]string, len(users))
	for _, u := range users {
		avatars[u.ID] = u.Avatar
	}

	type personTotal struct {
		name   string
		avatar string
		total  time.Duration
		onDuty bool
	}
	index := map[string]int{}
	var people []personTotal
	for _, rec := range today {
		i, ok := index[rec.UserID]
		if !ok {
			avatar, known := avatars[rec.UserID]
			if !known {
				avatar = domain.UnknownAvatar
			}
			i = len(people)
			index[rec.UserID] = i
			people = append(people, personTotal{name: rec.UserName, avatar: avatar})
		}
		people[i].total += rec.Elapsed(now)
		if rec.IsOpen() {
			people[i].onDuty = true
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Today so far** (%d shift", len(today))
	if len(today) != 1 {
		b.WriteString("s")
	}
	b.WriteString(")\n\n")

	longest := 0
	for i, p := range people {
		fmt.Fprintf(&b, "- %s **%s**: %s", p.avatar, p.name, domain.FormatSpan(p.total))
		if p.onDuty {
			b.WriteString(" (on duty)")
		}
		b.WriteString("\n")
		if p.total > people[longest].total {
			longest = i
		}
	}
	fmt.Fprintf(&b, "\nLongest on the clock: **%s** (%s).", people[longest].name, domain.FormatSpan(people[longest].total))
	return b.String()
}
