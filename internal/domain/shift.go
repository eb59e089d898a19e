package domain

import "time"

// ShiftRecord is one continuous span a single user was on duty.
// A nil EndTime marks the shift as still open.
type ShiftRecord struct {
	ID        string
	UserID    string
	UserName  string // captured at clock-in, not updated on rename
	StartTime time.Time
	EndTime   *time.Time
}

// IsOpen reports whether the shift has not been closed yet.
func (s *ShiftRecord) IsOpen() bool {
	return s.EndTime == nil
}

// Close sets EndTime. A shift is closed exactly once. at may precede
// StartTime when the wall clock stepped back; such spans render as 0m.
func (s *ShiftRecord) Close(at time.Time) error {
	if !s.IsOpen() {
		return NewValidationError("shift %s is already closed", s.ID)
	}
	end := at
	s.EndTime = &end
	return nil
}

// Elapsed returns the shift duration, using now as the end of an open shift.
func (s *ShiftRecord) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	return end.Sub(s.StartTime)
}

// Clone returns a deep copy so callers can't mutate ledger state through
// a returned pointer.
func (s *ShiftRecord) Clone() *ShiftRecord {
	c := *s
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return &c
}

// Instant truncates t to the millisecond precision the ledger persists.
func Instant(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli())
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
