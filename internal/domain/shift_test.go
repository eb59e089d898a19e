package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestShiftRecord_Close(t *testing.T) {
	s := &ShiftRecord{ID: "s1", UserID: "u1", StartTime: testNow}
	assert.True(t, s.IsOpen())

	end := testNow.Add(time.Hour)
	require.NoError(t, s.Close(end))
	assert.False(t, s.IsOpen())
	assert.Equal(t, end, *s.EndTime)
}

func TestShiftRecord_CloseTwice(t *testing.T) {
	s := &ShiftRecord{ID: "s1", StartTime: testNow}
	require.NoError(t, s.Close(testNow.Add(time.Minute)))

	err := s.Close(testNow.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, testNow.Add(time.Minute), *s.EndTime, "end time must not move")
}

func TestShiftRecord_CloseAfterClockStepBack(t *testing.T) {
	s := &ShiftRecord{ID: "s1", StartTime: testNow}
	require.NoError(t, s.Close(testNow.Add(-2*time.Minute)))

	assert.False(t, s.IsOpen())
	assert.Equal(t, "0m", FormatDuration(s.StartTime, *s.EndTime))
}

func TestShiftRecord_Elapsed(t *testing.T) {
	open := &ShiftRecord{StartTime: testNow}
	assert.Equal(t, 2*time.Hour, open.Elapsed(testNow.Add(2*time.Hour)))

	end := testNow.Add(30 * time.Minute)
	closed := &ShiftRecord{StartTime: testNow, EndTime: &end}
	assert.Equal(t, 30*time.Minute, closed.Elapsed(testNow.Add(5*time.Hour)))
}

func TestShiftRecord_CloneIsDeep(t *testing.T) {
	end := testNow.Add(time.Hour)
	s := &ShiftRecord{ID: "s1", StartTime: testNow, EndTime: &end}

	c := s.Clone()
	*c.EndTime = testNow.Add(3 * time.Hour)
	assert.Equal(t, testNow.Add(time.Hour), *s.EndTime)
}

func TestInstant_TruncatesToMillis(t *testing.T) {
	in := time.Date(2025, 6, 15, 10, 0, 0, 123456789, time.UTC)
	got := Instant(in)
	assert.Equal(t, in.UnixMilli(), got.UnixMilli())
	assert.Equal(t, 123000000, got.Nanosecond())
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)
	in := time.Date(2025, 6, 15, 17, 45, 3, 0, loc)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), StartOfDay(in))
}

func TestErrActiveShiftExists_IsValidation(t *testing.T) {
	var ve *ValidationError
	require.True(t, errors.As(ErrActiveShiftExists, &ve))
	assert.True(t, errors.Is(ErrActiveShiftExists, ErrValidation))
}
