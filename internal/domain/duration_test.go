package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	start := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"zero", start, "0m"},
		{"90 seconds floors to a minute", start.Add(90 * time.Second), "1m"},
		{"59 seconds", start.Add(59 * time.Second), "0m"},
		{"hour and a minute", start.Add(3661 * time.Second), "1h 1m"},
		{"exact hour keeps minutes", start.Add(2 * time.Hour), "2h 0m"},
		{"45 minutes", start.Add(45 * time.Minute), "45m"},
		{"negative", start.Add(-10 * time.Minute), "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(start, tt.end))
		})
	}
}

func TestFormatSpan_SumOfShifts(t *testing.T) {
	assert.Equal(t, "1h 15m", FormatSpan(30*time.Minute+45*time.Minute))
}
