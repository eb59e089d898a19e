package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(LLMCallEvent{Task: TaskReport, Provider: ProviderGemini, Model: "m", LatencyMs: 12, Attempts: 1, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskReport, Provider: ProviderGemini, Model: "m", Attempts: 2, ErrorCode: "TIMEOUT"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "report", entries[0].ContextMap()["task"])
	assert.Equal(t, int64(12), entries[0].ContextMap()["latency_ms"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "TIMEOUT", entries[1].ContextMap()["error_code"])
}
