package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls   int
	delay   time.Duration
	errs    []error
	text    string
	model   string
	config  *genai.GenerateContentConfig
	content []*genai.Content
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	f.content = contents
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if len(f.errs) >= f.calls && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.text, genai.RoleModel),
		}},
	}, nil
}

func geminiTestConfig() LLMConfig {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	return cfg
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	fake := &fakeModels{text: "# Report"}
	client := newGeminiClient(geminiTestConfig(), fake, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskReport,
		SystemPrompt: "you are an hr assistant",
		UserPrompt:   "summarize",
	})
	require.NoError(t, err)
	assert.Equal(t, "# Report", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)

	assert.Equal(t, "gemini-2.5-flash", fake.model)
	require.NotNil(t, fake.config.Temperature)
	assert.InDelta(t, 0.4, *fake.config.Temperature, 1e-6)
	assert.Equal(t, int32(2048), fake.config.MaxOutputTokens)
	require.NotNil(t, fake.config.SystemInstruction)
	assert.Equal(t, "you are an hr assistant", fake.config.SystemInstruction.Parts[0].Text)
	require.Len(t, fake.content, 1)
	assert.Equal(t, "summarize", fake.content[0].Parts[0].Text)
}

func TestGeminiClient_Generate_RetriesThenFails(t *testing.T) {
	boom := errors.New("quota exceeded")
	fake := &fakeModels{errs: []error{boom, boom}}
	var captured LLMCallEvent
	client := newGeminiClient(geminiTestConfig(), fake, &captureObserver{fn: func(e LLMCallEvent) { captured = e }})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReport, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, ProviderGemini, captured.Provider)
	assert.Equal(t, 2, captured.Attempts)
	assert.Equal(t, "UNKNOWN", captured.ErrorCode)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	cfg := geminiTestConfig()
	cfg.MaxRetries = 0
	cfg.Tasks = map[TaskType]TaskConfig{TaskReport: {TimeoutMs: 20}}
	fake := &fakeModels{delay: time.Second}

	_, err := newGeminiClient(cfg, fake, nil).Generate(context.Background(), GenerateRequest{Task: TaskReport, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGeminiClient_Available(t *testing.T) {
	assert.True(t, newGeminiClient(geminiTestConfig(), &fakeModels{}, nil).Available(context.Background()))
	assert.False(t, newGeminiClient(DefaultConfig(), &fakeModels{}, nil).Available(context.Background()))
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrMissingCredential)
}
