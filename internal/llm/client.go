package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backend can be called at all.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg, observer)
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// callFunc performs one attempt and returns the text and serving model.
type callFunc func(ctx context.Context, temperature float64, maxTokens int) (text, model string, err error)

// generate applies task defaults, a per-attempt timeout and the retry
// budget around call, and reports the outcome to observer.
func generate(ctx context.Context, cfg LLMConfig, observer Observer, req GenerateRequest, call callFunc) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeout := time.Duration(cfg.TaskTimeout(req.Task)) * time.Millisecond

	event := LLMCallEvent{
		Task:     req.Task,
		Provider: cfg.Provider,
		Model:    cfg.EffectiveModel(),
	}

	var lastErr error
	attempts := 1 + cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		event.Attempts = i + 1
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, model, err := call(attemptCtx, temp, maxTok)
		cancel()
		if err == nil {
			if model == "" {
				model = event.Model
			}
			latency := time.Since(start).Milliseconds()
			event.Model = model
			event.LatencyMs = latency
			event.Success = true
			observer.OnCallComplete(event)
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
		}
		lastErr = err

		// Don't retry once the caller has given up
		if ctx.Err() != nil {
			break
		}
	}

	switch {
	case ctx.Err() != nil || errors.Is(lastErr, context.DeadlineExceeded):
		lastErr = ErrTimeout
	case isConnectionError(lastErr):
		lastErr = fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	default:
		lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = errorCode(lastErr)
	observer.OnCallComplete(event)
	return nil, lastErr
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrMissingCredential):
		return "NO_CREDENTIAL"
	default:
		return "UNKNOWN"
	}
}
