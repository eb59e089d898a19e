package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai Models API the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiClient implements LLMClient on the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	models   contentGenerator
	observer Observer
}

// NewGeminiClient creates a Gemini-backed client. It fails with
// ErrMissingCredential when no API key is configured.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	cfg.Provider = ProviderGemini
	if !cfg.HasCredential() {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return newGeminiClient(cfg, client.Models, observer), nil
}

func newGeminiClient(cfg LLMConfig, models contentGenerator, observer Observer) *geminiClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.Provider = ProviderGemini
	return &geminiClient{cfg: cfg, models: models, observer: observer}
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	model := c.cfg.EffectiveModel()
	return generate(ctx, c.cfg, c.observer, req, func(ctx context.Context, temp float64, maxTok int) (string, string, error) {
		config := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(temp)),
		}
		if maxTok > 0 {
			config.MaxOutputTokens = int32(maxTok)
		}
		if strings.TrimSpace(req.SystemPrompt) != "" {
			config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
		}

		resp, err := c.models.GenerateContent(ctx, model, genai.Text(req.UserPrompt), config)
		if err != nil {
			return "", "", err
		}
		served := resp.ModelVersion
		if served == "" {
			served = model
		}
		return resp.Text(), served, nil
	})
}

// Available reports whether a key is configured; the API has no cheap
// health probe.
func (c *geminiClient) Available(context.Context) bool {
	return c.cfg.HasCredential()
}
