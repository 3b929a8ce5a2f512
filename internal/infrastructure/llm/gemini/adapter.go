package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/llm"
)

var _ output.LLMPort = (*GeminiAdapter)(nil)

// GeminiAdapter talks to the Gemini API directly. Generation settings match
// the OpenRouter adapter so provider choice does not change behavior.
type GeminiAdapter struct {
	client *genai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey string
	Model  string
	Logger output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  "gemini-2.0-flash-exp",
	}
}

func NewGeminiAdapter(ctx context.Context, cfg Config) (*GeminiAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}

	return &GeminiAdapter{
		client: client,
		model:  model,
		logger: cfg.Logger,
	}, nil
}

func (a *GeminiAdapter) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		TopK:            genai.Ptr[float32](40),
		MaxOutputTokens: 4096,
	}
}

func (a *GeminiAdapter) Query(ctx context.Context, prompt string, format output.QueryFormat) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), a.generationConfig())
	if err != nil {
		return "", fmt.Errorf("%w: generate content: %v", entity.ErrModelQuery, err)
	}

	result := resp.Text()
	if result == "" {
		return "", fmt.Errorf("%w: empty response", entity.ErrModelQuery)
	}

	if format == output.QueryJSON {
		result = llm.ExtractJSON(result)
	}
	return result, nil
}

func (a *GeminiAdapter) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, a.generationConfig())
	if err != nil {
		return "", fmt.Errorf("%w: vision analysis: %v", entity.ErrModelQuery, err)
	}

	result := resp.Text()
	if result == "" {
		return "", fmt.Errorf("%w: empty vision response", entity.ErrModelQuery)
	}
	return result, nil
}
