package output

import "context"

type QueryFormat string

const (
	QueryText QueryFormat = "text"
	QueryJSON QueryFormat = "json"
)

type LLMPort interface {
	// Query sends one prompt and returns the raw completion text. With
	// QueryJSON the adapter additionally unwraps a JSON payload from
	// markdown fencing before returning it.
	Query(ctx context.Context, prompt string, format QueryFormat) (string, error)

	// AnalyzeImage answers a prompt about a JPEG screenshot.
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
}
