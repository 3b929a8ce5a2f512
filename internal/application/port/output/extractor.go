package output

import (
	"context"

	"quiz-solver/internal/domain/entity"
)

type ExtractorPort interface {
	// Download fetches the data URL and normalizes the body by declared
	// content type or URL suffix.
	Download(ctx context.Context, url string) (*entity.NormalizedData, error)
}
