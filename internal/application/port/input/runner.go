package input

import (
	"context"

	"quiz-solver/internal/domain/entity"
)

type ChainRunner interface {
	Run(ctx context.Context, startURL string) (*entity.ChainResult, error)
}
