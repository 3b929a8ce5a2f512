package output

import (
	"context"

	"quiz-solver/internal/domain/entity"
)

type SubmitterPort interface {
	// Submit posts the answer to the grading endpoint. Transport and HTTP
	// failures come back as a synthetic incorrect result, never as an error.
	Submit(ctx context.Context, submitURL string, answer any) (*entity.SubmissionResult, error)
}
