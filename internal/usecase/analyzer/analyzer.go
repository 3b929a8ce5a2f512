package analyzer

import (
	"context"
	"fmt"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/prompts"
)

// UseCase turns normalized data plus a task description into a clean answer
// by briefing the model with a bounded rendering of the data.
type UseCase struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, logger output.LoggerPort) *UseCase {
	return &UseCase{llm: llm, logger: logger}
}

func (uc *UseCase) Analyze(ctx context.Context, data *entity.NormalizedData, task string) (string, error) {
	block := FormatForModel(data)
	uc.logger.Debug("Analyzing data", "task", task, "blockChars", len(block))

	result, err := uc.llm.Query(ctx, prompts.Analysis(task, block), output.QueryText)
	if err != nil {
		return "", fmt.Errorf("analyze data: %w", err)
	}

	return CleanAnswer(result), nil
}
