package solver

import (
	"context"
	"encoding/json"
	"fmt"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/prompts"
	"quiz-solver/internal/usecase/analyzer"
)

const questionExcerptLen = 500

type DataAnalyzer interface {
	Analyze(ctx context.Context, data *entity.NormalizedData, task string) (string, error)
}

// UseCase turns rendered question text into a typed answer and a submission
// target.
type UseCase struct {
	llm       output.LLMPort
	extractor output.ExtractorPort
	analyzer  DataAnalyzer
	logger    output.LoggerPort
}

func New(llm output.LLMPort, extractor output.ExtractorPort, dataAnalyzer DataAnalyzer, logger output.LoggerPort) *UseCase {
	return &UseCase{
		llm:       llm,
		extractor: extractor,
		analyzer:  dataAnalyzer,
		logger:    logger,
	}
}

// Solve returns the formatted answer and the submission URL. The submission
// URL can be empty when no parse path found one; the caller sees that as-is.
func (uc *UseCase) Solve(ctx context.Context, questionText string) (any, string, error) {
	parsed := uc.parseQuestion(ctx, questionText)

	var data *entity.NormalizedData
	if parsed.DataURL != "" {
		d, err := uc.extractor.Download(ctx, parsed.DataURL)
		if err != nil {
			// Degrades to answering from the question text alone.
			uc.logger.Warn("Data download failed, continuing without data",
				"url", parsed.DataURL, "error", err)
		} else {
			data = d
		}
	}

	task := parsed.Task
	if task == "" {
		task = questionText
	}

	var answer any
	if data != nil {
		text, err := uc.analyzer.Analyze(ctx, data, task)
		if err != nil {
			return nil, "", fmt.Errorf("solve with data: %w", err)
		}
		answer = text
	} else {
		prompt := prompts.DirectAnswer(task, excerpt(questionText, questionExcerptLen), string(parsed.Format()))
		raw, err := uc.llm.Query(ctx, prompt, output.QueryText)
		if err != nil {
			return nil, "", fmt.Errorf("solve directly: %w", err)
		}
		answer = analyzer.CleanAnswer(raw)
	}

	uc.logger.Info("Answer calculated", "answer", answer, "format", parsed.Format())
	return coerceAnswer(answer, parsed.Format()), parsed.SubmitURL, nil
}

// parseQuestion asks the model for the four-field JSON interpretation and
// degrades to the deterministic regex parser on any model or decode failure.
func (uc *UseCase) parseQuestion(ctx context.Context, questionText string) *entity.ParsedQuestion {
	raw, err := uc.llm.Query(ctx, prompts.ParseQuestion(questionText), output.QueryJSON)
	if err != nil {
		uc.logger.Warn("Question parse query failed, using regex fallback", "error", err)
		return fallbackParse(questionText)
	}

	var parsed entity.ParsedQuestion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		uc.logger.Warn("Model returned invalid question JSON, using regex fallback", "error", err)
		return fallbackParse(questionText)
	}

	uc.logger.Info("Question parsed",
		"task", excerpt(parsed.Task, 80),
		"dataURL", parsed.DataURL,
		"submitURL", parsed.SubmitURL,
		"format", parsed.Format())
	return &parsed
}

func excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
