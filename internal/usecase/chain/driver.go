package chain

import (
	"context"
	"strings"
	"time"

	"quiz-solver/internal/application/port/input"
	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/prompts"
)

var _ input.ChainRunner = (*Driver)(nil)

const (
	defaultMaxQuestions = 20
	defaultStepDelay    = 500 * time.Millisecond
)

type QuestionSolver interface {
	Solve(ctx context.Context, questionText string) (answer any, submitURL string, err error)
}

// Driver walks a quiz chain: render, solve, submit, follow the returned URL.
// The loop is strictly sequential and hard-capped at MaxQuestions. Fatal
// errors stop the run but are recorded on the result, not re-raised; the
// boundary always gets a summary.
type Driver struct {
	renderer  output.RendererPort
	llm       output.LLMPort
	solver    QuestionSolver
	submitter output.SubmitterPort
	logger    output.LoggerPort

	// Overridable for tests; zero StepDelay disables the politeness pause.
	MaxQuestions int
	StepDelay    time.Duration
}

func NewDriver(
	renderer output.RendererPort,
	llm output.LLMPort,
	solver QuestionSolver,
	submitter output.SubmitterPort,
	logger output.LoggerPort,
) *Driver {
	return &Driver{
		renderer:     renderer,
		llm:          llm,
		solver:       solver,
		submitter:    submitter,
		logger:       logger,
		MaxQuestions: defaultMaxQuestions,
		StepDelay:    defaultStepDelay,
	}
}

func (d *Driver) Run(ctx context.Context, startURL string) (*entity.ChainResult, error) {
	d.logger.Info("Starting quiz chain", "url", startURL)

	result := &entity.ChainResult{}
	currentURL := startURL

	for currentURL != "" && result.QuestionsSolved < d.MaxQuestions {
		result.QuestionsSolved++
		log := d.logger.WithField("question", result.QuestionsSolved)
		log.Info("Fetching question", "url", currentURL)

		questionText, err := d.fetchQuestion(ctx, currentURL)
		if err != nil {
			log.Error("Chain run stopped", "error", err)
			result.LastError = err.Error()
			break
		}
		log.Info("Question fetched", "chars", len(questionText))

		answer, submitURL, err := d.solver.Solve(ctx, questionText)
		if err != nil {
			log.Error("Chain run stopped", "error", err)
			result.LastError = err.Error()
			break
		}

		sub, err := d.submitter.Submit(ctx, submitURL, answer)
		if err != nil {
			log.Error("Chain run stopped", "error", err)
			result.LastError = err.Error()
			break
		}

		if sub.IsCorrect() {
			log.Info("Answer accepted")
		} else {
			log.Info("Answer rejected", "error", sub.Error)
		}

		currentURL = sub.URL
		if currentURL == "" {
			log.Info("No next URL, chain complete")
			break
		}

		if d.StepDelay > 0 {
			time.Sleep(d.StepDelay)
		}
	}

	d.logger.Info("Quiz chain finished", "questionsSolved", result.QuestionsSolved, "lastError", result.LastError)
	return result, nil
}

// fetchQuestion renders the page; when the page yields no text at all the
// question may be drawn into a canvas or image, so a screenshot is
// transcribed through the vision path instead.
func (d *Driver) fetchQuestion(ctx context.Context, url string) (string, error) {
	content, err := d.renderer.RenderPage(ctx, url)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) != "" {
		return content, nil
	}

	d.logger.Warn("Rendered page has no text, transcribing screenshot", "url", url)

	img, err := d.renderer.Screenshot(ctx, url)
	if err != nil {
		d.logger.Warn("Screenshot failed, keeping empty content", "url", url, "error", err)
		return content, nil
	}

	transcribed, err := d.llm.AnalyzeImage(ctx, img, prompts.TranscribePage)
	if err != nil {
		d.logger.Warn("Vision transcription failed, keeping empty content", "url", url, "error", err)
		return content, nil
	}
	return transcribed, nil
}
