package di

import (
	"context"
	"fmt"

	"quiz-solver/internal/application/port/input"
	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/infrastructure/browser/rodpage"
	"quiz-solver/internal/infrastructure/extract"
	"quiz-solver/internal/infrastructure/httpapi"
	"quiz-solver/internal/infrastructure/llm/gemini"
	"quiz-solver/internal/infrastructure/llm/openrouter"
	"quiz-solver/internal/infrastructure/logger"
	"quiz-solver/internal/infrastructure/submit"
	"quiz-solver/internal/usecase/analyzer"
	"quiz-solver/internal/usecase/chain"
	"quiz-solver/internal/usecase/solver"
)

type Config struct {
	Email  string
	Secret string
	Port   int

	LLMProvider      string // "gemini" or "openrouter"
	OpenRouterAPIKey string
	OpenRouterModel  string
	GeminiAPIKey     string
	GeminiModel      string

	BrowserHeadless bool
	Development     bool
}

type Container struct {
	Logger   output.LoggerPort
	LLM      output.LLMPort
	Renderer output.RendererPort
	Runner   input.ChainRunner
	Server   *httpapi.Server
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Development)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmPort, err := newLLM(ctx, cfg, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	rendererCfg := rodpage.DefaultConfig()
	rendererCfg.Headless = cfg.BrowserHeadless
	renderer := rodpage.NewPageRenderer(rendererCfg, log)

	extractor := extract.NewHTTPExtractor(log)
	submitter := submit.NewClient(cfg.Email, cfg.Secret, log)

	dataAnalyzer := analyzer.New(llmPort, log)
	questionSolver := solver.New(llmPort, extractor, dataAnalyzer, log)
	driver := chain.NewDriver(renderer, llmPort, questionSolver, submitter, log)

	server := httpapi.NewServer(httpapi.Config{Email: cfg.Email, Secret: cfg.Secret}, driver, log)

	return &Container{
		Logger:   log,
		LLM:      llmPort,
		Renderer: renderer,
		Runner:   driver,
		Server:   server,
	}, nil
}

func newLLM(ctx context.Context, cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.LLMProvider {
	case "openrouter":
		llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
		llmCfg.Logger = log
		return openrouter.NewOpenRouterAdapter(llmCfg), nil
	default:
		llmCfg := gemini.DefaultConfig(cfg.GeminiAPIKey)
		if cfg.GeminiModel != "" {
			llmCfg.Model = cfg.GeminiModel
		}
		llmCfg.Logger = log
		return gemini.NewGeminiAdapter(ctx, llmCfg)
	}
}

func (c *Container) Close() {
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
