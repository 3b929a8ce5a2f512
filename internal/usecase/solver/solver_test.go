package solver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/logger"
)

type mockLLM struct {
	queryFn func(prompt string, format output.QueryFormat) (string, error)
}

func (m *mockLLM) Query(ctx context.Context, prompt string, format output.QueryFormat) (string, error) {
	return m.queryFn(prompt, format)
}

func (m *mockLLM) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	return "", errors.New("not implemented")
}

type mockExtractor struct {
	data    *entity.NormalizedData
	err     error
	lastURL string
	calls   int
}

func (m *mockExtractor) Download(ctx context.Context, url string) (*entity.NormalizedData, error) {
	m.calls++
	m.lastURL = url
	return m.data, m.err
}

type mockAnalyzer struct {
	answer   string
	err      error
	lastTask string
	calls    int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, data *entity.NormalizedData, task string) (string, error) {
	m.calls++
	m.lastTask = task
	return m.answer, m.err
}

func TestSolve_DirectAnswerPath(t *testing.T) {
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		if format == output.QueryJSON {
			return `{"data_url": null, "task": "What is 6 times 7?", "submit_url": "https://example.com/submit", "answer_format": "number"}`, nil
		}
		return "Answer: 42", nil
	}}
	extractor := &mockExtractor{}
	uc := New(llm, extractor, &mockAnalyzer{}, logger.NewNop())

	answer, submitURL, err := uc.Solve(context.Background(), "What is 6 times 7?")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if answer != int64(42) {
		t.Errorf("answer = %v (%T), want int64(42)", answer, answer)
	}
	if submitURL != "https://example.com/submit" {
		t.Errorf("submit URL = %q", submitURL)
	}
	if extractor.calls != 0 {
		t.Error("no data URL was given, extractor should not be called")
	}
}

func TestSolve_DataAnalysisPath(t *testing.T) {
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		return `{"data_url": "https://example.com/data.csv", "task": "Sum the amount column", "submit_url": "https://example.com/submit", "answer_format": "number"}`, nil
	}}
	extractor := &mockExtractor{data: entity.NewTableData(&entity.Table{Columns: []string{"amount"}})}
	dataAnalyzer := &mockAnalyzer{answer: "1234"}
	uc := New(llm, extractor, dataAnalyzer, logger.NewNop())

	answer, _, err := uc.Solve(context.Background(), "irrelevant")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if extractor.lastURL != "https://example.com/data.csv" {
		t.Errorf("downloaded %q", extractor.lastURL)
	}
	if dataAnalyzer.lastTask != "Sum the amount column" {
		t.Errorf("analyzer task = %q", dataAnalyzer.lastTask)
	}
	if answer != int64(1234) {
		t.Errorf("answer = %v (%T), want int64(1234)", answer, answer)
	}
}

func TestSolve_DownloadFailureDegradesToDirectAnswer(t *testing.T) {
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		if format == output.QueryJSON {
			return `{"data_url": "https://example.com/data.csv", "task": "Count the rows", "submit_url": "https://example.com/submit", "answer_format": "string"}`, nil
		}
		return "no data available", nil
	}}
	extractor := &mockExtractor{err: entity.ErrDownload}
	dataAnalyzer := &mockAnalyzer{}
	uc := New(llm, extractor, dataAnalyzer, logger.NewNop())

	answer, _, err := uc.Solve(context.Background(), "Count the rows")
	if err != nil {
		t.Fatalf("download failure must not be fatal: %v", err)
	}
	if dataAnalyzer.calls != 0 {
		t.Error("analyzer must not run without data")
	}
	if answer != "no data available" {
		t.Errorf("answer = %v", answer)
	}
}

func TestSolve_InvalidParseJSONUsesFallback(t *testing.T) {
	question := "Fetch https://example.com/d.csv and answer at https://example.com/submit"
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		if format == output.QueryJSON {
			return "sorry, I cannot do that", nil
		}
		return "7", nil
	}}
	extractor := &mockExtractor{data: entity.NewTextData("a,b,c")}
	dataAnalyzer := &mockAnalyzer{answer: "7"}
	uc := New(llm, extractor, dataAnalyzer, logger.NewNop())

	answer, submitURL, err := uc.Solve(context.Background(), question)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if extractor.lastURL != "https://example.com/d.csv" {
		t.Errorf("fallback should find the data URL, downloaded %q", extractor.lastURL)
	}
	if submitURL != "https://example.com/submit" {
		t.Errorf("submit URL = %q", submitURL)
	}
	if answer != "7" {
		t.Errorf("answer = %v", answer)
	}
}

func TestSolve_ModelFailureIsFatal(t *testing.T) {
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		if format == output.QueryJSON {
			return "", entity.ErrModelQuery
		}
		return "", entity.ErrModelQuery
	}}
	uc := New(llm, &mockExtractor{}, &mockAnalyzer{}, logger.NewNop())

	_, _, err := uc.Solve(context.Background(), "no urls here")
	if err == nil {
		t.Fatal("expected error when the answer query fails")
	}
	if !errors.Is(err, entity.ErrModelQuery) {
		t.Errorf("error should wrap ErrModelQuery, got %v", err)
	}
}

func TestSolve_EmptySubmitURLPassesThrough(t *testing.T) {
	llm := &mockLLM{queryFn: func(prompt string, format output.QueryFormat) (string, error) {
		if format == output.QueryJSON {
			return "{not json", nil
		}
		if !strings.Contains(prompt, "Answer this question directly") {
			t.Errorf("unexpected text prompt:\n%s", prompt)
		}
		return "whatever", nil
	}}
	uc := New(llm, &mockExtractor{}, &mockAnalyzer{}, logger.NewNop())

	_, submitURL, err := uc.Solve(context.Background(), "no urls at all")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if submitURL != "" {
		t.Errorf("submit URL = %q, want empty passthrough", submitURL)
	}
}
