package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
)

var _ output.SubmitterPort = (*Client)(nil)

// Client posts answers to grading endpoints. Every failure mode short of a
// programming error is folded into a synthetic incorrect result so the chain
// keeps its own control flow.
type Client struct {
	email  string
	secret string
	client *http.Client
	logger output.LoggerPort
}

func NewClient(email, secret string, logger output.LoggerPort) *Client {
	return &Client{
		email:  email,
		secret: secret,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (c *Client) Submit(ctx context.Context, submitURL string, answer any) (*entity.SubmissionResult, error) {
	payload := map[string]any{
		"email":  c.email,
		"secret": c.secret,
		"answer": answer,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return synthetic(fmt.Sprintf("marshal payload: %v", err), ""), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitURL, bytes.NewReader(body))
	if err != nil {
		return synthetic(fmt.Sprintf("build request: %v", err), ""), nil
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Submitting answer", "url", submitURL)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Submission transport error", "url", submitURL, "error", err)
		return synthetic(err.Error(), ""), nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return synthetic(fmt.Sprintf("read response: %v", err), ""), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Submission rejected", "url", submitURL, "status", resp.StatusCode)
		return synthetic(fmt.Sprintf("HTTP %d", resp.StatusCode), string(respBody)), nil
	}

	var result entity.SubmissionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return synthetic(fmt.Sprintf("invalid response json: %v", err), string(respBody)), nil
	}
	return &result, nil
}

func synthetic(errMsg, details string) *entity.SubmissionResult {
	incorrect := false
	return &entity.SubmissionResult{
		Correct: &incorrect,
		Error:   errMsg,
		Details: details,
	}
}
