package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
)

var _ output.ExtractorPort = (*HTTPExtractor)(nil)

// HTTPExtractor downloads a data URL and normalizes the body. Classification
// is by declared content type first, then URL suffix, in fixed precedence:
// PDF, CSV, JSON, Excel, raw text.
type HTTPExtractor struct {
	client *http.Client
	logger output.LoggerPort
}

func NewHTTPExtractor(logger output.LoggerPort) *HTTPExtractor {
	return &HTTPExtractor{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (e *HTTPExtractor) Download(ctx context.Context, url string) (*entity.NormalizedData, error) {
	e.logger.Info("Downloading data", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", entity.ErrDownload, url, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", entity.ErrDownload, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: get %s: HTTP %d", entity.ErrDownload, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s: %v", entity.ErrDownload, url, err)
	}

	return e.normalize(body, resp.Header.Get("Content-Type"), url)
}

func (e *HTTPExtractor) normalize(body []byte, contentType, url string) (*entity.NormalizedData, error) {
	ct := strings.ToLower(contentType)
	lowerURL := strings.ToLower(url)

	switch {
	case strings.Contains(ct, "pdf") || strings.HasSuffix(lowerURL, ".pdf"):
		e.logger.Debug("Detected PDF format", "url", url)
		return entity.NewDocumentData(e.extractPDF(body)), nil

	case strings.Contains(ct, "csv") || strings.HasSuffix(lowerURL, ".csv"):
		e.logger.Debug("Detected CSV format", "url", url)
		table, err := parseCSV(body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse csv from %s: %v", entity.ErrDownload, url, err)
		}
		return entity.NewTableData(table), nil

	case strings.Contains(ct, "json") || strings.HasSuffix(lowerURL, ".json"):
		e.logger.Debug("Detected JSON format", "url", url)
		var value any
		if err := json.Unmarshal(body, &value); err != nil {
			return nil, fmt.Errorf("%w: parse json from %s: %v", entity.ErrDownload, url, err)
		}
		return entity.NewStructuredData(value), nil

	case strings.Contains(ct, "excel") || strings.Contains(ct, "spreadsheet") ||
		strings.HasSuffix(lowerURL, ".xlsx") || strings.HasSuffix(lowerURL, ".xls"):
		e.logger.Debug("Detected Excel format", "url", url)
		table, err := parseExcel(body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse excel from %s: %v", entity.ErrDownload, url, err)
		}
		return entity.NewTableData(table), nil

	default:
		e.logger.Debug("Treating response as text", "url", url)
		return entity.NewTextData(string(body)), nil
	}
}
