package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/logger"
)

func testServer(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload_CSVByContentType(t *testing.T) {
	srv := testServer(t, "text/csv", []byte("name,amount\na,10\nb,20\n"))
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/report")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if data.Kind != entity.DataTable {
		t.Fatalf("kind = %v, want table", data.Kind)
	}
	if len(data.Table.Columns) != 2 || data.Table.Columns[0] != "name" {
		t.Errorf("columns = %v", data.Table.Columns)
	}
	if len(data.Table.Rows) != 2 || data.Table.Rows[1][1] != "20" {
		t.Errorf("rows = %v", data.Table.Rows)
	}
}

func TestDownload_CSVByURLSuffix(t *testing.T) {
	srv := testServer(t, "application/octet-stream", []byte("x\n1\n"))
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/data.csv")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if data.Kind != entity.DataTable {
		t.Errorf("kind = %v, want table from URL suffix", data.Kind)
	}
}

func TestDownload_JSON(t *testing.T) {
	srv := testServer(t, "application/json", []byte(`{"items": [1, 2, 3]}`))
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/payload")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if data.Kind != entity.DataStructured {
		t.Fatalf("kind = %v, want structured", data.Kind)
	}
	obj, ok := data.Structured.(map[string]any)
	if !ok || obj["items"] == nil {
		t.Errorf("structured = %v", data.Structured)
	}
}

func TestDownload_Excel(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetSheetRow("Sheet1", "A1", &[]any{"name", "amount"})
	_ = f.SetSheetRow("Sheet1", "A2", &[]any{"a", 10})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	srv := testServer(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/book")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if data.Kind != entity.DataTable {
		t.Fatalf("kind = %v, want table", data.Kind)
	}
	if len(data.Table.Columns) != 2 || data.Table.Columns[1] != "amount" {
		t.Errorf("columns = %v", data.Table.Columns)
	}
	if len(data.Table.Rows) != 1 || data.Table.Rows[0][1] != "10" {
		t.Errorf("rows = %v", data.Table.Rows)
	}
}

func TestDownload_DefaultsToText(t *testing.T) {
	srv := testServer(t, "text/plain", []byte("just some words"))
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/notes")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if data.Kind != entity.DataText || data.Text != "just some words" {
		t.Errorf("data = %+v", data)
	}
}

func TestDownload_HTTPErrorIsDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	e := NewHTTPExtractor(logger.NewNop())

	_, err := e.Download(context.Background(), srv.URL+"/broken")
	if !errors.Is(err, entity.ErrDownload) {
		t.Errorf("error = %v, want ErrDownload", err)
	}
}

func TestDownload_TransportErrorIsDownloadFailure(t *testing.T) {
	e := NewHTTPExtractor(logger.NewNop())
	_, err := e.Download(context.Background(), "http://127.0.0.1:1/unreachable")
	if !errors.Is(err, entity.ErrDownload) {
		t.Errorf("error = %v, want ErrDownload", err)
	}
}

func TestDownload_GarbagePDFNeverErrors(t *testing.T) {
	// A received response must normalize even when both PDF passes fail.
	srv := testServer(t, "application/pdf", []byte("this is not a pdf"))
	e := NewHTTPExtractor(logger.NewNop())

	data, err := e.Download(context.Background(), srv.URL+"/report.pdf")
	if err != nil {
		t.Fatalf("pdf extraction must degrade, not fail: %v", err)
	}
	if data.Kind != entity.DataDocument {
		t.Fatalf("kind = %v, want document", data.Kind)
	}
	if data.Document.Text != "" || len(data.Document.Tables) != 0 {
		t.Errorf("expected empty document, got %+v", data.Document)
	}
}
