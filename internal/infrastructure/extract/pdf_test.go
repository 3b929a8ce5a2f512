package extract

import (
	"testing"

	"quiz-solver/internal/domain/entity"
	"quiz-solver/internal/infrastructure/logger"
)

func TestBuildTable_Valid(t *testing.T) {
	table, ok := buildTable([][]string{
		{"name", "amount"},
		{"a", "10"},
		{"b", "20"},
	})
	if !ok {
		t.Fatal("expected a valid table")
	}
	if len(table.Columns) != 2 || len(table.Rows) != 2 {
		t.Errorf("table = %+v", table)
	}
}

func TestBuildTable_MalformedIsSkipped(t *testing.T) {
	// Data row width must match the header.
	if _, ok := buildTable([][]string{{"a", "b"}, {"1"}}); ok {
		t.Error("mismatched row width should be rejected")
	}
	// Header cells must be non-empty.
	if _, ok := buildTable([][]string{{"a", " "}, {"1", "2"}}); ok {
		t.Error("empty header cell should be rejected")
	}
	// A header alone is not a table.
	if _, ok := buildTable([][]string{{"a", "b"}}); ok {
		t.Error("header-only candidate should be rejected")
	}
}

func TestGroupRows_BaselineBuckets(t *testing.T) {
	runs := []textRun{
		{x: 10, y: 700, s: "name"},
		{x: 100, y: 700.5, s: "amount"},
		{x: 10, y: 680, s: "a"},
		{x: 100, y: 680, s: "10"},
	}

	rows := groupRows(runs)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0].s != "name" || rows[0][1].s != "amount" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][0].s != "a" {
		t.Errorf("second row = %v", rows[1])
	}
}

func TestSplitCells_GapStartsNewCell(t *testing.T) {
	row := []textRun{
		{x: 10, w: 5, s: "to"},
		{x: 15, w: 8, s: "tal"},
		{x: 120, w: 10, s: "100"},
	}

	cells := splitCells(row)
	if len(cells) != 2 {
		t.Fatalf("cells = %v, want 2", cells)
	}
	if cells[0] != "total" || cells[1] != "100" {
		t.Errorf("cells = %v", cells)
	}
}

func TestDocumentPartialTextSurvivesFailure(t *testing.T) {
	// extractPDF on garbage keeps whatever the layout pass accumulated,
	// which for an unreadable body is an empty document.
	e := NewHTTPExtractor(logger.NewNop())
	doc := e.extractPDF([]byte{0x01, 0x02, 0x03})
	if doc == nil {
		t.Fatal("document must never be nil")
	}
	if len(doc.Tables) != 0 {
		t.Errorf("tables = %v", doc.Tables)
	}
}

func TestTableEntitiesRoundTrip(t *testing.T) {
	d := entity.NewDocumentData(&entity.Document{Text: "x"})
	if d.Kind != entity.DataDocument || d.Document.Text != "x" {
		t.Errorf("document constructor mismatch: %+v", d)
	}
}
