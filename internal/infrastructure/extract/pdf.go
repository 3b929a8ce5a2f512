package extract

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"quiz-solver/internal/domain/entity"
)

// Text runs on the same baseline belong to one row; a horizontal gap wider
// than this many points starts a new cell.
const cellGap = 8.0

// extractPDF never fails once a response body exists: the layout pass may
// degrade to plain-text extraction, and that in turn may degrade to whatever
// text was accumulated before the failure.
func (e *HTTPExtractor) extractPDF(body []byte) *entity.Document {
	doc, err := extractLayout(body)
	if err == nil {
		return doc
	}
	e.logger.Warn("PDF layout extraction failed, trying plain text", "error", err)

	text, perr := extractPlainText(body)
	if perr != nil {
		e.logger.Warn("PDF plain text extraction also failed", "error", perr)
		return doc
	}
	if doc.Text == "" {
		doc.Text = text
	}
	doc.Tables = nil
	return doc
}

// extractLayout walks pages once, collecting delimited page text and
// recovering tables from positioned text runs. The pdf package panics on some
// malformed files, so the whole pass runs under recover; text gathered before
// the panic survives in doc.
func extractLayout(body []byte) (doc *entity.Document, err error) {
	doc = &entity.Document{}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("layout extraction panicked: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return doc, fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		if text, terr := page.GetPlainText(nil); terr == nil && strings.TrimSpace(text) != "" {
			pages = append(pages, fmt.Sprintf("=== Page %d ===\n%s", pageNum, text))
			doc.Text = strings.Join(pages, "\n\n")
		}

		for idx, candidate := range pageTables(page) {
			table, ok := buildTable(candidate)
			if !ok {
				// Malformed table: skip it, keep the rest of the page.
				continue
			}
			doc.Tables = append(doc.Tables, entity.DocumentTable{
				Page:  pageNum,
				Index: idx + 1,
				Table: table,
			})
		}
	}

	return doc, nil
}

// extractPlainText is the fallback path: a single whole-document text pass
// with no layout analysis.
func extractPlainText(body []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("plain text extraction panicked: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	r, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("plain text: %w", err)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}
	return string(raw), nil
}

type textRun struct {
	x, y, w float64
	s       string
}

// pageTables reconstructs candidate tables from a page's positioned text:
// runs sharing a baseline form a row, horizontal gaps split cells, and blocks
// of consecutive multi-cell rows become candidates.
func pageTables(page pdf.Page) [][][]string {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{x: t.X, y: t.Y, w: t.W, s: t.S})
	}

	var candidates [][][]string
	var block [][]string
	for _, row := range groupRows(runs) {
		cells := splitCells(row)
		if len(cells) >= 2 {
			block = append(block, cells)
			continue
		}
		if len(block) >= 2 {
			candidates = append(candidates, block)
		}
		block = nil
	}
	if len(block) >= 2 {
		candidates = append(candidates, block)
	}
	return candidates
}

// groupRows buckets runs by baseline (top to bottom) and orders each bucket
// left to right. PDF Y coordinates grow upward.
func groupRows(runs []textRun) [][]textRun {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].y != runs[j].y {
			return runs[i].y > runs[j].y
		}
		return runs[i].x < runs[j].x
	})

	var rows [][]textRun
	for _, run := range runs {
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			if math.Abs(last[0].y-run.y) < 2.0 {
				rows[len(rows)-1] = append(last, run)
				continue
			}
		}
		rows = append(rows, []textRun{run})
	}
	return rows
}

// splitCells joins adjacent runs and starts a new cell at every wide gap.
func splitCells(row []textRun) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := math.Inf(-1)

	for _, run := range row {
		if cell.Len() > 0 && run.x-prevEnd > cellGap {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		cell.WriteString(run.s)
		prevEnd = run.x + run.w
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}

	kept := cells[:0]
	for _, c := range cells {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

// buildTable promotes a candidate to a table: first row is the header, every
// data row must match its width, header cells must be non-empty.
func buildTable(rows [][]string) (entity.Table, bool) {
	if len(rows) < 2 {
		return entity.Table{}, false
	}

	header := rows[0]
	for _, col := range header {
		if strings.TrimSpace(col) == "" {
			return entity.Table{}, false
		}
	}

	data := rows[1:]
	for _, row := range data {
		if len(row) != len(header) {
			return entity.Table{}, false
		}
	}

	return entity.Table{Columns: header, Rows: data}, true
}
