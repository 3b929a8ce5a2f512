package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"quiz-solver/internal/domain/entity"
)

const (
	maxTableRows     = 100
	maxTableCols     = 20
	maxDocumentChars = 2000
	maxRawChars      = 3000
)

// FormatForModel renders normalized data into the bounded text block embedded
// in the analysis prompt. Each variant has its own shape and truncation rule.
func FormatForModel(data *entity.NormalizedData) string {
	switch data.Kind {
	case entity.DataTable:
		return formatTableData(data.Table)
	case entity.DataDocument:
		return formatDocument(data.Document)
	case entity.DataStructured:
		return formatStructured(data.Structured)
	case entity.DataText:
		return clip(data.Text, maxRawChars)
	default:
		return ""
	}
}

func formatTableData(t *entity.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TABLE (%d rows × %d columns)\n\n", len(t.Rows), len(t.Columns))
	fmt.Fprintf(&sb, "Columns: %s\n\n", strings.Join(t.Columns, ", "))
	sb.WriteString("Data:\n")
	sb.WriteString(renderTable(t, maxTableRows, maxTableCols))
	return sb.String()
}

func formatDocument(doc *entity.Document) string {
	var sb strings.Builder
	sb.WriteString("PDF DOCUMENT\n\n")

	if doc.Text != "" {
		fmt.Fprintf(&sb, "TEXT CONTENT:\n%s\n\n", clip(doc.Text, maxDocumentChars))
	}

	if len(doc.Tables) > 0 {
		fmt.Fprintf(&sb, "TABLES (%d found):\n\n", len(doc.Tables))
		for i, dt := range doc.Tables {
			fmt.Fprintf(&sb, "--- Table %d (Page %d) ---\n", i+1, dt.Page)
			sb.WriteString(renderTable(&dt.Table, maxTableRows, len(dt.Table.Columns)))
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

func formatStructured(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return clip(fmt.Sprintf("%v", v), maxRawChars)
	}
	return clip(string(encoded), maxRawChars)
}

// renderTable prints an aligned preview limited to maxRows and maxCols, with
// a note for anything cut off.
func renderTable(t *entity.Table, maxRows, maxCols int) string {
	cols := t.Columns
	colsTruncated := false
	if maxCols > 0 && len(cols) > maxCols {
		cols = cols[:maxCols]
		colsTruncated = true
	}

	rows := t.Rows
	rowsCut := 0
	if len(rows) > maxRows {
		rowsCut = len(rows) - maxRows
		rows = rows[:maxRows]
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		parts := make([]string, len(cols))
		for i := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	writeRow(cols)
	for _, row := range rows {
		writeRow(row)
	}

	if rowsCut > 0 {
		fmt.Fprintf(&sb, "... (%d more rows)\n", rowsCut)
	}
	if colsTruncated {
		fmt.Fprintf(&sb, "... (%d more columns)\n", len(t.Columns)-maxCols)
	}
	return sb.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
