package entity

type DataKind int

const (
	DataNone DataKind = iota
	DataTable
	DataStructured
	DataDocument
	DataText
)

// Table is a rows-by-named-columns view over CSV, Excel and PDF tables.
type Table struct {
	Columns []string
	Rows    [][]string
}

// DocumentTable is a table recovered from a specific page of a document.
type DocumentTable struct {
	Page  int
	Index int
	Table Table
}

// Document is extracted PDF content: page-delimited text plus any tables
// that survived recovery.
type Document struct {
	Text   string
	Tables []DocumentTable
}

// NormalizedData is the tagged union over everything a data URL can resolve
// to. Exactly the field matching Kind is set; the rest are zero.
type NormalizedData struct {
	Kind       DataKind
	Table      *Table
	Structured any
	Document   *Document
	Text       string
}

func NewTableData(t *Table) *NormalizedData {
	return &NormalizedData{Kind: DataTable, Table: t}
}

func NewStructuredData(v any) *NormalizedData {
	return &NormalizedData{Kind: DataStructured, Structured: v}
}

func NewDocumentData(d *Document) *NormalizedData {
	return &NormalizedData{Kind: DataDocument, Document: d}
}

func NewTextData(s string) *NormalizedData {
	return &NormalizedData{Kind: DataText, Text: s}
}
