package models

// Document is a loaded workbook: its non-empty sheets in workbook order.
type Document struct {
	// Path is the file the document was loaded from.
	Path string
	// Sheets holds every sheet with at least one non-empty cell.
	Sheets []*Sheet
}

// NewDocument returns a document holding the given sheets.
func NewDocument(path string, sheets ...*Sheet) *Document {
	return &Document{Path: path, Sheets: sheets}
}

