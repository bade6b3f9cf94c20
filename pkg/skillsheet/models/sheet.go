package models

import "strings"

// Grid is read-only access to a 2-D cell grid.
type Grid interface {
	// RowCount returns the number of rows.
	RowCount() int
	// ColCount returns the width of the widest row.
	ColCount() int
	// CellAt returns the cell at (row, col), or an empty cell when out of range.
	CellAt(row, col int) Cell
	// IsEmpty reports whether (row, col) is blank or out of range.
	IsEmpty(row, col int) bool
}

// MergeRange is a merged block of cells, zero-based and inclusive.
type MergeRange struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// Contains reports whether (row, col) lies inside the range.
func (m MergeRange) Contains(row, col int) bool {
	return row >= m.R1 && row <= m.R2 && col >= m.C1 && col <= m.C2
}

// Sheet is one worksheet of a document.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Merges lists merged cell ranges.
	Merges []MergeRange
	// TextBoxes holds text found in drawing shapes anchored on the sheet.
	TextBoxes []string
	// PrintAreas lists the sheet's print ranges in A1 notation.
	PrintAreas []string

	rows [][]Cell
	cols int
}

// NewSheet builds a sheet from rows of Go values (see NewCell).
func NewSheet(name string, values [][]any) *Sheet {
	rows := make([][]Cell, len(values))
	for r, vals := range values {
		row := make([]Cell, len(vals))
		for c, v := range vals {
			row[c] = NewCell(r, c, v)
		}
		rows[r] = row
	}
	return NewSheetFromCells(name, rows)
}

// NewSheetFromCells builds a sheet from typed rows. Row and column indexes
// of each cell are reset to its position.
func NewSheetFromCells(name string, rows [][]Cell) *Sheet {
	s := &Sheet{Name: name, rows: rows}
	for r, row := range rows {
		for c := range row {
			row[c].Row, row[c].Col = r, c
		}
		if len(row) > s.cols {
			s.cols = len(row)
		}
	}
	return s
}

// RowCount implements Grid.
func (s *Sheet) RowCount() int {
	return len(s.rows)
}

// ColCount implements Grid.
func (s *Sheet) ColCount() int {
	return s.cols
}

// CellAt implements Grid.
func (s *Sheet) CellAt(row, col int) Cell {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return Cell{Row: row, Col: col}
	}
	return s.rows[row][col]
}

// IsEmpty implements Grid.
func (s *Sheet) IsEmpty(row, col int) bool {
	return s.CellAt(row, col).IsEmpty()
}

// HasData reports whether any cell is non-empty.
func (s *Sheet) HasData() bool {
	for _, row := range s.rows {
		for _, c := range row {
			if !c.IsEmpty() {
				return true
			}
		}
	}
	return false
}

// MergeAt returns the merged range whose top-left cell is (row, col).
func (s *Sheet) MergeAt(row, col int) (MergeRange, bool) {
	for _, m := range s.Merges {
		if m.R1 == row && m.C1 == col {
			return m, true
		}
	}
	return MergeRange{}, false
}

// RowText joins the non-empty cells of a row with single spaces.
func (s *Sheet) RowText(row int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	var parts []string
	for _, c := range s.rows[row] {
		if v := c.Trimmed(); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// Text returns the whole sheet as text, one line per row, followed by any
// text box content.
func (s *Sheet) Text() string {
	var b strings.Builder
	for r := range s.rows {
		b.WriteString(s.RowText(r))
		b.WriteByte('\n')
	}
	for _, t := range s.TextBoxes {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.String()
}
