// Package models defines the grid and record types shared by the loader and
// the field extractors.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// CellType tags the kind of value a cell holds.
type CellType int

const (
	// CellEmpty is a blank cell or a cell holding only whitespace.
	CellEmpty CellType = iota
	// CellText is a string value.
	CellText
	// CellInt is an integral number.
	CellInt
	// CellFloat is a non-integral number.
	CellFloat
	// CellDate is a number the workbook formats as a date.
	CellDate
)

// String returns a lower-case name for the type.
func (t CellType) String() string {
	switch t {
	case CellText:
		return "text"
	case CellInt:
		return "int"
	case CellFloat:
		return "float"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// DateLayout is the textual form of date cells.
const DateLayout = "2006-01-02"

// Cell is a single typed grid position.
type Cell struct {
	// Row is the zero-based row index.
	Row int
	// Col is the zero-based column index.
	Col int
	// Type is the value kind.
	Type CellType
	// Text holds the value for text cells.
	Text string
	// Number holds the value for int and float cells, and the raw serial for date cells.
	Number float64
	// Date holds the value for date cells.
	Date time.Time
}

// NewCell builds a typed cell from a Go value.
// Strings that are blank become empty cells; numeric strings stay text.
func NewCell(row, col int, v any) Cell {
	c := Cell{Row: row, Col: col}
	switch val := v.(type) {
	case nil:
	case string:
		if strings.TrimSpace(val) != "" {
			c.Type = CellText
			c.Text = val
		}
	case int:
		c.Type = CellInt
		c.Number = float64(val)
	case int64:
		c.Type = CellInt
		c.Number = float64(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			break
		}
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			c.Type = CellInt
		} else {
			c.Type = CellFloat
		}
		c.Number = val
	case time.Time:
		c.Type = CellDate
		c.Date = val
	case Cell:
		val.Row, val.Col = row, col
		return val
	}
	return c
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Type == CellEmpty
}

// IsNumber reports whether the cell is an int or float cell.
func (c Cell) IsNumber() bool {
	return c.Type == CellInt || c.Type == CellFloat
}

// Int returns the integral value of an int cell.
func (c Cell) Int() (int, bool) {
	if c.Type != CellInt {
		return 0, false
	}
	return int(c.Number), true
}

// String renders the cell the way it reads on screen.
func (c Cell) String() string {
	switch c.Type {
	case CellText:
		return c.Text
	case CellInt:
		return strconv.FormatInt(int64(c.Number), 10)
	case CellFloat:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format(DateLayout)
	default:
		return ""
	}
}

// Trimmed returns String with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}
