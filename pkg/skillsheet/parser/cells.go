package parser

import (
	"strconv"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/dates"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet reads one worksheet into a typed sheet. Numbers the workbook
// formats as dates become date cells.
func ExtractSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &SheetError{SheetName: sheetName, Component: "cells", Err: err}
	}

	styles := newStyleCache(f)
	date1904 := uses1904(f)

	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, raw := range row {
			v := parseValue(raw)
			if n, ok := number(v); ok {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if styles.isDate(sheetName, cellName) {
					if t, ok := serialDate(n, date1904); ok {
						v = t
					}
				}
			}
			cells[colIdx] = models.NewCell(rowIdx, colIdx, v)
		}
		grid[rowIdx] = cells
	}

	s := models.NewSheetFromCells(sheetName, grid)
	merges, err := ExtractMerges(f, sheetName)
	if err != nil {
		return nil, &SheetError{SheetName: sheetName, Component: "merges", Err: err}
	}
	s.Merges = merges
	return s, nil
}

// ExtractMerges returns the merged ranges of a sheet, zero-based.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.MergeRange, error) {
	mcs, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	var out []models.MergeRange
	for _, mc := range mcs {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		out = append(out, models.MergeRange{R1: r1 - 1, C1: c1 - 1, R2: r2 - 1, C2: c2 - 1})
	}
	return out, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if !numeric(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// numeric rejects strings ParseFloat would read as NaN or Inf.
func numeric(s string) bool {
	if s == "" {
		return false
	}
	switch b := s[0]; {
	case b >= '0' && b <= '9', b == '-', b == '+', b == '.':
		return true
	}
	return false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// serialDate converts a date-formatted number. Time-only values (below one
// day) stay numeric.
func serialDate(n float64, date1904 bool) (time.Time, bool) {
	if date1904 {
		n += dates.Offset1904
	}
	return dates.SerialToTime(n)
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
