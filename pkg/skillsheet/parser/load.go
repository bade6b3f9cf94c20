// Package parser loads spreadsheet files into typed cell grids.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/xuri/excelize/v2"
)

// Extensions lists every file extension Load recognises.
var Extensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".xls", ".csv"}

// Load reads the file at path, choosing the codec by extension.
func Load(path string) (*models.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return LoadWorkbook(path)
	case ".csv":
		return LoadCSV(path)
	case ".xls":
		return nil, fmt.Errorf("%w: %s needs a BIFF8 reader; save the file as .xlsx", ErrCodecUnavailable, ext)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadWorkbook reads an OOXML workbook. Sheets without any value or text box
// are skipped.
func LoadWorkbook(path string) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	// Text boxes are best effort; a broken drawing part leaves them out.
	boxes, err := ExtractTextBoxes(path)
	if err != nil {
		boxes = nil
	}

	areas := ExtractPrintAreas(f)

	doc := &models.Document{Path: path}
	for _, sheetName := range f.GetSheetList() {
		s, err := ExtractSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		s.TextBoxes = boxes[sheetName]
		s.PrintAreas = areas[sheetName]
		if !s.HasData() && len(s.TextBoxes) == 0 {
			continue
		}
		doc.Sheets = append(doc.Sheets, s)
	}
	if len(doc.Sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, filepath.Base(path))
	}
	return doc, nil
}
