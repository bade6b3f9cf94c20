package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads a CSV file as a single sheet named after the file. UTF-8
// (with or without BOM) and Shift-JIS input are accepted.
func LoadCSV(path string) (*models.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	grid := make([][]any, len(records))
	for r, rec := range records {
		row := make([]any, len(rec))
		for c, field := range rec {
			row[c] = parseValue(strings.TrimSpace(field))
		}
		grid[r] = row
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s := models.NewSheet(name, grid)
	if !s.HasData() {
		return nil, fmt.Errorf("%w: %s", ErrNoData, filepath.Base(path))
	}
	return models.NewDocument(path, s), nil
}

// decodeText strips a UTF-8 BOM, or converts Shift-JIS to UTF-8 when the
// input is not valid UTF-8.
func decodeText(raw []byte) ([]byte, error) {
	if b, ok := bytes.CutPrefix(raw, utf8BOM); ok {
		return b, nil
	}
	if utf8.Valid(raw) {
		return raw, nil
	}
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	return out, err
}
