package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "氏名")
	f.SetCellValue(sheetName, "B1", "山田 太郎")
	f.SetCellValue(sheetName, "A2", "生年月日")
	f.SetCellValue(sheetName, "B2", 34439)
	f.SetCellValue(sheetName, "A3", "年齢")
	f.SetCellValue(sheetName, "B3", 30)
	f.SetCellValue(sheetName, "C3", 30.5)
	f.SetCellValue(sheetName, "A4", "来日")
	f.SetCellValue(sheetName, "B4", 44392)
	f.SetCellValue(sheetName, "A6", "経歴")
	require.NoError(t, f.MergeCell(sheetName, "A6", "C6"))

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "B2", "B2", dateStyle))
	custom := "yyyy年m月"
	monthStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "B4", "B4", monthStyle))

	f2, err := excelize.OpenFile(saveWorkbook(t, f))
	require.NoError(t, err)
	defer f2.Close()

	s, err := ExtractSheet(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, "山田 太郎", s.CellAt(0, 1).Text)

	birth := s.CellAt(1, 1)
	assert.Equal(t, models.CellDate, birth.Type)
	assert.Equal(t, "1994-04-15", birth.String())

	age := s.CellAt(2, 1)
	assert.Equal(t, models.CellInt, age.Type)
	n, ok := age.Int()
	assert.True(t, ok)
	assert.Equal(t, 30, n)
	assert.Equal(t, models.CellFloat, s.CellAt(2, 2).Type)

	arrival := s.CellAt(3, 1)
	assert.Equal(t, models.CellDate, arrival.Type)
	assert.Equal(t, 2021, arrival.Date.Year())

	assert.Equal(t, []models.MergeRange{{R1: 5, C1: 0, R2: 5, C2: 2}}, s.Merges)
}

func TestLoadWorkbookSkipsEmptySheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Blank")
	require.NoError(t, err)
	f.SetCellValue("Sheet1", "A1", "氏名")

	doc, err := Load(saveWorkbook(t, f))
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	assert.Equal(t, "Sheet1", doc.Sheets[0].Name)
}

func TestLoadWorkbookTextBoxes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "氏名")
	require.NoError(t, f.AddShape("Sheet1", &excelize.Shape{
		Cell:      "E2",
		Type:      "rect",
		Paragraph: []excelize.RichTextRun{{Text: "日本語 N2"}},
	}))

	doc, err := Load(saveWorkbook(t, f))
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	require.NotEmpty(t, doc.Sheets[0].TextBoxes)
	assert.Contains(t, doc.Sheets[0].TextBoxes[0], "日本語 N2")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		return path
	}

	empty := excelize.NewFile()
	defer empty.Close()
	emptyPath := filepath.Join(dir, "empty.xlsx")
	require.NoError(t, empty.SaveAs(emptyPath))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "nope.xlsx"), ErrFileNotFound},
		{"legacy xls", write("old.xls", []byte{0xD0, 0xCF, 0x11, 0xE0}), ErrCodecUnavailable},
		{"unknown extension", write("notes.txt", []byte("氏名")), ErrUnsupportedFormat},
		{"corrupt", write("broken.xlsx", []byte("not a zip")), ErrInvalidFormat},
		{"no data", emptyPath, ErrNoData},
		{"empty csv", write("blank.csv", []byte(",,\n")), ErrNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	content := "氏名,山田 太郎\n年齢,30\n生年月日,1994/04/15\n"
	sjis, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), content)
	require.NoError(t, err)

	inputs := map[string][]byte{
		"utf8.csv":     []byte(content),
		"bom.csv":      append([]byte{0xEF, 0xBB, 0xBF}, content...),
		"shiftjis.csv": []byte(sjis),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			doc, err := Load(path)
			require.NoError(t, err)
			require.Len(t, doc.Sheets, 1)
			s := doc.Sheets[0]
			assert.Equal(t, "氏名", s.CellAt(0, 0).Text)
			assert.Equal(t, "山田 太郎", s.CellAt(0, 1).Text)
			assert.Equal(t, models.CellInt, s.CellAt(1, 1).Type)
			assert.Equal(t, "1994/04/15", s.CellAt(2, 1).Text)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"1994/04/15", "1994/04/15"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestNumberFormats(t *testing.T) {
	for _, id := range []int{14, 22, 31, 57, 81} {
		assert.True(t, builtinDate(id), "builtin %d", id)
	}
	for _, id := range []int{0, 1, 4, 10, 49} {
		assert.False(t, builtinDate(id), "builtin %d", id)
	}

	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy/m/d", true},
		{"ggge年m月d日", true},
		{"[$-411]ge.m.d", true},
		{"yyyy年m月", true},
		{"0.00E+00", false},
		{`"円"#,##0`, false},
		{"#,##0_);[Red](#,##0)", false},
		{"h:mm", false},
		{"General", false},
	}
	for _, tt := range tests {
		if got := customDate(tt.code); got != tt.expected {
			t.Errorf("customDate(%q) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}

func TestSerialDate1904(t *testing.T) {
	got, ok := serialDate(0, true)
	require.True(t, ok)
	assert.Equal(t, time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDrawingText(t *testing.T) {
	data := []byte(`<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<xdr:twoCellAnchor><xdr:sp><xdr:txBody><a:p><a:r><a:t>日本語</a:t></a:r><a:r><a:t> N1</a:t></a:r></a:p><a:p><a:r><a:t>ビジネスレベル</a:t></a:r></a:p></xdr:txBody></xdr:sp></xdr:twoCellAnchor>
<xdr:twoCellAnchor><xdr:sp><xdr:txBody><a:p></a:p></xdr:txBody></xdr:sp></xdr:twoCellAnchor>
</xdr:wsDr>`)
	assert.Equal(t, []string{"日本語 N1\nビジネスレベル"}, parseDrawingText(data))
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"../drawings/drawing2.xml", "xl/worksheets", "xl/drawings/drawing2.xml"},
		{"./sheet2.xml", "xl/worksheets", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []string
	}{
		{"Sheet1!$A$1:$H$60", "Sheet1", []string{"A1:H60"}},
		{"'スキル シート'!$A$1:$D$10,'スキル シート'!$F$1:$H$5", "スキル シート", []string{"A1:D10", "F1:H5"}},
		{"'Bob''s'!$A$1:$B$2", "Bob's", []string{"A1:B2"}},
		{"Sheet1!$A$1", "Sheet1", nil},
		{"#REF!", "#REF", nil},
	}
	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.wantSheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		assert.Equal(t, tt.wantAreas, areas, "parsePrintAreaReference(%q)", tt.ref)
	}
}

func TestExtractTextBoxesInvalidZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o600))

	_, err := ExtractTextBoxes(path)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
