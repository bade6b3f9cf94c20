package skillsheet

import (
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/vocab"
	"github.com/xuri/excelize/v2"
)

// inspectBlock is the size of the top-left preview.
const inspectBlock = 10

// SheetSummary describes the layout of one sheet.
type SheetSummary struct {
	Name      string                `json:"name"`
	Rows      int                   `json:"rows"`
	Cols      int                   `json:"cols"`
	Merges    int                   `json:"merges"`
	UsedRange string                `json:"used_range,omitempty"`
	PrintArea []string              `json:"print_areas,omitempty"`
	TextBoxes []string              `json:"text_boxes,omitempty"`
	TopLeft   [][]string            `json:"top_left"`
	Labels    map[string][]LabelHit `json:"labels,omitempty"`
}

// LabelHit is a cell that looks like a label for a field.
type LabelHit struct {
	Cell string `json:"cell"`
	Text string `json:"text"`
}

// Inspect summarises every sheet: its size, the top-left block and the
// cells that match each field's label keywords. A nil vocabulary means the
// default one.
func Inspect(doc *models.Document, v *vocab.Vocabulary) []SheetSummary {
	if v == nil {
		v = vocab.Default()
	}
	labels := map[string][]string{
		"name":           v.Labels.Name,
		"gender":         v.Labels.Gender,
		"age":            v.Labels.Age,
		"birthdate":      v.Labels.Birth,
		"nationality":    v.Labels.Nationality,
		"arrival_year":   v.Labels.Arrival,
		"experience":     v.Labels.Experience,
		"japanese_level": v.Labels.Japanese,
		"skills":         v.TechHeaders,
		"work_scope":     v.Phases,
		"roles":          v.RoleHeaders,
	}

	out := make([]SheetSummary, 0, len(doc.Sheets))
	for _, s := range doc.Sheets {
		sum := SheetSummary{
			Name:      s.Name,
			Rows:      s.RowCount(),
			Cols:      s.ColCount(),
			Merges:    len(s.Merges),
			UsedRange: usedRange(s),
			PrintArea: s.PrintAreas,
			TextBoxes: s.TextBoxes,
			Labels:    make(map[string][]LabelHit),
		}
		for r := 0; r < min(inspectBlock, s.RowCount()); r++ {
			row := make([]string, min(inspectBlock, s.ColCount()))
			for c := range row {
				row[c] = s.CellAt(r, c).Trimmed()
			}
			sum.TopLeft = append(sum.TopLeft, row)
		}
		for r := 0; r < s.RowCount(); r++ {
			for c := 0; c < s.ColCount(); c++ {
				text := s.CellAt(r, c).Trimmed()
				// labels are short; long cells are prose
				if text == "" || len([]rune(text)) > 20 {
					continue
				}
				for field, kws := range labels {
					if spatial.ContainsAny(text, kws) {
						name, _ := excelize.CoordinatesToCellName(c+1, r+1)
						sum.Labels[field] = append(sum.Labels[field], LabelHit{Cell: name, Text: strings.ReplaceAll(text, "\n", " ")})
					}
				}
			}
		}
		out = append(out, sum)
	}
	return out
}

// usedRange returns the bounding box of non-empty cells in A1 notation.
func usedRange(s *models.Sheet) string {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for r := 0; r < s.RowCount(); r++ {
		for c := 0; c < s.ColCount(); c++ {
			if s.IsEmpty(r, c) {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			maxCol = max(maxCol, c)
		}
	}
	if minRow < 0 {
		return ""
	}
	from, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	to, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return from + ":" + to
}
