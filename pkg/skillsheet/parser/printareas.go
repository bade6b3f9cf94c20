package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns each sheet's print ranges, e.g. "A1:H60".
func ExtractPrintAreas(f *excelize.File) map[string][]string {
	result := make(map[string][]string)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == "" {
			sheet = dn.Scope
		}
		if len(areas) > 0 {
			result[sheet] = append(result[sheet], areas...)
		}
	}
	return result
}

// parsePrintAreaReference splits 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$H$5
// into the sheet name and normalized ranges.
func parsePrintAreaReference(ref string) (string, []string) {
	var (
		sheetName string
		areas     []string
	)
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		}
		if area, ok := normalizeRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}
	return sheetName, areas
}

func normalizeRange(s string) (string, bool) {
	from, to, ok := strings.Cut(strings.ReplaceAll(s, "$", ""), ":")
	if !ok {
		return "", false
	}
	if _, _, err := excelize.CellNameToCoordinates(from); err != nil {
		return "", false
	}
	if _, _, err := excelize.CellNameToCoordinates(to); err != nil {
		return "", false
	}
	return from + ":" + to, true
}
