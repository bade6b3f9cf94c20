package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Relationship types end with these suffixes in both the transitional and
// strict OOXML namespaces.
const (
	relWorksheet = "/worksheet"
	relDrawing   = "/drawing"
)

// ExtractTextBoxes returns the text of every drawing shape anchored on each
// sheet of an xlsx file, keyed by sheet name. Paragraphs within a shape are
// joined with newlines. Parts that are missing or malformed are skipped.
func ExtractTextBoxes(xlsxPath string) (map[string][]string, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	parts := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		parts[f.Name] = f
	}

	result := make(map[string][]string)
	for sheetName, drawingPath := range sheetDrawings(parts) {
		data, err := readPart(parts, drawingPath)
		if err != nil {
			continue
		}
		if texts := parseDrawingText(data); len(texts) > 0 {
			result[sheetName] = texts
		}
	}
	return result, nil
}

type workbookPart struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		// r:id; the namespace prefix is not matched by encoding/xml
		ID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

type relationshipsPart struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// sheetDrawings maps sheet names to the drawing part anchored on them:
// workbook.xml gives each sheet's relationship id, the workbook rels give
// its worksheet part, and the worksheet rels give its drawing.
func sheetDrawings(parts map[string]*zip.File) map[string]string {
	result := make(map[string]string)

	var wb workbookPart
	if err := decodePart(parts, "xl/workbook.xml", &wb); err != nil {
		return result
	}
	var wbRels relationshipsPart
	if err := decodePart(parts, "xl/_rels/workbook.xml.rels", &wbRels); err != nil {
		return result
	}
	worksheets := make(map[string]string)
	for _, rel := range wbRels.Relationships {
		if strings.HasSuffix(rel.Type, relWorksheet) {
			worksheets[rel.ID] = resolveRelativePath(rel.Target, "xl")
		}
	}

	for _, sheet := range wb.Sheets {
		sheetPath, ok := worksheets[sheet.ID]
		if !ok {
			continue
		}
		dir := path.Dir(sheetPath)
		var rels relationshipsPart
		if err := decodePart(parts, path.Join(dir, "_rels", path.Base(sheetPath)+".rels"), &rels); err != nil {
			continue
		}
		for _, rel := range rels.Relationships {
			if strings.HasSuffix(rel.Type, relDrawing) {
				result[sheet.Name] = resolveRelativePath(rel.Target, dir)
				break
			}
		}
	}
	return result
}

// parseDrawingText collects the text body of each shape (xdr:sp) in a
// drawing part, in document order.
func parseDrawingText(data []byte) []string {
	var out []string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var (
		inShape    bool
		paragraphs []string
		para       strings.Builder
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				paragraphs = paragraphs[:0]
			case "p":
				para.Reset()
			case "t":
				var text string
				if inShape && decoder.DecodeElement(&text, &t) == nil {
					para.WriteString(text)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inShape {
					paragraphs = append(paragraphs, para.String())
				}
			case "sp":
				inShape = false
				if text := strings.TrimSpace(strings.Join(paragraphs, "\n")); text != "" {
					out = append(out, text)
				}
			}
		}
	}
	return out
}

func readPart(parts map[string]*zip.File, name string) ([]byte, error) {
	f, ok := parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func decodePart(parts map[string]*zip.File, name string, v any) error {
	data, err := readPart(parts, name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode part %s: %w", name, err)
	}
	return nil
}

// resolveRelativePath resolves a relationship target against the directory
// of the part that owns the relationship. Absolute targets start at the
// package root.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}
