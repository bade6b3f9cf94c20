package parser

import (
	"regexp"

	"github.com/xuri/excelize/v2"
)

var (
	// fmtLiteralRe matches quoted text, escaped characters and bracketed
	// sections (colours, conditions, locales) of a number format.
	fmtLiteralRe = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)
	fmtDateRe    = regexp.MustCompile(`[yYdDgGe]`)
	fmtSciRe     = regexp.MustCompile(`[0#?][.,]?[0#?]*[eE][+-]`)
)

// builtinDate reports whether a built-in number format id shows a date or
// time, including the Japanese era formats.
func builtinDate(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58,
		id >= 71 && id <= 81:
		return true
	}
	return false
}

// customDate reports whether a custom number format code contains date
// tokens.
func customDate(code string) bool {
	if code == "" || code == "General" || fmtSciRe.MatchString(code) {
		return false
	}
	return fmtDateRe.MatchString(fmtLiteralRe.ReplaceAllString(code, ""))
}

// styleCache remembers which style indexes format dates.
type styleCache struct {
	f    *excelize.File
	date map[int]bool
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, date: make(map[int]bool)}
}

func (c *styleCache) isDate(sheetName, cellName string) bool {
	idx, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil || idx == 0 {
		return false
	}
	if v, ok := c.date[idx]; ok {
		return v
	}
	v := false
	if st, err := c.f.GetStyle(idx); err == nil && st != nil {
		v = builtinDate(st.NumFmt)
		if st.CustomNumFmt != nil {
			v = customDate(*st.CustomNumFmt)
		}
	}
	c.date[idx] = v
	return v
}
