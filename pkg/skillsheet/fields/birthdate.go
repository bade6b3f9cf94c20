package fields

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/dates"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

const (
	birthMinYear = 1950
	birthMaxYear = 2015
	birthMinAge  = 10
	birthMaxAge  = 80

	// birthRowsBelow is how far below a label values are sought.
	birthRowsBelow = 20
	// birthColsRight is how far right of a label values are sought.
	birthColsRight = 6
	// birthPriorAge is the population prior used by the unlabelled fallback.
	birthPriorAge = 30

	serialMin = 18000
	serialMax = 50000
)

var (
	era = `(明治|大正|昭和|平成|令和|\b[MTSHR])`

	ymdKanjiRe = regexp.MustCompile(`(\d{4})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日?`)
	ymdSepRe   = regexp.MustCompile(`(\d{4})\s*[./\-]\s*(\d{1,2})\s*[./\-]\s*(\d{1,2})`)
	eraYMDRe   = regexp.MustCompile(era + `\s*(\d{1,2}|元)\s*[年./\-]\s*(\d{1,2})\s*[月./\-]\s*(\d{1,2})`)
	ymRe       = regexp.MustCompile(`(\d{4})\s*[年./\-]\s*(\d{1,2})(?:\s*月|\D|$)`)
	eraYearRe  = regexp.MustCompile(era + `\s*(\d{1,2}|元)\s*年`)
	yearOnlyRe = regexp.MustCompile(`(?:^|\D)(19[5-9]\d|20[01]\d)(?:\D|$)`)

	// unit cell of a date written across cells: 1994 | 年 | 4 | 月 | 25 | 日
	dateUnitRe = regexp.MustCompile(`^\s*[年月日]`)
	// the same date once the row is joined into text
	splitDateRe = regexp.MustCompile(`\d{4}\s*年(?:\s*\d{1,2}\s*月(?:\s*\d{1,2}\s*日)?)?|\d{1,2}\s*月\s*\d{1,2}\s*日`)
)

// splitDateCells is how many cells a split date spans at most.
const splitDateCells = 6

// dateStrength ranks how specific a parsed date is.
type dateStrength int

const (
	yearOnly dateStrength = iota
	yearMonth
	fullDate
	typedDate
)

func (d dateStrength) confidence() float64 {
	switch d {
	case typedDate:
		return 3.0
	case fullDate:
		return 2.5
	case yearMonth:
		return 2.0
	default:
		return 1.0
	}
}

// BirthdateExtractor finds the date of birth.
type BirthdateExtractor struct {
	env Env
}

// NewBirthdateExtractor returns a BirthdateExtractor.
func NewBirthdateExtractor(env Env) *BirthdateExtractor {
	return &BirthdateExtractor{env: env}
}

// Extract returns the birthdate.
func (x *BirthdateExtractor) Extract(doc *models.Document) (time.Time, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.labelled(s, col)
	}
	if v, ok := col.Best(); ok {
		t, err := time.Parse(models.DateLayout, v)
		return t, err == nil
	}
	return x.fallback(doc)
}

// labelled searches inside, right of and below every birth label.
func (x *BirthdateExtractor) labelled(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Birth
	for r := 0; r < s.RowCount(); r++ {
		for c := 0; c < s.ColCount(); c++ {
			label := s.CellAt(r, c)
			if !spatial.ContainsAny(cellText(label), labels) {
				continue
			}

			// 生年月日：1994年4月15日
			if d, st, ok := x.parseCell(label); ok {
				x.add(col, "inline", s, label, d, st.confidence())
			}

			for dc := 1; dc <= birthColsRight; dc++ {
				cell := s.CellAt(r, c+dc)
				if d, st, ok := x.parseCell(cell); ok {
					d, st = x.joinSplit(s, cell, d, st)
					x.add(col, "right", s, cell, d, st.confidence()/(1+0.1*float64(dc)))
					break
				}
			}

			c0, c1, top := c, c+4, r
			if m, ok := s.MergeAt(r, c); ok {
				c0, c1, top = m.C1, m.C2, m.R2
			}
			if cell, d, st, ok := x.firstBelow(s, top, c0, c1); ok {
				d, st = x.joinSplit(s, cell, d, st)
				x.add(col, "below", s, cell, d, st.confidence())
			}
		}
	}
}

// firstBelow returns the nearest parseable cell below row top within
// columns c0..c1.
func (x *BirthdateExtractor) firstBelow(s *models.Sheet, top, c0, c1 int) (models.Cell, time.Time, dateStrength, bool) {
	for r := top + 1; r <= top+birthRowsBelow && r < s.RowCount(); r++ {
		for c := c0; c <= c1; c++ {
			cell := s.CellAt(r, c)
			if d, st, ok := x.parseCell(cell); ok {
				return cell, d, st, true
			}
		}
	}
	return models.Cell{}, time.Time{}, 0, false
}

// joinSplit completes a year-only value whose month and day sit in the
// following cells of the same row.
func (x *BirthdateExtractor) joinSplit(s *models.Sheet, c models.Cell, d time.Time, st dateStrength) (time.Time, dateStrength) {
	if st != yearOnly {
		return d, st
	}
	var b strings.Builder
	for dc := range splitDateCells {
		b.WriteString(cellText(s.CellAt(c.Row, c.Col+dc)))
	}
	full, fst, ok := parseDateText(b.String())
	if !ok || fst <= st || full.Year() != d.Year() || !x.valid(full) {
		return d, st
	}
	return full, fst
}

// datePart reports whether c is a number followed by a 年, 月 or 日 cell.
func datePart(s *models.Sheet, c models.Cell) bool {
	return dateUnitRe.MatchString(cellText(s.CellAt(c.Row, c.Col+1)))
}

func (x *BirthdateExtractor) add(col *candidate.Collector, strategy string, s *models.Sheet, c models.Cell, d time.Time, conf float64) {
	v := d.Format(models.DateLayout)
	x.env.trace("birthdate", strategy, s, c, v, conf)
	col.Add(v, conf)
}

// fallback scans every cell for complete dates and keeps the one whose age
// is closest to the population prior.
func (x *BirthdateExtractor) fallback(doc *models.Document) (time.Time, bool) {
	var best time.Time
	bestGap := math.MaxInt
	for _, s := range doc.Sheets {
		for r := 0; r < s.RowCount(); r++ {
			for c := 0; c < s.ColCount(); c++ {
				cell := s.CellAt(r, c)
				d, st, ok := x.parseCell(cell)
				if !ok || st < fullDate {
					continue
				}
				gap := dates.AgeAt(d, x.env.Now) - birthPriorAge
				if gap < 0 {
					gap = -gap
				}
				if gap < bestGap {
					best, bestGap = d, gap
					x.env.trace("birthdate", "fallback", s, cell, d.Format(models.DateLayout), 0)
				}
			}
		}
	}
	return best, bestGap != math.MaxInt
}

// parseCell reads a plausible birthdate from a cell.
func (x *BirthdateExtractor) parseCell(c models.Cell) (time.Time, dateStrength, bool) {
	switch c.Type {
	case models.CellDate:
		d := c.Date
		return d, typedDate, x.valid(d)
	case models.CellInt, models.CellFloat:
		n := c.Number
		if n >= serialMin && n <= serialMax {
			if d, ok := dates.FromSerial(n); ok && x.valid(d) {
				return d, fullDate, true
			}
			return time.Time{}, 0, false
		}
		if y := int(n); float64(y) == n && y >= birthMinYear && y <= birthMaxYear {
			d := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
			return d, yearOnly, x.valid(d)
		}
		return time.Time{}, 0, false
	case models.CellText:
		d, st, ok := parseDateText(cellText(c))
		if !ok || !x.valid(d) {
			return time.Time{}, 0, false
		}
		return d, st, true
	}
	return time.Time{}, 0, false
}

// valid applies the year, future and age checks.
func (x *BirthdateExtractor) valid(d time.Time) bool {
	if d.Year() < birthMinYear || d.Year() > birthMaxYear || d.After(x.env.Now) {
		return false
	}
	age := dates.AgeAt(d, x.env.Now)
	return age >= birthMinAge && age <= birthMaxAge
}

// parseDateText parses Gregorian, delimited, Japanese era and year-only
// dates. Missing month and day default to January 1st.
func parseDateText(s string) (time.Time, dateStrength, bool) {
	s = candidate.Normalize(s)
	if m := ymdKanjiRe.FindStringSubmatch(s); m != nil {
		if d, ok := dates.Date(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return d, fullDate, true
		}
	}
	if m := ymdSepRe.FindStringSubmatch(s); m != nil {
		if d, ok := dates.Date(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return d, fullDate, true
		}
	}
	if m := eraYMDRe.FindStringSubmatch(s); m != nil {
		if y, ok := dates.EraYear(m[1], m[2]); ok {
			if d, ok := dates.Date(y, atoi(m[3]), atoi(m[4])); ok {
				return d, fullDate, true
			}
		}
	}
	if m := ymRe.FindStringSubmatch(s); m != nil {
		if d, ok := dates.Date(atoi(m[1]), atoi(m[2]), 1); ok {
			return d, yearMonth, true
		}
	}
	if m := eraYearRe.FindStringSubmatch(s); m != nil {
		if y, ok := dates.EraYear(m[1], m[2]); ok {
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), yearOnly, true
		}
	}
	if m := yearOnlyRe.FindStringSubmatch(s); m != nil {
		return time.Date(atoi(m[1]), time.January, 1, 0, 0, 0, 0, time.UTC), yearOnly, true
	}
	return time.Time{}, 0, false
}
