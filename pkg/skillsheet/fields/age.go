package fields

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/dates"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

// Accepted age ranges for stated and derived ages.
const (
	MinStatedAge  = 18
	MaxStatedAge  = 65
	MinDerivedAge = 15
	MaxDerivedAge = 75

	ageBirthMinYear = 1950
	ageBirthMaxYear = 2010
)

var (
	ageLabelWindow   = spatial.Window{RowMin: -2, RowMax: 5, ColMin: -2, ColMax: 14}
	ageNumberWindow  = spatial.Window{RowMin: -3, RowMax: 3, ColMin: -5, ColMax: 9}
	ageContextWindow = spatial.Window{RowMin: -3, RowMax: 3, ColMin: -8, ColMax: 7}
	ageSerialWindow  = spatial.Window{RowMin: -2, RowMax: 2, ColMin: -5, ColMax: 4}

	ageValueRes = []*regexp.Regexp{
		regexp.MustCompile(`満\s*(\d{1,2})\s*[歳才歲]?`),
		regexp.MustCompile(`(\d{1,2})\s*[歳才歲]`),
		regexp.MustCompile(`^(\d{1,2})$`),
	}
	ageRejectRe = regexp.MustCompile(`年月|西暦|\d{3,}`)
	ageUnitRe   = regexp.MustCompile(`^[歳才歲]`)
	birthYearRe = regexp.MustCompile(`(19[5-9]\d|200\d|2010)\s*年`)
)

// agePattern is a row-text regex with its confidence. Loose patterns are
// only trusted on rows that also carry an age keyword.
type agePattern struct {
	re    *regexp.Regexp
	conf  float64
	loose bool
}

var ageRowPatterns = []agePattern{
	{regexp.MustCompile(`満\s*(\d{1,2})\s*[才歳歲]`), 3.5, false},
	{regexp.MustCompile(`満\s*(\d{1,2})(?:\s|$)`), 3.0, false},
	{regexp.MustCompile(`(?:^|\D)(\d{1,2})\s*[才歳歲]`), 2.5, false},
	{regexp.MustCompile(`年齢\s*[:：]\s*(\d{1,2})(?:\D|$)`), 2.5, false},
	{regexp.MustCompile(`年齢\s*(\d{1,2})(?:\D|$)`), 2.0, true},
	{regexp.MustCompile(`(?:^|\s)(\d{1,2})(?:\s|$)`), 1.0, true},
}

// AgeExtractor finds the age in years.
type AgeExtractor struct {
	env Env
}

// NewAgeExtractor returns an AgeExtractor.
func NewAgeExtractor(env Env) *AgeExtractor {
	return &AgeExtractor{env: env}
}

// Extract returns the age as a decimal string. birth, when not nil, is the
// already resolved birthdate used as the last resort.
func (x *AgeExtractor) Extract(doc *models.Document, birth *time.Time) (string, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.fromDates(s, col)
		x.fromSerials(s, col)
		x.fromLabels(s, col)
		x.crossCell(s, col)
		x.fromRowText(s, col)
	}
	if col.Len() == 0 {
		if birth != nil {
			if age, ok := x.derive(*birth); ok {
				col.Add(strconv.Itoa(age), 2.0)
			}
		} else {
			for _, s := range doc.Sheets {
				x.fromBirthYearText(s, col)
			}
		}
	}
	return col.Best()
}

// fromDates derives ages from date cells near birth or age context.
func (x *AgeExtractor) fromDates(s *models.Sheet, col *candidate.Collector) {
	ctx := x.contextKeywords()
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			if cell.Type != models.CellDate || !birthYearRange(cell.Date) {
				continue
			}
			if !spatial.HasNearbyKeyword(s, r, c, ctx, x.env.Tuning.ContextRadius) {
				continue
			}
			if age, ok := x.derive(cell.Date); ok {
				conf := 2.0 + 0.5*spatial.ContextScore(s, r, c, x.env.Vocab.Labels.Personal)
				x.add(col, "date", s, cell, age, conf)
			}
		}
	}
}

// fromSerials derives ages from serial numbers next to age context.
func (x *AgeExtractor) fromSerials(s *models.Sheet, col *candidate.Collector) {
	ctx := x.contextKeywords()
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			n, ok := serial(cell)
			if !ok || n < serialMin || n > serialMax {
				continue
			}
			if !spatial.HasKeywordIn(s, r, c, ctx, ageSerialWindow) {
				continue
			}
			d, ok := dates.FromSerial(n)
			if !ok || !birthYearRange(d) {
				continue
			}
			if age, ok := x.derive(d); ok {
				x.add(col, "serial", s, cell, age, 3.0)
			}
		}
	}
}

// fromLabels reads values around age label cells.
func (x *AgeExtractor) fromLabels(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Age
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			if !spatial.ContainsAny(cellText(s.CellAt(r, c)), labels) {
				continue
			}
			for cell := range spatial.Scan(s, r, c, ageLabelWindow) {
				if cell.Type == models.CellDate {
					if !birthYearRange(cell.Date) {
						continue
					}
					if age, ok := x.derive(cell.Date); ok {
						x.add(col, "label-date", s, cell, age, 2.5)
					}
					continue
				}
				if datePart(s, cell) {
					continue
				}
				if age, ok := parseAgeValue(cellText(cell)); ok {
					x.add(col, "label", s, cell, age, 2.0)
				}
			}
		}
	}
}

// crossCell handles values whose unit or prefix sits in a neighboring cell.
func (x *AgeExtractor) crossCell(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Age
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			v := cellText(cell)
			if v == "" {
				continue
			}

			// 満 | 30 | 歳
			if strings.Contains(v, "満") {
				for dc := 1; dc <= 4; dc++ {
					next := s.CellAt(r, c+dc)
					n, ok := smallInt(next)
					if !ok || !statedAge(n) || datePart(s, next) {
						continue
					}
					if strings.HasSuffix(v, "満") || x.unitAfter(s, r, c+dc) {
						x.add(col, "prefix", s, next, n, 3.0)
						break
					}
				}
			}

			if n, ok := smallInt(cell); ok && statedAge(n) && !datePart(s, cell) &&
				spatial.HasKeywordIn(s, r, c, labels, ageContextWindow) {
				x.add(col, "bare", s, cell, n, 2.5)
			}

			if !spatial.ContainsAny(v, labels) {
				continue
			}
			for near := range spatial.Scan(s, r, c, ageNumberWindow) {
				n, ok := smallInt(near)
				if !ok || !statedAge(n) || datePart(s, near) {
					continue
				}
				d := spatial.Manhattan(near.Row-r, near.Col-c)
				x.add(col, "near-label", s, near, n, 2.0/(1+0.2*float64(d)))
			}
		}
	}
}

// unitAfter reports whether one of the two cells right of (r, c) starts
// with an age unit.
func (x *AgeExtractor) unitAfter(s *models.Sheet, r, c int) bool {
	for dc := 1; dc <= 2; dc++ {
		if ageUnitRe.MatchString(cellText(s.CellAt(r, c+dc))) {
			return true
		}
	}
	return false
}

// fromRowText runs the row regexes over each reconstructed row, so values
// split across merged cells are still found.
func (x *AgeExtractor) fromRowText(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Age
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		// dates split across cells are not ages
		text := splitDateRe.ReplaceAllString(candidate.Normalize(s.RowText(r)), " ")
		if strings.TrimSpace(text) == "" {
			continue
		}
		hasLabel := spatial.ContainsAny(text, labels)
		for _, p := range ageRowPatterns {
			if p.loose && !hasLabel {
				continue
			}
			for _, m := range p.re.FindAllStringSubmatch(text, -1) {
				n := atoi(m[1])
				if !statedAge(n) || (!hasLabel && p.conf < 2.5) {
					continue
				}
				x.add(col, "row", s, models.Cell{Row: r}, n, p.conf)
				break
			}
		}
	}
}

// fromBirthYearText derives an age from a bare year next to birth context.
func (x *AgeExtractor) fromBirthYearText(s *models.Sheet, col *candidate.Collector) {
	birth := x.env.Vocab.Labels.Birth
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			m := birthYearRe.FindStringSubmatch(cellText(cell))
			if m == nil || !spatial.HasNearbyKeyword(s, r, c, birth, 3) {
				continue
			}
			age := x.env.Now.Year() - atoi(m[1])
			if derivedAge(age) {
				x.add(col, "birth-year", s, cell, age, 2.0)
			}
		}
	}
}

func (x *AgeExtractor) add(col *candidate.Collector, strategy string, s *models.Sheet, c models.Cell, age int, conf float64) {
	v := strconv.Itoa(age)
	x.env.trace("age", strategy, s, c, v, conf)
	col.Add(v, conf)
}

func (x *AgeExtractor) derive(birth time.Time) (int, bool) {
	return DeriveAge(birth, x.env.Now)
}

func (x *AgeExtractor) contextKeywords() []string {
	l := x.env.Vocab.Labels
	return slices.Concat(l.Age, l.Birth)
}

// DeriveAge computes the age on ref and checks the derived range.
func DeriveAge(birth, ref time.Time) (int, bool) {
	age := dates.AgeAt(birth, ref)
	return age, derivedAge(age)
}

// parseAgeValue reads a stated age from cell text such as "満30歳" or "30".
func parseAgeValue(v string) (int, bool) {
	if v == "" || runeLen(v) > 15 || ageRejectRe.MatchString(v) {
		return 0, false
	}
	for _, re := range ageValueRes {
		if m := re.FindStringSubmatch(v); m != nil {
			n := atoi(m[1])
			return n, statedAge(n)
		}
	}
	return 0, false
}

func statedAge(n int) bool {
	return n >= MinStatedAge && n <= MaxStatedAge
}

func derivedAge(n int) bool {
	return n >= MinDerivedAge && n <= MaxDerivedAge
}

func birthYearRange(d time.Time) bool {
	return d.Year() >= ageBirthMinYear && d.Year() <= ageBirthMaxYear
}
