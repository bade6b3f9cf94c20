package fields

import (
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/dates"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

const (
	arrivalMinYear   = 1990
	arrivalLabelRows = 40
	maxYearsInJapan  = 30

	arrivalSerialMin = 30000
	arrivalSerialMax = 50000

	// ambiguousFactor downweights dates that also sit next to birth or age
	// labels.
	ambiguousFactor = 0.6
)

var (
	arrivalLabelWindow = spatial.Window{RowMin: -2, RowMax: 4, ColMin: -2, ColMax: 24}

	arrivalYearRes = []*regexp.Regexp{
		regexp.MustCompile(`^(20\d{2})$`),
		regexp.MustCompile(`(20\d{2})\s*[年/.\-]`),
		regexp.MustCompile(`(19[9]\d)\s*[年/.\-]`),
	}
	arrivalEraRe = regexp.MustCompile(`(平成|令和|\b[HR])\s*(\d{1,2}|元)\s*年`)
)

// durationPattern reads "N years in Japan" style text.
type durationPattern struct {
	re   *regexp.Regexp
	conf float64
}

var arrivalDurations = []durationPattern{
	{regexp.MustCompile(`来日\s*(\d{1,2})\s*年`), 4.0},
	{regexp.MustCompile(`在日\s*(\d{1,2})\s*年`), 4.0},
	{regexp.MustCompile(`日本滞在\s*(\d{1,2})\s*年`), 3.5},
	{regexp.MustCompile(`滞在年数\s*[:：]?\s*(\d{1,2})\s*年?`), 3.5},
	{regexp.MustCompile(`日本(?:[^語\d][^\d]*?)?(\d{1,2})\s*年`), 2.0},
	{regexp.MustCompile(`(?:^|\D)(\d{1,2})\s*年\D*?日本(?:[^語]|$)`), 2.0},
}

// ArrivalExtractor finds the year the candidate came to Japan.
type ArrivalExtractor struct {
	env Env
}

// NewArrivalExtractor returns an ArrivalExtractor.
func NewArrivalExtractor(env Env) *ArrivalExtractor {
	return &ArrivalExtractor{env: env}
}

// Extract returns the four-digit arrival year. The year of birth, when
// known, is never returned.
func (x *ArrivalExtractor) Extract(doc *models.Document, birth *time.Time) (string, bool) {
	c := &arrivalCollector{Collector: candidate.New(), env: x.env, birthYear: -1}
	if birth != nil {
		c.birthYear = birth.Year()
	}
	for _, s := range doc.Sheets {
		x.durations(s, c)
		x.labelled(s, c)
		x.contextDates(s, c)
	}
	return c.Best()
}

// arrivalCollector drops the birth year and out-of-range years.
type arrivalCollector struct {
	*candidate.Collector
	env       Env
	birthYear int
}

func (c *arrivalCollector) add(strategy string, s *models.Sheet, cell models.Cell, year int, conf float64) {
	if year == c.birthYear || year < arrivalMinYear || year > c.env.Now.Year() {
		return
	}
	v := strconv.Itoa(year)
	c.env.trace("arrival_year", strategy, s, cell, v, conf)
	c.Add(v, conf)
}

// durations converts "来日5年" style statements to a year.
func (x *ArrivalExtractor) durations(s *models.Sheet, c *arrivalCollector) {
	for r := 0; r < s.RowCount(); r++ {
		for col := 0; col < s.ColCount(); col++ {
			cell := s.CellAt(r, col)
			if cell.Type != models.CellText {
				continue
			}
			v := cellText(cell)
			for _, p := range arrivalDurations {
				m := p.re.FindStringSubmatch(v)
				if m == nil {
					continue
				}
				if n := atoi(m[1]); n >= 1 && n <= maxYearsInJapan {
					c.add("duration", s, cell, x.env.Now.Year()-n, p.conf)
				}
			}
		}
	}
}

// labelled reads years around arrival label cells.
func (x *ArrivalExtractor) labelled(s *models.Sheet, c *arrivalCollector) {
	labels := x.env.Vocab.Labels.Arrival
	for r := 0; r < rows(s, arrivalLabelRows); r++ {
		for col := 0; col < s.ColCount(); col++ {
			if !spatial.ContainsAny(cellText(s.CellAt(r, col)), labels) {
				continue
			}
			for cell := range spatial.Scan(s, r, col, arrivalLabelWindow) {
				if year, conf, ok := x.yearOf(cell); ok {
					c.add("label", s, cell, year, conf*x.ambiguity(s, cell, 1))
				}
			}
		}
	}
}

// contextDates accepts date cells and serials near arrival context.
func (x *ArrivalExtractor) contextDates(s *models.Sheet, c *arrivalCollector) {
	labels := x.env.Vocab.Labels.Arrival
	radius := x.env.Tuning.ContextRadius
	for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
		for col := 0; col < s.ColCount(); col++ {
			cell := s.CellAt(r, col)
			var d time.Time
			var conf float64
			switch {
			case cell.Type == models.CellDate:
				d, conf = cell.Date, 2.5
			case cell.IsNumber() && cell.Number >= arrivalSerialMin && cell.Number <= arrivalSerialMax:
				t, ok := dates.FromSerial(cell.Number)
				if !ok {
					continue
				}
				d, conf = t, 3.0
			default:
				continue
			}
			if !spatial.HasNearbyKeyword(s, r, col, labels, radius) {
				continue
			}
			c.add("context", s, cell, d.Year(), conf*x.ambiguity(s, cell, radius))
		}
	}
}

// yearOf reads an arrival year from a typed date, serial, year number or
// text.
func (x *ArrivalExtractor) yearOf(cell models.Cell) (int, float64, bool) {
	switch cell.Type {
	case models.CellDate:
		return cell.Date.Year(), 2.0, true
	case models.CellInt, models.CellFloat:
		n := cell.Number
		if n >= arrivalSerialMin && n <= arrivalSerialMax {
			if d, ok := dates.FromSerial(n); ok {
				return d.Year(), 2.0, true
			}
			return 0, 0, false
		}
		if y := int(n); float64(y) == n && y >= arrivalMinYear && y <= x.env.Now.Year() {
			return y, 1.8, true
		}
	case models.CellText:
		if y, ok := parseArrivalYear(cellText(cell)); ok {
			return y, 1.8, true
		}
	}
	return 0, 0, false
}

// ambiguity returns ambiguousFactor when birth or age labels are within
// radius of the cell.
func (x *ArrivalExtractor) ambiguity(s *models.Sheet, cell models.Cell, radius int) float64 {
	l := x.env.Vocab.Labels
	if spatial.HasNearbyKeyword(s, cell.Row, cell.Col, slices.Concat(l.Birth, l.Age), radius) {
		return ambiguousFactor
	}
	return 1
}

// parseArrivalYear reads a year such as "2016", "2016年4月" or "平成28年".
func parseArrivalYear(v string) (int, bool) {
	for _, re := range arrivalYearRes {
		if m := re.FindStringSubmatch(v); m != nil {
			return atoi(m[1]), true
		}
	}
	if m := arrivalEraRe.FindStringSubmatch(v); m != nil {
		return dates.EraYear(m[1], m[2])
	}
	return 0, false
}
