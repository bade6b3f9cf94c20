package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

const (
	experienceScanRows    = 60
	projectScanRows       = 50
	maxExperienceYears    = 40
	maxProjectSpanYears   = 15
	seniorExperienceYears = 5
)

var (
	experienceWindow = spatial.Window{RowMin: -3, RowMax: 5, ColMin: -3, ColMax: 29}

	// legend and qualifier text that is not a value
	experienceSkipWords  = []string{"以上", "未満", "◎", "○", "△", "指導", "精通", "できる"}
	experienceRejectWord = []string{"以上", "未満", "◎", "○", "△", "経験"}

	monthUnit = `(?:ヶ月|ヵ月|か月|カ月|ケ月|箇月)`

	expYMExactRe      = regexp.MustCompile(`^(\d{1,2})\s*年\s*(\d{1,2})\s*` + monthUnit + `$`)
	expYearExactRe    = regexp.MustCompile(`^(\d{1,2}(?:\.\d+)?)\s*年$`)
	expNumberRe       = regexp.MustCompile(`^(\d{1,2}(?:\.\d+)?)$`)
	expYMRe           = regexp.MustCompile(`(?:^|\D)(\d{1,2})\s*年\s*(\d{1,2})\s*` + monthUnit)
	expYearRe         = regexp.MustCompile(`(?:^|[^\d.])(\d{1,2}(?:\.\d+)?)\s*年(?:[^月度目生]|$)`)
	projectYMTextRe   = regexp.MustCompile(`(20\d{2})\s*[年/.\-]\s*(\d{1,2})`)
	experienceYearsRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)年`)
)

// labelWeights boost specific experience labels over the generic ones.
var labelWeights = []struct {
	label  string
	weight float64
}{
	{"ソフト関連業務経験年数", 3.0},
	{"IT経験年数", 2.5},
	{"実務経験", 2.0},
}

// ExperienceExtractor finds the length of IT experience.
type ExperienceExtractor struct {
	env Env
}

// NewExperienceExtractor returns an ExperienceExtractor.
func NewExperienceExtractor(env Env) *ExperienceExtractor {
	return &ExperienceExtractor{env: env}
}

// Extract returns the experience formatted as "N年" or "N年Mヶ月".
func (x *ExperienceExtractor) Extract(doc *models.Document) (string, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.labelled(s, col)
	}
	x.fromProjects(doc, col)
	return col.Best()
}

// labelled reads values around experience label cells.
func (x *ExperienceExtractor) labelled(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Experience
	for r := 0; r < rows(s, experienceScanRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			label := s.CellAt(r, c)
			text := cellText(label)
			if !spatial.ContainsAny(text, labels) || spatial.ContainsAny(text, experienceSkipWords) {
				continue
			}
			base := 1.0
			for _, lw := range labelWeights {
				if strings.Contains(text, lw.label) {
					base = lw.weight
					break
				}
			}

			// 経験年数：5年
			if rest, ok := afterColon(text); ok {
				if v, ok := parseExperience(rest); ok {
					x.add(col, "inline", s, label, v, base*1.2)
				}
			}

			for cell := range spatial.Scan(s, r, c, experienceWindow) {
				if cell.Row == r && cell.Col == c {
					continue
				}
				v, ok := parseExperience(cellText(cell))
				if !ok {
					continue
				}
				conf := base / (1 + 0.05*float64(spatial.Manhattan(cell.Row-r, cell.Col-c)))
				if cell.IsNumber() || expNumberRe.MatchString(cellText(cell)) {
					conf *= 0.5
				}
				x.add(col, "label", s, cell, v, conf)
			}
		}
	}
}

// fromProjects infers a minimum experience from the earliest project start
// date found on project rows.
func (x *ExperienceExtractor) fromProjects(doc *models.Document, col *candidate.Collector) {
	now := x.env.Now
	earliest := 0
	var at models.Cell
	var sheet *models.Sheet
	for _, s := range doc.Sheets {
		for r := 0; r < rows(s, projectScanRows); r++ {
			if !spatial.ContainsAny(s.RowText(r), x.env.Vocab.Labels.Project) {
				continue
			}
			for c := 0; c < s.ColCount(); c++ {
				cell := s.CellAt(r, c)
				y, ok := projectYear(cell)
				if !ok {
					continue
				}
				years := now.Year() - y
				if years < 1 || years > maxProjectSpanYears {
					continue
				}
				if earliest == 0 || y < earliest {
					earliest, at, sheet = y, cell, s
				}
			}
		}
	}
	if earliest == 0 {
		return
	}
	years := now.Year() - earliest
	conf := 1.2
	if years >= seniorExperienceYears {
		conf = 1.5
	}
	v := strconv.Itoa(years) + "年"
	x.env.trace("experience", "projects", sheet, at, v, conf)
	col.Add(v, conf)
}

func (x *ExperienceExtractor) add(col *candidate.Collector, strategy string, s *models.Sheet, c models.Cell, v string, conf float64) {
	x.env.trace("experience", strategy, s, c, v, conf)
	col.Add(v, conf)
}

// projectYear reads a project start year from a date cell or "2019年4月"
// style text.
func projectYear(c models.Cell) (int, bool) {
	if c.Type == models.CellDate {
		return c.Date.Year(), true
	}
	if c.Type != models.CellText {
		return 0, false
	}
	if m := projectYMTextRe.FindStringSubmatch(cellText(c)); m != nil {
		if mo := atoi(m[2]); mo >= 1 && mo <= 12 {
			return atoi(m[1]), true
		}
	}
	return 0, false
}

// parseExperience normalizes a cell value to "N年" or "N年Mヶ月".
func parseExperience(v string) (string, bool) {
	v = candidate.Normalize(v)
	if v == "" || spatial.ContainsAny(v, experienceRejectWord) {
		return "", false
	}
	if m := expYMExactRe.FindStringSubmatch(v); m != nil {
		return formatYM(m[1], m[2])
	}
	if m := expYearExactRe.FindStringSubmatch(v); m != nil {
		return formatYears(m[1])
	}
	if m := expNumberRe.FindStringSubmatch(v); m != nil {
		return formatYears(m[1])
	}
	if m := expYMRe.FindStringSubmatch(v); m != nil {
		return formatYM(m[1], m[2])
	}
	if m := expYearRe.FindStringSubmatch(v); m != nil {
		return formatYears(m[1])
	}
	return "", false
}

func formatYM(y, m string) (string, bool) {
	years, months := atoi(y), atoi(m)
	if years < 0 || years > maxExperienceYears || months > 11 || years+months == 0 {
		return "", false
	}
	if months == 0 {
		return fmt.Sprintf("%d年", years), true
	}
	return fmt.Sprintf("%d年%dヶ月", years, months), true
}

func formatYears(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 || f > maxExperienceYears {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "年", true
}

// ExperienceYears returns the whole years of an experience value such as
// "5年" or "3年6ヶ月".
func ExperienceYears(v string) (float64, bool) {
	m := experienceYearsRe.FindStringSubmatch(candidate.Normalize(v))
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	return f, err == nil
}
