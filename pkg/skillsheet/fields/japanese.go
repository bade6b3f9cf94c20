package fields

import (
	"regexp"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
)

// Japanese level values produced besides the JLPT grades.
const (
	LevelFluentSuffix = "かなり流暢"
	LevelBusiness     = "ビジネスレベル"
	LevelNative       = "ネイティブレベル"
	LevelFluent       = "流暢"
	LevelAdvanced     = "上級"
	LevelIntermediate = "中級"
	LevelBeginner     = "初級"

	// InferredLevel is assumed for senior engineers with no stated level.
	InferredLevel = "N2以上"
)

var kanjiDigits = map[string]string{"一": "1", "二": "2", "三": "3", "四": "4", "五": "5"}

// levelPattern maps one regex match to a level value. group selects the
// submatch holding the grade digit; zero means the value is fixed.
type levelPattern struct {
	re    *regexp.Regexp
	conf  float64
	group int
	fixed string
}

const (
	fluentWords = `(?:かなり|とても|非常に)?\s*流暢`
	grade       = `N([1-5])`
)

var jlptPatterns = []levelPattern{
	{re: regexp.MustCompile(`(?im)JLPT\s*` + grade + `\s*` + fluentWords), conf: 4.5, group: 1, fixed: LevelFluentSuffix},
	{re: regexp.MustCompile(`(?im)` + grade + `\s*` + fluentWords), conf: 4.0, group: 1, fixed: LevelFluentSuffix},
	{re: regexp.MustCompile(`(?im)JLPT\s*` + grade), conf: 2.0, group: 1},
	{re: regexp.MustCompile(`(?im)` + grade + `\s*(?:合格|取得|レベル|級)`), conf: 1.8, group: 1},
	{re: regexp.MustCompile(`(?im)日本語能力試験\s*N?([1-5])\s*級?`), conf: 1.5, group: 1},
	{re: regexp.MustCompile(`(?im)(?:^|\s)` + grade + `(?:\s|$|[(（])`), conf: 1.0, group: 1},
	{re: regexp.MustCompile(`(?m)日本語.*?([一二三四五])級`), conf: 1.3, group: 1},
	{re: regexp.MustCompile(`(?m)([一二三四五])級.*?日本語`), conf: 1.3, group: 1},
}

var fluencyPatterns = []levelPattern{
	{re: regexp.MustCompile(`(?m)日本語\s*(?:かなり|とても|非常に)\s*流暢`), conf: 2.5, fixed: LevelFluent},
	{re: regexp.MustCompile(`(?m)日本語.*?(?:かなり|とても|非常に).*?流暢`), conf: 2.0, fixed: LevelFluent},
	{re: regexp.MustCompile(`(?m)(?:ビジネス|商务)\s*レベル`), conf: 2.0, fixed: LevelBusiness},
	{re: regexp.MustCompile(`(?m)(?:母語|母国語|ネイティブ)\s*レベル`), conf: 3.0, fixed: LevelNative},
	{re: regexp.MustCompile(`(?m)日本語.*?上級`), conf: 1.5, fixed: LevelAdvanced},
	{re: regexp.MustCompile(`(?m)日本語.*?中級`), conf: 1.5, fixed: LevelIntermediate},
	{re: regexp.MustCompile(`(?m)日本語.*?初級`), conf: 1.5, fixed: LevelBeginner},
	{re: regexp.MustCompile(`(?m)日本語.*?ビジネス`), conf: 1.0, fixed: LevelBusiness},
}

// JapaneseExtractor finds the Japanese proficiency from the full sheet text.
type JapaneseExtractor struct {
	env Env
}

// NewJapaneseExtractor returns a JapaneseExtractor.
func NewJapaneseExtractor(env Env) *JapaneseExtractor {
	return &JapaneseExtractor{env: env}
}

// Extract returns a level such as "N2", "N1かなり流暢" or "ビジネスレベル".
func (x *JapaneseExtractor) Extract(doc *models.Document) (string, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		text := candidate.Fold(s.Text())
		x.match(s, "jlpt", text, jlptPatterns, col)
		x.match(s, "fluency", text, fluencyPatterns, col)
	}
	return col.Best()
}

func (x *JapaneseExtractor) match(s *models.Sheet, strategy, text string, patterns []levelPattern, col *candidate.Collector) {
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			v, conf := p.level(m)
			if v == "" {
				continue
			}
			x.env.trace("japanese_level", strategy, s, models.Cell{}, v, conf)
			col.Add(v, conf)
		}
	}
}

// level renders a match; grade plus fluency patterns get a bonus.
func (p levelPattern) level(m []string) (string, float64) {
	if p.group == 0 {
		return p.fixed, p.conf
	}
	d := m[p.group]
	if k, ok := kanjiDigits[d]; ok {
		d = k
	}
	if p.fixed != "" {
		return "N" + d + p.fixed, p.conf + 1
	}
	return "N" + d, p.conf
}

