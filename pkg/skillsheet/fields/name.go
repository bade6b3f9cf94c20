package fields

import (
	"regexp"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

var (
	// immediate vicinity of a name label
	nameNearWindow = spatial.Window{RowMin: -1, RowMax: 2, ColMin: -1, ColMax: 7}
	// wider area searched at distance 4 to 8
	nameFarWindow = spatial.Window{RowMin: -2, RowMax: 3, ColMin: -2, ColMax: 11}

	schoolRe = regexp.MustCompile(`(?i)大学|学院|研究科|学校|専門|高等|university|college|institute|school`)
)

const (
	nameFallbackRows = 5
	nameFallbackCols = 8
)

// NameExtractor finds the candidate's full name near the top of the sheet.
type NameExtractor struct {
	env Env
}

// NewNameExtractor returns a NameExtractor.
func NewNameExtractor(env Env) *NameExtractor {
	return &NameExtractor{env: env}
}

// Extract returns the best name candidate.
func (x *NameExtractor) Extract(doc *models.Document) (string, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.labelled(s, col)
	}
	// only look unlabelled when no sheet had a usable label
	if col.Len() == 0 {
		for _, s := range doc.Sheets {
			x.topLeft(s, col)
		}
	}
	return col.Best()
}

// labelled searches around name label cells.
func (x *NameExtractor) labelled(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Name
	for r := 0; r < rows(s, x.env.Tuning.NameRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			label := s.CellAt(r, c)
			text := cellText(label)
			if !spatial.ContainsAny(text, labels) {
				continue
			}

			// 氏名：山田 太郎
			if v, ok := afterColon(text); ok && v != "" {
				x.add(col, "inline", s, label, v, 3.0)
			}

			for cell := range spatial.Scan(s, r, c, nameNearWindow) {
				dr, dc := cell.Row-r, cell.Col-c
				d := spatial.Manhattan(dr, dc)
				if d == 0 || d > 3 {
					continue
				}
				v := cellText(cell)
				if x.couldBeName(v) {
					x.add(col, "near", s, cell, v, nearConfidence(dr, dc, v)*2)
				}
			}

			for cell := range spatial.Scan(s, r, c, nameFarWindow) {
				dr, dc := cell.Row-r, cell.Col-c
				d := spatial.Manhattan(dr, dc)
				if d < 4 || d > 8 {
					continue
				}
				v := cellText(cell)
				if x.couldBeName(v) {
					x.add(col, "far", s, cell, v, farConfidence(dr, dc, v))
				}
			}
		}
	}
}

// topLeft scores plausible names in the top-left block without a label.
func (x *NameExtractor) topLeft(s *models.Sheet, col *candidate.Collector) {
	for r := 0; r < rows(s, nameFallbackRows); r++ {
		if spatial.ContainsAny(s.RowText(r), x.env.Vocab.Labels.Education) {
			continue
		}
		for c := 0; c < min(nameFallbackCols, s.ColCount()); c++ {
			cell := s.CellAt(r, c)
			v := cellText(cell)
			if !x.couldBeName(v) {
				continue
			}
			conf := 0.5
			if r <= 3 && c >= 3 {
				conf += 0.4
			}
			if runeLen(v) >= 2 {
				conf += 0.3
			} else if hasHan(v) {
				conf += 0.2
			}
			x.add(col, "top-left", s, cell, v, conf)
		}
	}
}

func (x *NameExtractor) add(col *candidate.Collector, strategy string, s *models.Sheet, c models.Cell, v string, conf float64) {
	if !x.IsValidName(v) {
		return
	}
	if hasHan(v) {
		conf *= 1.2
	}
	if len(strings.Fields(v)) == 2 {
		conf *= 1.1
	}
	if x.env.Names != nil {
		conf *= 1 + 0.5*x.env.Names.PersonNameScore(v)
	}
	x.env.trace("name", strategy, s, c, v, conf)
	col.Add(v, conf)
}

// couldBeName is the cheap pre-filter applied before scoring.
func (x *NameExtractor) couldBeName(v string) bool {
	if v == "" || runeLen(v) > 10 || !hasLetter(v) {
		return false
	}
	voc := x.env.Vocab
	return !spatial.ContainsAny(v, voc.RelationshipWords) && !spatial.ContainsAny(v, voc.Labels.Education)
}

// IsValidName reports whether v passes the denylist and shape checks.
func (x *NameExtractor) IsValidName(v string) bool {
	v = strings.TrimSpace(v)
	n := runeLen(v)
	if n < 1 || n > 15 || !hasLetter(v) || hasDigit(v) {
		return false
	}
	if isSingleKana(v) || schoolRe.MatchString(v) {
		return false
	}
	if strings.ContainsAny(v, "：:（）()【】@") {
		return false
	}
	if n > 10 && strings.ContainsAny(v, "・ー") {
		return false
	}
	if spatial.ContainsAny(v, x.env.Vocab.RelationshipWords) {
		return false
	}

	compact := removeSpaces(v)
	tokens := strings.Fields(v)
	for _, w := range x.env.Vocab.NameDenylist {
		if compact == removeSpaces(w) {
			return false
		}
		// ASCII words and single characters such as 男 or 月 only reject
		// a whole token; inside a token they are ordinary name parts.
		if isASCII(w) || runeLen(w) == 1 {
			for _, t := range tokens {
				if strings.EqualFold(t, w) {
					return false
				}
			}
			continue
		}
		if strings.Contains(v, w) {
			return false
		}
	}
	return true
}

func nearConfidence(dr, dc int, v string) float64 {
	conf := 3.0 / (1 + float64(spatial.Manhattan(dr, dc))*0.5)
	if dc > 0 {
		conf *= 1.4
	}
	if dr >= 0 {
		conf *= 1.3
	}
	if dr > 0 && dc > 0 {
		conf *= 1.2
	}
	if runeLen(v) >= 2 {
		conf *= 1.2
	} else if hasHan(v) {
		conf *= 1.1
	}
	return conf
}

func farConfidence(dr, dc int, v string) float64 {
	conf := 1.0 / (1 + float64(spatial.Manhattan(dr, dc))*0.3)
	if dc > 0 {
		conf *= 1.2
	}
	if dr >= 0 {
		conf *= 1.1
	}
	switch n := runeLen(v); {
	case n >= 3:
		conf *= 1.3
	case n == 2:
		conf *= 1.1
	default:
		conf *= 0.7
	}
	return conf
}
