package fields

import (
	"math"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

const (
	nationalityScanRows  = 50
	nationalityLabelRows = 40
)

var (
	nationalityLabelWindow = spatial.Window{RowMin: -3, RowMax: 5, ColMin: -3, ColMax: 14}
	nationalityNeighbors   = []string{"氏名", "性別", "年齢", "学歴"}
)

// NationalityExtractor matches cells against the closed nationality list.
type NationalityExtractor struct {
	env Env
}

// NewNationalityExtractor returns a NationalityExtractor.
func NewNationalityExtractor(env Env) *NationalityExtractor {
	return &NationalityExtractor{env: env}
}

// Extract returns the nationality.
func (x *NationalityExtractor) Extract(doc *models.Document) (string, bool) {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.scan(s, col)
		x.labelled(s, col)
	}
	return col.Best()
}

// scan scores every exact match by the density of personal information
// around it.
func (x *NationalityExtractor) scan(s *models.Sheet, col *candidate.Collector) {
	for r := 0; r < rows(s, nationalityScanRows); r++ {
		rowHasPersonal := spatial.ContainsAny(s.RowText(r), x.env.Vocab.Labels.Personal)
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			v, ok := x.match(cellText(cell))
			if !ok {
				continue
			}
			ctx := spatial.ContextScore(s, r, c, nationalityNeighbors)
			if rowHasPersonal {
				ctx += 2
			}
			conf := math.Max(1, ctx)
			x.env.trace("nationality", "scan", s, cell, v, conf)
			col.Add(v, conf)
		}
	}
}

// labelled looks around nationality label cells.
func (x *NationalityExtractor) labelled(s *models.Sheet, col *candidate.Collector) {
	labels := x.env.Vocab.Labels.Nationality
	for r := 0; r < rows(s, nationalityLabelRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			label := s.CellAt(r, c)
			text := cellText(label)
			if !spatial.ContainsAny(text, labels) {
				continue
			}
			// 国籍：中国
			if rest, ok := afterColon(text); ok {
				if v, ok := x.match(rest); ok {
					x.env.trace("nationality", "inline", s, label, v, 3.0)
					col.Add(v, 3.0)
				}
			}
			for cell := range spatial.Scan(s, r, c, nationalityLabelWindow) {
				if v, ok := x.match(cellText(cell)); ok {
					x.env.trace("nationality", "label", s, cell, v, 3.0)
					col.Add(v, 3.0)
				}
			}
		}
	}
}

// match accepts a listed nationality, also written with a 籍 or 人 suffix.
func (x *NationalityExtractor) match(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	for _, cand := range []string{v, strings.TrimSuffix(v, "籍"), strings.TrimSuffix(v, "人")} {
		if x.env.Vocab.IsNationality(cand) {
			return cand, true
		}
	}
	return "", false
}
