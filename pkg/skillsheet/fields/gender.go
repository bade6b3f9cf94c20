package fields

import (
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

// Gender values.
const (
	Male   = "male"
	Female = "female"
)

var genderLabelWindow = spatial.Window{RowMin: -2, RowMax: 2, ColMin: -2, ColMax: 9}

// GenderExtractor finds the gender. A token only counts when a gender label
// is nearby.
type GenderExtractor struct {
	env Env
}

// NewGenderExtractor returns a GenderExtractor.
func NewGenderExtractor(env Env) *GenderExtractor {
	return &GenderExtractor{env: env}
}

// Extract returns Male or Female.
func (x *GenderExtractor) Extract(doc *models.Document) (string, bool) {
	labels := x.env.Vocab.Labels.Gender
	col := candidate.New()
	for _, s := range doc.Sheets {
		for r := 0; r < rows(s, x.env.Tuning.ScanRows); r++ {
			for c := 0; c < s.ColCount(); c++ {
				cell := s.CellAt(r, c)
				v := cellText(cell)
				if v == "" {
					continue
				}

				if g, ok := genderToken(v, false); ok &&
					spatial.HasNearbyKeyword(s, r, c, labels, x.env.Tuning.GenderRadius) {
					x.env.trace("gender", "gated", s, cell, g, 2.0)
					col.Add(g, 2.0)
				}

				if !spatial.ContainsAny(v, labels) {
					continue
				}
				// 性別：男
				if rest, ok := afterColon(v); ok {
					if g, ok := genderToken(rest, true); ok {
						x.env.trace("gender", "inline", s, cell, g, 2.0)
						col.Add(g, 2.0)
					}
				}
				for near := range spatial.Scan(s, r, c, genderLabelWindow) {
					if near.Row == r && near.Col == c {
						continue
					}
					if g, ok := genderToken(cellText(near), true); ok {
						x.env.trace("gender", "label", s, near, g, 1.0)
						col.Add(g, 1.0)
					}
				}
			}
		}
	}
	return col.Best()
}

// genderToken maps a canonical gender token. Latin letters are only
// accepted next to a label.
func genderToken(v string, latin bool) (string, bool) {
	switch v {
	case "男", "男性":
		return Male, true
	case "女", "女性":
		return Female, true
	}
	if !latin {
		return "", false
	}
	switch strings.ToLower(v) {
	case "m", "male":
		return Male, true
	case "f", "female":
		return Female, true
	}
	return "", false
}
