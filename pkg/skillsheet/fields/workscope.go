package fields

import (
	"slices"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

// maxPhaseCellLen keeps sentences that mention a phase from acting as
// table headers.
const maxPhaseCellLen = 15

// WorkScopeExtractor reports which development phases are ticked in the
// project table.
type WorkScopeExtractor struct {
	env Env
}

// NewWorkScopeExtractor returns a WorkScopeExtractor.
func NewWorkScopeExtractor(env Env) *WorkScopeExtractor {
	return &WorkScopeExtractor{env: env}
}

// Extract returns canonical phase names in lifecycle order.
func (x *WorkScopeExtractor) Extract(doc *models.Document) []string {
	found := make(map[string]bool)
	for _, s := range doc.Sheets {
		for r := 0; r < s.RowCount(); r++ {
			for c := 0; c < s.ColCount(); c++ {
				cell := s.CellAt(r, c)
				v := cellText(cell)
				if runeLen(v) > maxPhaseCellLen {
					continue
				}
				kw, ok := spatial.FirstKeyword(v, x.env.Vocab.Phases)
				if !ok {
					continue
				}
				if x.marked(s, r, c, kw) {
					phase := x.canonical(kw, v)
					x.env.trace("work_scope", "mark", s, cell, phase, 1)
					found[phase] = true
				}
			}
		}
	}
	return x.order(found)
}

// marked looks down the column for a work mark, stopping at another phase
// header or a dated row.
func (x *WorkScopeExtractor) marked(s *models.Sheet, r, c int, kw string) bool {
	for below := r + 1; below < s.RowCount(); below++ {
		cell := s.CellAt(below, c)
		if cell.IsEmpty() {
			continue
		}
		v := cellText(cell)
		if spatial.ContainsAny(v, x.env.Vocab.WorkMarks) {
			return true
		}
		if other, ok := spatial.FirstKeyword(v, x.env.Vocab.Phases); ok && other != kw {
			return false
		}
		if isDateLike(cell) {
			return false
		}
	}
	return false
}

// canonical maps the matched keyword to its lifecycle name.
func (x *WorkScopeExtractor) canonical(kw, cell string) string {
	if p, ok := x.env.Vocab.PhaseCanonical[kw]; ok {
		return p
	}
	for _, p := range x.env.Vocab.PhaseOrder {
		if strings.Contains(cell, p) {
			return p
		}
	}
	return kw
}

// order sorts phases by the lifecycle; unknown names follow alphabetically.
func (x *WorkScopeExtractor) order(found map[string]bool) []string {
	var out []string
	for _, p := range x.env.Vocab.PhaseOrder {
		if found[p] {
			out = append(out, p)
		}
	}
	var extra []string
	for p := range found {
		if !slices.Contains(x.env.Vocab.PhaseOrder, p) {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}
