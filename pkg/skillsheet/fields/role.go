package fields

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
)

const (
	roleHeaderRows   = 30
	roleHeaderMaxLen = 20

	// rolePhaseCells is how many phase cells make a row the work-scope
	// header.
	rolePhaseCells = 3

	rolePhaseRowsBelow = 9
	rolePhaseLeftCols  = 5
	roleContextRows    = 10
	roleScanMaxLen     = 50
	legendMaxLen       = 30
)

var (
	plsqlRe = regexp.MustCompile(`(?i)PL\s*[/・]\s*SQL|SQL\s*[・\s]\s*PL\b`)

	legendIndicators = []string{":", "リーダー", "プロジェクト", "プログラマー", "経験有り"}
	legendWords      = []string{"説明", "凡例", "記号", "マーク", "表記"}

	// scopeWords extend the phase keywords when locating the work-scope
	// header row.
	scopeWords = []string{"作業範囲"}
)

// RoleExtractor finds role codes such as PM, PL and PG.
type RoleExtractor struct {
	env   Env
	codes []roleCode
	names []roleName
}

type roleCode struct {
	code  string
	re    *regexp.Regexp
	label *regexp.Regexp
}

type roleName struct {
	code string
	re   *regexp.Regexp
}

// NewRoleExtractor returns a RoleExtractor.
func NewRoleExtractor(env Env) *RoleExtractor {
	x := &RoleExtractor{env: env}
	for _, code := range env.Vocab.Roles {
		q := regexp.QuoteMeta(code)
		x.codes = append(x.codes, roleCode{
			code:  code,
			re:    regexp.MustCompile(`(?:^|[^A-Za-z])` + q + `(?:[^A-Za-z]|$)`),
			label: regexp.MustCompile(`(?:^|[^A-Za-z])` + q + `\s*:`),
		})
	}
	names := make([]string, 0, len(env.Vocab.RoleNames))
	for name := range env.Vocab.RoleNames {
		names = append(names, name)
	}
	// longest first so that "Bridge System Engineer" wins over "System Engineer"
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, name := range names {
		x.names = append(x.names, roleName{
			code: env.Vocab.RoleNames[name],
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name)),
		})
	}
	return x
}

// Extract returns the roles sorted by seniority, most senior first.
func (x *RoleExtractor) Extract(doc *models.Document) []string {
	col := candidate.New()
	for _, s := range doc.Sheets {
		x.headerColumns(s, col)
		x.phaseRows(s, col)
		if col.Len() < 2 {
			x.roleColumns(s, col)
		}
		if col.Len() == 0 {
			x.scan(s, col)
		}
	}
	roles := col.Values()
	slices.SortStableFunc(roles, func(a, b string) int {
		return cmp.Compare(x.env.Vocab.RoleRank[b], x.env.Vocab.RoleRank[a])
	})
	return roles
}

// headerColumns reads the cells below a role column header.
func (x *RoleExtractor) headerColumns(s *models.Sheet, col *candidate.Collector) {
	for r := 0; r < rows(s, roleHeaderRows); r++ {
		for c := 0; c < s.ColCount(); c++ {
			v := cellText(s.CellAt(r, c))
			if runeLen(v) >= roleHeaderMaxLen || !spatial.ContainsAny(v, x.env.Vocab.RoleHeaders) {
				continue
			}
			for below := r + 1; below < s.RowCount(); below++ {
				x.addFrom(col, "header", s, s.CellAt(below, c), 2.0)
			}
		}
	}
}

// phaseRows reads cells left of and below a work-scope header row.
func (x *RoleExtractor) phaseRows(s *models.Sheet, col *candidate.Collector) {
	keywords := slices.Concat(x.env.Vocab.Phases, scopeWords)
	for r := 0; r < s.RowCount(); r++ {
		first, n := -1, 0
		for c := 0; c < s.ColCount(); c++ {
			if spatial.ContainsAny(cellText(s.CellAt(r, c)), keywords) {
				if first < 0 {
					first = c
				}
				n++
			}
		}
		if n < rolePhaseCells {
			continue
		}
		for c := 0; c < first; c++ {
			x.addFrom(col, "phase-row", s, s.CellAt(r, c), 1.5)
		}
		for below := r + 1; below <= r+rolePhaseRowsBelow && below < s.RowCount(); below++ {
			for c := 0; c < min(rolePhaseLeftCols, first); c++ {
				x.addFrom(col, "phase-row", s, s.CellAt(below, c), 1.5)
			}
		}
	}
}

// roleColumns reads every column that holds at least two role cells.
func (x *RoleExtractor) roleColumns(s *models.Sheet, col *candidate.Collector) {
	for c := 0; c < s.ColCount(); c++ {
		n := 0
		for r := 0; r < s.RowCount(); r++ {
			if len(x.fromText(cellText(s.CellAt(r, c)))) > 0 {
				n++
			}
		}
		if n < 2 {
			continue
		}
		for r := 0; r < s.RowCount(); r++ {
			x.addFrom(col, "column", s, s.CellAt(r, c), 1.0)
		}
	}
}

// scan accepts short role cells that sit among other roles or project
// content.
func (x *RoleExtractor) scan(s *models.Sheet, col *candidate.Collector) {
	for r := 0; r < s.RowCount(); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			v := cellText(cell)
			if v == "" || runeLen(v) > roleScanMaxLen {
				continue
			}
			if len(x.fromText(v)) == 0 || !x.validContext(s, r, c) {
				continue
			}
			x.addFrom(col, "scan", s, cell, 0.8)
		}
	}
}

// validContext reports whether the same column near row r has another role
// or project vocabulary.
func (x *RoleExtractor) validContext(s *models.Sheet, r, c int) bool {
	roles, project := 0, 0
	for rr := max(0, r-roleContextRows); rr < min(s.RowCount(), r+roleContextRows); rr++ {
		if rr == r {
			continue
		}
		v := cellText(s.CellAt(rr, c))
		if v == "" {
			continue
		}
		if len(x.fromText(v)) > 0 {
			roles++
		}
		if spatial.ContainsAny(v, x.env.Vocab.ProjectWords) {
			project++
		}
	}
	return roles > 0 || project >= 2
}

func (x *RoleExtractor) addFrom(col *candidate.Collector, strategy string, s *models.Sheet, cell models.Cell, conf float64) {
	if cell.Type != models.CellText {
		return
	}
	for _, role := range x.fromText(cellText(cell)) {
		x.env.trace("roles", strategy, s, cell, role, conf)
		col.Add(role, conf)
	}
}

// fromText returns the roles named in one cell. Legends, "PL:" style
// definitions and PL/SQL are not roles.
func (x *RoleExtractor) fromText(v string) []string {
	v = stripMarks(candidate.Fold(v), x.env.Vocab.SkillMarks)
	if v == "" || x.isLegend(v) {
		return nil
	}
	v = plsqlRe.ReplaceAllString(v, " ")
	for _, rc := range x.codes {
		if rc.label.MatchString(v) {
			return nil
		}
	}

	var out []string
	for _, rn := range x.names {
		if !rn.re.MatchString(v) {
			continue
		}
		if !slices.Contains(out, rn.code) {
			out = append(out, rn.code)
		}
		v = rn.re.ReplaceAllString(v, " ")
	}
	for _, rc := range x.codes {
		if rc.re.MatchString(v) && !slices.Contains(out, rc.code) {
			out = append(out, rc.code)
		}
	}
	return out
}

// isLegend reports explanatory text that lists several roles.
func (x *RoleExtractor) isLegend(v string) bool {
	n := 0
	for _, code := range x.env.Vocab.Roles {
		if strings.Contains(v, code) {
			n++
		}
	}
	if n >= 2 && spatial.ContainsAny(v, legendIndicators) {
		return true
	}
	return n > 0 && runeLen(v) > legendMaxLen && spatial.ContainsAny(v, legendWords)
}

