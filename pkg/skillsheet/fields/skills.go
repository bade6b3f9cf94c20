package fields

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/spatial"
	"go.uber.org/zap"
)

const (
	// minPrimarySkills triggers the fallbacks when the column pass finds
	// fewer skills.
	minPrimarySkills = 5
	// minTechColumnScore accepts a column as a technology column.
	minTechColumnScore = 2
	techHeaderScore    = 10
	// minTechLines makes a multi-line cell count as a skill list.
	minTechLines = 3
	maxSkillLen  = 50
	// columnEndMaxLen keeps long free-text cells from ending a column.
	columnEndMaxLen = 20
)

var (
	skillSplitRe  = regexp.MustCompile(`[、,，/／\s|｜;；・]+`)
	bracketRe     = regexp.MustCompile(`[()（）\[\]【】「」<>＜＞]`)
	windowsNumRe  = regexp.MustCompile(`(?i)^win(?:dows)?\s*\d+$`)
	winContentRe  = regexp.MustCompile(`(?i)\bwin\d+\b`)
	columnDateRe  = regexp.MustCompile(`^\d{4}\s*[年/]\s*\d{1,2}\s*[月/]`)
	placeholderRe = regexp.MustCompile(`^\x{E000}(\d+)\x{E000}$`)

	// nonSkillPhrases are section names that never name a technology.
	nonSkillPhrases = []string{
		"自己PR", "自己紹介", "志望動機", "アピール", "ポイント", "経歴書", "履歴書", "スキルシート",
		"職務経歴", "氏名", "性別", "生年月日", "年齢", "住所", "電話", "学歴", "職歴", "資格",
		"趣味", "特技", "備考",
	}
)

// SkillsExtractor collects technology names from the project history table.
type SkillsExtractor struct {
	env     Env
	vocab   *regexp.Regexp
	noSplit []*regexp.Regexp
}

// NewSkillsExtractor returns a SkillsExtractor. The vocabulary matcher is
// compiled once per extractor.
func NewSkillsExtractor(env Env) *SkillsExtractor {
	names := make([]string, 0, len(env.Vocab.Skills))
	for _, sk := range env.Vocab.Skills {
		if runeLen(sk) >= 2 {
			names = append(names, sk)
		}
	}
	slices.SortStableFunc(names, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	for i, n := range names {
		names[i] = regexp.QuoteMeta(n)
	}

	multi := slices.Clone(env.Vocab.NoSplitSkills)
	slices.SortStableFunc(multi, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	noSplit := make([]*regexp.Regexp, len(multi))
	for i, n := range multi {
		noSplit[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(n))
	}

	return &SkillsExtractor{
		env:     env,
		vocab:   regexp.MustCompile(`(?i)` + strings.Join(names, "|")),
		noSplit: noSplit,
	}
}

// phaseHeader is the topmost phase keyword cell of one column.
type phaseHeader struct {
	row, col int
}

// techColumn is a column left of a phase header that holds technologies.
type techColumn struct {
	col, start int
	score      int
}

// Extract returns the skills in first-seen order, deduplicated
// case-insensitively.
func (x *SkillsExtractor) Extract(doc *models.Document) []string {
	out := candidate.NewCaseInsensitive()
	for _, s := range doc.Sheets {
		sheet := candidate.NewCaseInsensitive()
		headers := x.phaseHeaders(s)
		for _, sk := range x.fromColumns(s, headers) {
			sheet.Add(sk, 1)
		}

		top := 0
		if len(headers) > 0 {
			top = slices.MinFunc(headers, func(a, b phaseHeader) int { return cmp.Compare(a.row, b.row) }).row
		}
		if sheet.Len() < minPrimarySkills {
			for _, sk := range x.fromMultiLineCells(s, top) {
				sheet.Add(sk, 1)
			}
		}
		if sheet.Len() < minPrimarySkills {
			for _, sk := range x.fromVocabulary(s, top) {
				sheet.Add(sk, 1)
			}
		}
		for _, sk := range sheet.Values() {
			out.Add(sk, 1)
		}
	}
	return out.Values()
}

// phaseHeaders finds, for each column from right to left, the first row
// holding a phase keyword.
func (x *SkillsExtractor) phaseHeaders(s *models.Sheet) []phaseHeader {
	var out []phaseHeader
	for c := s.ColCount() - 1; c >= 0; c-- {
		for r := 0; r < s.RowCount(); r++ {
			if spatial.ContainsAny(cellText(s.CellAt(r, c)), x.env.Vocab.Phases) {
				out = append(out, phaseHeader{row: r, col: c})
				break
			}
		}
	}
	return out
}

// fromColumns extracts every technology column left of each phase header.
func (x *SkillsExtractor) fromColumns(s *models.Sheet, headers []phaseHeader) []string {
	var out []string
	seen := make(map[int]bool)
	for _, h := range headers {
		var cols []techColumn
		for c := h.col - 1; c >= 0 && c > h.col-x.env.Tuning.TechColumnSpan; c-- {
			if seen[c] {
				continue
			}
			if tc, ok := x.analyzeColumn(s, c, h.row); ok {
				cols = append(cols, tc)
			}
		}
		slices.SortFunc(cols, func(a, b techColumn) int { return cmp.Compare(a.col, b.col) })
		for _, tc := range cols {
			seen[tc.col] = true
			x.env.log().Debug("technology column",
				zap.String("sheet", s.Name), zap.Int("col", tc.col), zap.Int("start", tc.start), zap.Int("score", tc.score))
			out = append(out, x.extractColumn(s, tc)...)
		}
	}
	return out
}

// analyzeColumn scores column c from row start down: a header keyword is
// worth techHeaderScore, each cell with technology content one point.
func (x *SkillsExtractor) analyzeColumn(s *models.Sheet, c, start int) (techColumn, bool) {
	tc := techColumn{col: c, start: -1}
	for r := start; r < s.RowCount(); r++ {
		cell := s.CellAt(r, c)
		if cell.IsEmpty() {
			continue
		}
		v := candidate.Fold(cell.String())
		if spatial.ContainsAny(v, x.env.Vocab.TechHeaders) {
			tc.score += techHeaderScore
			if tc.start < 0 {
				tc.start = r
			}
		}
		if x.hasTech(v) {
			tc.score++
			if tc.start < 0 {
				tc.start = r
			}
		}
	}
	if tc.start < 0 {
		tc.start = start
	}
	return tc, tc.score >= minTechColumnScore
}

// extractColumn reads a technology column downward until a date, an end
// marker or a run of blank cells.
func (x *SkillsExtractor) extractColumn(s *models.Sheet, tc techColumn) []string {
	var out []string
	blanks := 0
	for r := tc.start; r < s.RowCount(); r++ {
		cell := s.CellAt(r, tc.col)
		if cell.IsEmpty() {
			blanks++
			if blanks >= x.env.Tuning.BlankRun {
				break
			}
			continue
		}
		blanks = 0
		v := strings.TrimSpace(candidate.Fold(cell.String()))
		if x.columnEnd(cell, v, r > tc.start) {
			break
		}
		if slices.Contains(x.env.Vocab.Roles, v) {
			continue
		}
		for _, line := range strings.Split(v, "\n") {
			for _, sk := range x.fromLine(line) {
				x.env.trace("skills", "column", s, cell, sk, 1)
				out = append(out, sk)
			}
		}
	}
	return out
}

// columnEnd reports whether a cell starts the next section.
func (x *SkillsExtractor) columnEnd(cell models.Cell, v string, belowStart bool) bool {
	if cell.Type == models.CellDate || columnDateRe.MatchString(v) {
		return true
	}
	return belowStart && runeLen(v) <= columnEndMaxLen && spatial.ContainsAny(v, x.env.Vocab.ColumnEnd)
}

// fromMultiLineCells reads cells below row top whose lines are mostly
// technologies.
func (x *SkillsExtractor) fromMultiLineCells(s *models.Sheet, top int) []string {
	var out []string
	for r := top; r < s.RowCount(); r++ {
		for c := 0; c < s.ColCount(); c++ {
			cell := s.CellAt(r, c)
			v := candidate.Fold(cell.String())
			if !strings.Contains(v, "\n") {
				continue
			}
			lines := strings.Split(v, "\n")
			n := 0
			for _, line := range lines {
				if x.hasTech(line) {
					n++
				}
			}
			if n < minTechLines {
				continue
			}
			for _, line := range lines {
				for _, sk := range x.fromLine(line) {
					x.env.trace("skills", "multi-line", s, cell, sk, 1)
					out = append(out, sk)
				}
			}
		}
	}
	return out
}

// fromVocabulary finds vocabulary names anywhere below row top, in text
// order.
func (x *SkillsExtractor) fromVocabulary(s *models.Sheet, top int) []string {
	var out []string
	for r := top; r < s.RowCount(); r++ {
		text := candidate.Fold(s.RowText(r))
		for _, m := range x.matches(text) {
			if sk, ok := x.env.Vocab.CanonicalSkill(m); ok {
				x.env.trace("skills", "vocabulary", s, models.Cell{Row: r}, sk, 1)
				out = append(out, sk)
			}
		}
	}
	return out
}

// matches returns vocabulary names in text that are not part of a longer
// alphanumeric word.
func (x *SkillsExtractor) matches(text string) []string {
	var out []string
	for _, loc := range x.vocab.FindAllStringIndex(text, -1) {
		if isWordByte(text, loc[0]-1) || isWordByte(text, loc[1]) {
			continue
		}
		out = append(out, text[loc[0]:loc[1]])
	}
	return out
}

func isWordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	b := s[i]
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}

// hasTech reports whether text mentions a known technology.
func (x *SkillsExtractor) hasTech(text string) bool {
	return len(x.matches(text)) > 0 || winContentRe.MatchString(text)
}

// fromLine splits one line of a technology cell into validated, normalized
// skill names.
func (x *SkillsExtractor) fromLine(line string) []string {
	line = stripMarks(candidate.Normalize(line), x.env.Vocab.SkillMarks)
	if line == "" {
		return nil
	}
	line = bracketRe.ReplaceAllString(line, "/")

	protected, restore := x.protect(line)
	var out []string
	for _, tok := range skillSplitRe.Split(protected, -1) {
		if tok == "" {
			continue
		}
		if m := placeholderRe.FindStringSubmatch(tok); m != nil {
			tok = restore[atoi(m[1])]
		}
		if sk, ok := x.skill(tok); ok {
			out = append(out, sk)
		}
	}
	return out
}

// protect replaces multi-word names with placeholders so that splitting
// leaves them intact.
func (x *SkillsExtractor) protect(line string) (string, []string) {
	var restore []string
	for _, re := range x.noSplit {
		line = re.ReplaceAllStringFunc(line, func(m string) string {
			restore = append(restore, m)
			return " \uE000" + strconv.Itoa(len(restore)-1) + "\uE000 "
		})
	}
	return line, restore
}

// skill normalizes and validates one token.
func (x *SkillsExtractor) skill(tok string) (string, bool) {
	tok = x.normalize(tok)
	if tok == "" || runeLen(tok) > maxSkillLen {
		return "", false
	}
	if spatial.ContainsAny(tok, nonSkillPhrases) {
		return "", false
	}
	for _, re := range x.env.Vocab.SkillExcludes {
		if re.MatchString(tok) {
			return "", false
		}
	}
	if _, ok := x.env.Vocab.CanonicalSkill(tok); ok {
		return tok, true
	}
	for _, ns := range x.env.Vocab.NoSplitSkills {
		if strings.EqualFold(ns, tok) {
			return tok, true
		}
	}
	if !hasASCIILetter(tok) || runeLen(tok) < 2 {
		return "", false
	}
	if spatial.ContainsAny(tok, x.env.Vocab.NonSkillWords) || japaneseRatio(tok) > 0.5 {
		return "", false
	}
	return tok, true
}

// normalize maps a token to its canonical spelling.
func (x *SkillsExtractor) normalize(tok string) string {
	tok = strings.TrimSpace(tok)
	if rest, ok := afterColon(tok); ok && rest != "" {
		tok = rest
	}
	lower := strings.ToLower(tok)
	switch {
	case strings.Contains(lower, "windows") || windowsNumRe.MatchString(tok):
		return "Windows"
	case strings.Contains(lower, "linux"):
		return "Linux"
	}
	if syn, ok := x.env.Vocab.SkillSynonyms[lower]; ok {
		return syn
	}
	if sk, ok := x.env.Vocab.CanonicalSkill(tok); ok {
		return sk
	}
	for _, ns := range x.env.Vocab.NoSplitSkills {
		if strings.EqualFold(ns, tok) {
			return ns
		}
	}
	return tok
}
