package fields

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/candidate"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
)

var (
	dateLikeRe = regexp.MustCompile(`^\d{4}\s*[年/.\-]\s*\d{1,2}`)
	colonRe    = regexp.MustCompile(`[:：]`)
	smallIntRe = regexp.MustCompile(`^\d{1,2}$`)
)

// cellText returns the width-folded, trimmed text of a cell.
func cellText(c models.Cell) string {
	return candidate.Normalize(c.String())
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func removeSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func hasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasASCIILetter(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isSingleKana reports whether s is exactly one hiragana or katakana rune.
func isSingleKana(s string) bool {
	if runeLen(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.In(r, unicode.Hiragana, unicode.Katakana)
}

// japaneseRatio is the share of kana and Han runes in s.
func japaneseRatio(s string) float64 {
	total, jp := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			jp++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(jp) / float64(total)
}

// afterColon returns the text following the first colon, if any.
func afterColon(s string) (string, bool) {
	loc := colonRe.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return strings.TrimSpace(s[loc[1]:]), true
}

// isDateLike reports whether a cell starts a new dated entry.
func isDateLike(c models.Cell) bool {
	return c.Type == models.CellDate || dateLikeRe.MatchString(cellText(c))
}

// smallInt parses a cell holding a bare one- or two-digit number.
func smallInt(c models.Cell) (int, bool) {
	if n, ok := c.Int(); ok {
		return n, n >= 0 && n < 100
	}
	if c.Type != models.CellText {
		return 0, false
	}
	v := cellText(c)
	if !smallIntRe.MatchString(v) {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

// serial returns the numeric value of an int or float cell.
func serial(c models.Cell) (float64, bool) {
	if !c.IsNumber() {
		return 0, false
	}
	return c.Number, true
}

// stripMarks removes leading bullet glyphs and whitespace.
func stripMarks(s, marks string) string {
	return strings.TrimLeft(strings.TrimSpace(s), marks+" \t　")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
