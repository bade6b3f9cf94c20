// Package vocab holds the keyword tables, denylists and skill vocabulary the
// field extractors share.
//
// A Vocabulary is built once and treated as read-only; Extend returns a new
// value instead of modifying the receiver.
package vocab

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Labels groups the label keywords used to locate each field.
type Labels struct {
	Name        []string
	Age         []string
	Gender      []string
	Birth       []string
	Nationality []string
	Experience  []string
	Arrival     []string
	Japanese    []string
	Education   []string
	Project     []string
	// Personal are labels that mark the personal-information block.
	Personal []string
}

// Vocabulary is the complete extraction configuration data.
type Vocabulary struct {
	Labels Labels

	// Nationalities is the closed list of accepted nationality values.
	Nationalities []string

	// NameDenylist rejects a name candidate on exact match (spaces removed).
	// Words of two or more characters also reject by substring; single
	// characters and ASCII words only reject a whole token.
	NameDenylist []string
	// RelationshipWords mark family-member rows and values.
	RelationshipWords []string

	// Skills is the curated technology vocabulary in canonical spelling.
	Skills []string
	// NoSplitSkills are multi-word names kept intact when tokenizing.
	NoSplitSkills []string
	// SkillSynonyms maps lower-case variants to canonical names.
	SkillSynonyms map[string]string
	// SkillExcludes reject tokens that look like skills but are not.
	SkillExcludes []*regexp.Regexp
	// NonSkillWords reject permissively accepted tokens containing them.
	NonSkillWords []string
	// TechHeaders mark a technology column header.
	TechHeaders []string
	// ColumnEnd marks the end of a technology column section.
	ColumnEnd []string

	// Phases are development-phase keywords in search order.
	Phases []string
	// PhaseCanonical maps phase variants to canonical names.
	PhaseCanonical map[string]string
	// PhaseOrder is the canonical lifecycle order.
	PhaseOrder []string
	// WorkMarks are glyphs that tick a phase as performed.
	WorkMarks []string
	// SkillMarks are bullet glyphs stripped from skill cells.
	SkillMarks string

	// Roles are role codes, most senior first.
	Roles []string
	// RoleRank orders role codes by seniority.
	RoleRank map[string]float64
	// RoleNames maps spelled-out role names to codes.
	RoleNames map[string]string
	// RoleHeaders mark a role column header.
	RoleHeaders []string
	// ProjectWords support a role found outside any role column.
	ProjectWords []string
}

// Overrides extends the default vocabulary from configuration.
type Overrides struct {
	NameDenylist       []string
	// NameDenylistRemove drops built-in denylist words, e.g. a kanji that
	// appears in the names of the people being processed.
	NameDenylistRemove []string
	Nationalities      []string
	Skills             []string
	SkillSynonyms      map[string]string
}

// Extend returns a copy of v with the overrides applied. Words are width
// folded and trimmed; a word already present, ignoring case, is not added
// twice.
func (v *Vocabulary) Extend(o Overrides) *Vocabulary {
	out := *v
	out.NameDenylist = appendNew(nil, v.NameDenylist)
	out.NameDenylist = appendNew(out.NameDenylist, o.NameDenylist)
	if len(o.NameDenylistRemove) > 0 {
		out.NameDenylist = slices.DeleteFunc(out.NameDenylist, func(w string) bool {
			return slices.ContainsFunc(o.NameDenylistRemove, func(r string) bool {
				return sameWord(w, r)
			})
		})
	}
	out.Nationalities = appendNew(appendNew(nil, v.Nationalities), o.Nationalities)
	out.Skills = appendNew(appendNew(nil, v.Skills), o.Skills)
	out.SkillSynonyms = make(map[string]string, len(v.SkillSynonyms)+len(o.SkillSynonyms))
	for k, val := range v.SkillSynonyms {
		out.SkillSynonyms[k] = val
	}
	for k, val := range o.SkillSynonyms {
		k, val = fold(k), fold(val)
		if k != "" && val != "" {
			out.SkillSynonyms[strings.ToLower(k)] = val
		}
	}
	return &out
}

// CanonicalSkill returns the vocabulary spelling of s, matching
// case-insensitively.
func (v *Vocabulary) CanonicalSkill(s string) (string, bool) {
	for _, sk := range v.Skills {
		if strings.EqualFold(sk, s) {
			return sk, true
		}
	}
	return "", false
}

// IsNationality reports whether s is an accepted nationality value.
func (v *Vocabulary) IsNationality(s string) bool {
	return slices.Contains(v.Nationalities, s)
}

func appendNew(dst, extra []string) []string {
	for _, s := range extra {
		s = fold(s)
		if s == "" {
			continue
		}
		if !slices.ContainsFunc(dst, func(d string) bool { return sameWord(d, s) }) {
			dst = append(dst, s)
		}
	}
	return dst
}

// fold trims s and maps full-width Latin letters and digits to ASCII and
// half-width kana to full width.
func fold(s string) string {
	return width.Fold.String(norm.NFC.String(strings.TrimSpace(s)))
}

func sameWord(a, b string) bool {
	return strings.EqualFold(fold(a), fold(b))
}
