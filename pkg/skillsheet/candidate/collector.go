// Package candidate aggregates weighted value hypotheses into one answer.
package candidate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Candidate is one hypothesis for a field value.
type Candidate struct {
	Value      string
	Confidence float64
}

// Normalize trims s, folds full-width digits and Latin letters to ASCII and
// half-width kana to full-width, and collapses runs of whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(width.Fold.String(s))), " ")
}

// Fold applies the width folding of Normalize but keeps whitespace and line
// breaks intact.
func Fold(s string) string {
	return norm.NFC.String(width.Fold.String(s))
}

// FoldCase is Normalize followed by lower-casing.
func FoldCase(s string) string {
	return strings.ToLower(Normalize(s))
}

type entry struct {
	value string
	score float64
}

// Collector sums confidence per normalized value. The zero value is not
// usable; call New.
type Collector struct {
	key     func(string) string
	index   map[string]int
	entries []entry
}

// New returns a collector keyed by Normalize.
func New() *Collector {
	return NewWithKey(Normalize)
}

// NewCaseInsensitive returns a collector keyed by FoldCase. The reported
// value is the first-seen spelling.
func NewCaseInsensitive() *Collector {
	return NewWithKey(FoldCase)
}

// NewWithKey returns a collector grouping values by key(value).
func NewWithKey(key func(string) string) *Collector {
	return &Collector{key: key, index: make(map[string]int)}
}

// Add records a hypothesis. Blank values and non-positive confidences are
// ignored.
func (c *Collector) Add(value string, confidence float64) {
	value = Normalize(value)
	if value == "" || confidence <= 0 {
		return
	}
	k := c.key(value)
	if i, ok := c.index[k]; ok {
		c.entries[i].score += confidence
		return
	}
	c.index[k] = len(c.entries)
	c.entries = append(c.entries, entry{value: value, score: confidence})
}

// AddAll records every candidate in order.
func (c *Collector) AddAll(cands []Candidate) {
	for _, cand := range cands {
		c.Add(cand.Value, cand.Confidence)
	}
}

// Len returns the number of distinct values.
func (c *Collector) Len() int {
	return len(c.entries)
}

// Score returns the summed confidence of value.
func (c *Collector) Score(value string) float64 {
	if i, ok := c.index[c.key(Normalize(value))]; ok {
		return c.entries[i].score
	}
	return 0
}

// Values returns the distinct values in first-seen order.
func (c *Collector) Values() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.value
	}
	return out
}

// Best returns the highest-scoring value. Ties go to the value added first.
func (c *Collector) Best() (string, bool) {
	best := -1
	for i, e := range c.entries {
		if best < 0 || e.score > c.entries[best].score {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return c.entries[best].value, true
}

// Best aggregates cands with a fresh Normalize-keyed collector.
func Best(cands []Candidate) (string, bool) {
	c := New()
	c.AddAll(cands)
	return c.Best()
}
