// Package jpname scores strings by how much they read as Japanese personal
// names, using the kagome morphological analyzer and the IPA dictionary.
package jpname

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// personName is the IPA part-of-speech subcategory for given and family
// names.
const personName = "人名"

// Scorer implements fields.NameScorer. It is safe for concurrent use.
type Scorer struct {
	tok *tokenizer.Tokenizer
}

var (
	shared     *Scorer
	sharedErr  error
	sharedOnce sync.Once
)

// New builds a Scorer. Loading the dictionary takes a noticeable moment, so
// callers that score many documents should reuse one Scorer or call Shared.
func New() (*Scorer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Scorer{tok: t}, nil
}

// Shared returns a process-wide Scorer built on first use.
func Shared() (*Scorer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = New()
	})
	return shared, sharedErr
}

// PersonNameScore returns the share of runes, ignoring spaces, that belong
// to tokens tagged as personal names.
func (s *Scorer) PersonNameScore(text string) float64 {
	text = strings.Join(strings.Fields(text), "")
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return 0
	}
	named := 0
	for _, t := range s.tok.Tokenize(text) {
		if slices.Contains(t.POS(), personName) {
			named += utf8.RuneCountInString(t.Surface)
		}
	}
	return float64(named) / float64(total)
}
