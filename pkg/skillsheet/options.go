// Package skillsheet extracts résumé fields from Japanese skills-sheet
// spreadsheets.
package skillsheet

import (
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/fields"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/jpname"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/vocab"
	"go.uber.org/zap"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeFast runs the heuristics only.
	ModeFast Mode = "fast"
	// ModeStandard also scores name candidates with the morphological analyzer.
	ModeStandard Mode = "standard"
)

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (fast, standard).
	Mode Mode
	// NameScoring specifies whether name candidates are scored with the
	// morphological analyzer. If nil, defaults to true for standard mode.
	NameScoring *bool
	// NameScorer replaces the built-in analyzer when set.
	NameScorer fields.NameScorer
	// Parallel runs independent extractors concurrently.
	Parallel bool
	// ReferenceDate is "today" for age and years-ago arithmetic. The zero
	// value means the current date.
	ReferenceDate time.Time
	// Logger receives debug traces. Nil disables logging.
	Logger *zap.Logger
	// Vocabulary overrides the built-in keyword tables.
	Vocabulary *vocab.Vocabulary
	// Tuning overrides the search extents. The zero value means defaults.
	Tuning fields.Tuning
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeStandard,
		Tuning: fields.DefaultTuning(),
	}
}

// ShouldScoreNames returns whether to use the morphological name scorer.
func (o Options) ShouldScoreNames() bool {
	if o.NameScoring != nil {
		return *o.NameScoring
	}
	return o.Mode == ModeStandard
}

// env builds the extractor environment, loading the shared name scorer when
// needed.
func (o Options) env() (fields.Env, error) {
	now := o.ReferenceDate
	if now.IsZero() {
		now = time.Now()
	}
	env := fields.NewEnv(now)
	if o.Vocabulary != nil {
		env.Vocab = o.Vocabulary
	}
	if o.Tuning != (fields.Tuning{}) {
		env.Tuning = o.Tuning
	}
	env.Logger = o.Logger
	env.Names = o.NameScorer
	if env.Names == nil && o.ShouldScoreNames() {
		s, err := jpname.Shared()
		if err != nil {
			return env, err
		}
		env.Names = s
	}
	return env, nil
}
