// Package fields implements one heuristic extractor per résumé field.
//
// Every extractor generates (value, confidence) candidates from several
// independent strategies and lets a candidate.Collector pick the answer.
// Extractors never fail: a field with no usable signal is reported as not
// found.
package fields

import (
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/vocab"
	"go.uber.org/zap"
)

// Tuning holds the search extents shared by the extractors.
type Tuning struct {
	// NameRows is how many top rows are searched for name labels.
	NameRows int
	// ScanRows bounds searches for personal fields (gender, age, arrival).
	ScanRows int
	// GenderRadius is the label gate radius for gender tokens.
	GenderRadius int
	// ContextRadius is the gate radius for date and serial candidates.
	ContextRadius int
	// BlankRun stops a technology column after this many blank cells.
	BlankRun int
	// TechColumnSpan is how far left of a phase header technology columns are sought.
	TechColumnSpan int
}

// DefaultTuning returns the standard search extents.
func DefaultTuning() Tuning {
	return Tuning{
		NameRows:       10,
		ScanRows:       30,
		GenderRadius:   5,
		ContextRadius:  5,
		BlankRun:       5,
		TechColumnSpan: 20,
	}
}

// NameScorer rates how much a string looks like a personal name, from 0 to 1.
type NameScorer interface {
	PersonNameScore(s string) float64
}

// Env carries the read-only collaborators every extractor needs.
type Env struct {
	// Vocab is the keyword and vocabulary tables.
	Vocab *vocab.Vocabulary
	// Now is the reference date for ages and years-ago arithmetic.
	Now time.Time
	// Tuning holds search extents.
	Tuning Tuning
	// Logger receives per-candidate debug traces. Nil disables logging.
	Logger *zap.Logger
	// Names optionally boosts name candidates. Nil disables it.
	Names NameScorer
}

// NewEnv returns an Env with the default vocabulary and tuning.
func NewEnv(now time.Time) Env {
	return Env{
		Vocab:  vocab.Default(),
		Now:    now,
		Tuning: DefaultTuning(),
	}
}

func (e Env) log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// trace logs one accepted candidate at debug level.
func (e Env) trace(field, strategy string, s *models.Sheet, c models.Cell, value string, conf float64) {
	if ce := e.log().Check(zap.DebugLevel, "candidate"); ce != nil {
		ce.Write(
			zap.String("field", field),
			zap.String("strategy", strategy),
			zap.String("sheet", s.Name),
			zap.Int("row", c.Row),
			zap.Int("col", c.Col),
			zap.String("value", value),
			zap.Float64("confidence", conf),
		)
	}
}

// rows returns min(n, s.RowCount()).
func rows(s *models.Sheet, n int) int {
	return min(n, s.RowCount())
}
