// Package config loads the skills-extractor configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/fields"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/vocab"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config is the complete configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Extract ExtractConfig `koanf:"extract"`
	Vocab   VocabConfig   `koanf:"vocab"`
	Batch   BatchConfig   `koanf:"batch"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// ExtractConfig controls field extraction.
type ExtractConfig struct {
	// ReferenceDate (YYYY-MM-DD) fixes "today"; empty means the current date.
	ReferenceDate string `koanf:"reference_date" validate:"omitempty,datetime=2006-01-02"`
	Mode          string `koanf:"mode" validate:"oneof=fast standard"`
	Parallel      bool   `koanf:"parallel"`
	// NameScoring forces the tokenizer-based name scorer on or off; unset
	// follows Mode.
	NameScoring *bool `koanf:"name_scoring"`

	NameRows       int `koanf:"name_rows" validate:"min=1,max=100"`
	ScanRows       int `koanf:"scan_rows" validate:"min=1,max=500"`
	GenderRadius   int `koanf:"gender_radius" validate:"min=1,max=20"`
	ContextRadius  int `koanf:"context_radius" validate:"min=1,max=20"`
	BlankRun       int `koanf:"blank_run" validate:"min=1,max=50"`
	TechColumnSpan int `koanf:"tech_column_span" validate:"min=1,max=100"`
}

// VocabConfig extends the built-in vocabulary.
type VocabConfig struct {
	NameDenylist       []string          `koanf:"name_denylist"`
	// NameDenylistRemove drops built-in denylist words.
	NameDenylistRemove []string          `koanf:"name_denylist_remove"`
	Nationalities      []string          `koanf:"nationalities"`
	Skills             []string          `koanf:"skills"`
	SkillSynonyms      map[string]string `koanf:"skill_synonyms"`
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Workers     int    `koanf:"workers" validate:"min=1,max=64"`
	Pattern     string `koanf:"pattern"`
	MetricsFile string `koanf:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	t := fields.DefaultTuning()
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Extract: ExtractConfig{
			Mode:           string(skillsheet.ModeStandard),
			NameRows:       t.NameRows,
			ScanRows:       t.ScanRows,
			GenderRadius:   t.GenderRadius,
			ContextRadius:  t.ContextRadius,
			BlankRun:       t.BlankRun,
			TechColumnSpan: t.TechColumnSpan,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Fields, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and enums.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fes {
		ve.Fields = append(ve.Fields, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return ve
}

// Tuning returns the search extents.
func (c *Config) Tuning() fields.Tuning {
	e := c.Extract
	return fields.Tuning{
		NameRows:       e.NameRows,
		ScanRows:       e.ScanRows,
		GenderRadius:   e.GenderRadius,
		ContextRadius:  e.ContextRadius,
		BlankRun:       e.BlankRun,
		TechColumnSpan: e.TechColumnSpan,
	}
}

// Vocabulary returns the default vocabulary extended with the configured
// words.
func (c *Config) Vocabulary() *vocab.Vocabulary {
	return vocab.Default().Extend(vocab.Overrides{
		NameDenylist:       c.Vocab.NameDenylist,
		NameDenylistRemove: c.Vocab.NameDenylistRemove,
		Nationalities:      c.Vocab.Nationalities,
		Skills:             c.Vocab.Skills,
		SkillSynonyms:      c.Vocab.SkillSynonyms,
	})
}

// Options converts the configuration to extraction options.
func (c *Config) Options(logger *zap.Logger) (skillsheet.Options, error) {
	opts := skillsheet.DefaultOptions()
	opts.Mode = skillsheet.Mode(c.Extract.Mode)
	opts.Parallel = c.Extract.Parallel
	opts.NameScoring = c.Extract.NameScoring
	opts.Logger = logger
	opts.Tuning = c.Tuning()
	opts.Vocabulary = c.Vocabulary()
	if c.Extract.ReferenceDate != "" {
		t, err := time.Parse("2006-01-02", c.Extract.ReferenceDate)
		if err != nil {
			return opts, fmt.Errorf("extract.reference_date: %w", err)
		}
		opts.ReferenceDate = t
	}
	return opts, nil
}
