package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5, cfg.Extract.GenderRadius)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
extract:
  mode: fast
  parallel: true
  name_scoring: false
  gender_radius: 3
vocab:
  name_denylist_remove: [技術]
  skills: [Elixir]
  skill_synonyms:
    ex: Elixir
batch:
  workers: 8
`)
	t.Setenv("SKILLS_EXTRACTOR_EXTRACT_REFERENCE_DATE", "2024-11-01")
	t.Setenv("SKILLS_EXTRACTOR_BATCH_METRICS_FILE", "/tmp/skills.prom")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "fast", cfg.Extract.Mode)
	assert.True(t, cfg.Extract.Parallel)
	require.NotNil(t, cfg.Extract.NameScoring)
	assert.False(t, *cfg.Extract.NameScoring)
	assert.Equal(t, 3, cfg.Extract.GenderRadius)
	assert.Equal(t, 30, cfg.Extract.ScanRows)
	assert.Equal(t, "2024-11-01", cfg.Extract.ReferenceDate)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "/tmp/skills.prom", cfg.Batch.MetricsFile)

	v := cfg.Vocabulary()
	sk, ok := v.CanonicalSkill("elixir")
	assert.True(t, ok)
	assert.Equal(t, "Elixir", sk)
	assert.Equal(t, "Elixir", v.SkillSynonyms["ex"])
	assert.NotContains(t, v.NameDenylist, "技術")
	assert.Contains(t, v.NameDenylist, "氏名")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad mode", "extract:\n  mode: turbo\n"},
		{"bad date", "extract:\n  reference_date: 2024/11/01\n"},
		{"radius out of range", "extract:\n  gender_radius: 0\n"},
		{"too many workers", "batch:\n  workers: 1000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.NotEmpty(t, ve.Fields)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Extract.Mode = "fast"
	cfg.Extract.ReferenceDate = "2024-11-01"
	cfg.Extract.BlankRun = 7

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, skillsheet.ModeFast, opts.Mode)
	assert.False(t, opts.ShouldScoreNames())
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), opts.ReferenceDate)
	assert.Equal(t, 7, opts.Tuning.BlankRun)
	require.NotNil(t, opts.Vocabulary)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "extract.reference_date", envKey("SKILLS_EXTRACTOR_EXTRACT_REFERENCE_DATE"))
	assert.Equal(t, "log.level", envKey("SKILLS_EXTRACTOR_LOG_LEVEL"))
	assert.Equal(t, "debug", envKey("SKILLS_EXTRACTOR_DEBUG"))
}
