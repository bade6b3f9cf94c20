package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/chiliososada/skills-extractor/internal/metrics"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fakeExtract(path string) (*models.ResumeRecord, error) {
	if filepath.Ext(path) == ".xls" {
		return nil, fmt.Errorf("%s: %w", path, skillsheet.ErrCodecUnavailable)
	}
	return &models.ResumeRecord{
		Name:   models.StringPtr(filepath.Base(path)),
		Skills: []string{"Java"},
	}, nil
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rec := metrics.NewRecorder()
	paths := []string{"a.xlsx", "b.xls", "c.csv", "d.xlsx"}

	report, err := Run(context.Background(), paths, Config{Workers: 2, Logger: zap.New(core), Metrics: rec}, fakeExtract)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	require.Len(t, report.Items, 4)
	for i, it := range report.Items {
		assert.Equal(t, paths[i], it.Path)
	}
	assert.Equal(t, "a.xlsx", models.Deref(report.Items[0].Record.Name))
	assert.Nil(t, report.Items[1].Record)
	assert.Contains(t, report.Items[1].Error, "codec")
	assert.Equal(t, "unsupported", report.Items[1].Result)

	assert.Equal(t, Summary{
		Files:     4,
		Succeeded: 3,
		Failed:    1,
		Fields:    map[string]int{"name": 3, "skills": 3},
	}, report.Summary)

	n, err := testutil.GatherAndCount(rec.Gatherer(), "skills_extractor_extract_documents_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, logs.FilterMessage("extraction failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}

func TestRunBoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	fn := func(path string) (*models.ResumeRecord, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return &models.ResumeRecord{}, nil
	}
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("%02d.xlsx", i)
	}
	report, err := Run(context.Background(), paths, Config{Workers: 3}, fn)
	require.NoError(t, err)
	assert.Equal(t, 20, report.Summary.Succeeded)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []string{"a.xlsx"}, Config{Workers: 1}, fakeExtract)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"b.xlsx", "a.csv", "~$a.xlsx", "notes.txt", "sub/c.XLSM", "sub/d.xls",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	got, err := Collect(root, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.csv"),
		filepath.Join(root, "b.xlsx"),
		filepath.Join(root, "sub", "c.XLSM"),
		filepath.Join(root, "sub", "d.xls"),
	}, got)

	got, err = Collect(root, "*.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "b.xlsx")}, got)

	_, err = Collect(root, "[")
	assert.Error(t, err)
}
