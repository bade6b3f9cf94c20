// Package batch extracts records from many skill-sheet files concurrently.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/chiliososada/skills-extractor/internal/metrics"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/parser"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExtractFunc extracts one file.
type ExtractFunc func(path string) (*models.ResumeRecord, error)

// Config controls a batch run.
type Config struct {
	// Workers bounds concurrent extractions; values below 1 mean 1.
	Workers int
	Logger  *zap.Logger
	// Metrics is optional.
	Metrics *metrics.Recorder
}

// Item is the outcome for one file. Exactly one of Record and Error is set.
type Item struct {
	Path      string               `json:"path"`
	Record    *models.ResumeRecord `json:"record,omitempty"`
	Error     string               `json:"error,omitempty"`
	Result    string               `json:"result"`
	ElapsedMS int64                `json:"elapsed_ms"`
}

// Summary aggregates a run.
type Summary struct {
	Files     int            `json:"files"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Fields    map[string]int `json:"fields_found"`
}

// Report is the result of Run. Items follow the input order.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Items     []Item    `json:"items"`
	Summary   Summary   `json:"summary"`
}

// Run extracts every path with up to cfg.Workers concurrent calls to fn.
// A failing file is reported in its Item and does not stop the run; only
// context cancellation does.
func Run(ctx context.Context, paths []string, cfg Config, fn ExtractFunc) (*Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(cfg.Workers, 1)

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Items:     make([]Item, len(paths)),
	}
	logger = logger.With(zap.String("run_id", report.RunID))
	logger.Info("batch started", zap.Int("files", len(paths)), zap.Int("workers", workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Items[i] = extractOne(path, fn, cfg.Metrics, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", report.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", report.RunID, err)
	}

	report.Summary = summarize(report.Items)
	logger.Info("batch finished",
		zap.Int("succeeded", report.Summary.Succeeded),
		zap.Int("failed", report.Summary.Failed),
		zap.Duration("elapsed", time.Since(report.StartedAt)))
	return report, nil
}

func extractOne(path string, fn ExtractFunc, rec *metrics.Recorder, logger *zap.Logger) Item {
	start := time.Now()
	record, err := fn(path)
	elapsed := time.Since(start)

	item := Item{Path: path, Result: metrics.Result(err), ElapsedMS: elapsed.Milliseconds()}
	if err != nil {
		item.Error = err.Error()
		logger.Warn("extraction failed", zap.String("path", path), zap.Error(err))
		if rec != nil {
			rec.ObserveFailure(err, elapsed)
		}
		return item
	}
	item.Record = record
	logger.Debug("extracted", zap.String("path", path), zap.Int("fields", record.FoundCount()))
	if rec != nil {
		rec.ObserveRecord(record, elapsed)
	}
	return item
}

func summarize(items []Item) Summary {
	s := Summary{Files: len(items), Fields: map[string]int{}}
	for _, it := range items {
		if it.Record == nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		for _, f := range it.Record.Fields() {
			s.Fields[f]++
		}
	}
	return s
}

// Collect returns the skill-sheet files under root in lexical order. When
// pattern is non-empty only base names matching it are kept. Excel lock
// files ("~$name.xlsx") are skipped.
func Collect(root, pattern string) ([]string, error) {
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, "~$") {
			return nil
		}
		if !slices.Contains(parser.Extensions, strings.ToLower(filepath.Ext(name))) {
			return nil
		}
		if pattern != "" {
			if ok, _ := filepath.Match(pattern, name); !ok {
				return nil
			}
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}
