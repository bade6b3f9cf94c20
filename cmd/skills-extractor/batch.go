package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/chiliososada/skills-extractor/internal/batch"
	"github.com/chiliososada/skills-extractor/internal/metrics"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(f *flags, stdout io.Writer) *cobra.Command {
	var (
		workers     int
		pattern     string
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "batch [dir|file]...",
		Short: "Extract many skill sheets concurrently",
		Long: `batch extracts every file given, and every skill sheet found under
each directory given, and prints one JSON report with a run id, the
per-file record or error, and summary counts. Failed files do not
change the exit status.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Batch.Pattern = pattern
			}
			if cmd.Flags().Changed("metrics-file") {
				cfg.Batch.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			paths, err := collectPaths(args, cfg.Batch.Pattern)
			if err != nil {
				return err
			}
			opts, err := cfg.Options(logger)
			if err != nil {
				return err
			}
			extract := func(path string) (*models.ResumeRecord, error) {
				return skillsheet.Extract(path, opts)
			}

			rec := metrics.NewRecorder()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			report, err := batch.Run(ctx, paths, batch.Config{
				Workers: cfg.Batch.Workers,
				Logger:  logger,
				Metrics: rec,
			}, extract)
			if err != nil {
				return err
			}
			if cfg.Batch.MetricsFile != "" {
				if err := rec.WriteTextfile(cfg.Batch.MetricsFile); err != nil {
					logger.Error("failed to write metrics", zap.String("path", cfg.Batch.MetricsFile), zap.Error(err))
				}
			}
			return printJSON(stdout, report, !f.compact)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent extractions")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob on file names inside directories, e.g. '*.xlsx'")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	return cmd
}

// collectPaths expands directories; plain files are kept as given.
func collectPaths(args []string, pattern string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := batch.Collect(arg, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
