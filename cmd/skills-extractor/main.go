// Package main provides the CLI entry point for skills-extractor.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chiliososada/skills-extractor/internal/config"
	"github.com/chiliososada/skills-extractor/internal/logging"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/output"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags shared by every command.
type flags struct {
	configPath    string
	compact       bool
	referenceDate string
	parallel      bool
	logLevel      string
	mode          string
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stdout, string(output.ErrorJSON(err)))
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "skills-extractor [file]",
		Short: "Extract résumé fields from Japanese skills sheets",
		Long: `skills-extractor reads a skills-sheet spreadsheet (.xlsx, .xlsm, .csv)
and prints name, gender, age, birthdate, nationality, arrival year,
experience, Japanese level, skills, work scope and roles as JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0], stdout)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.BoolVar(&f.compact, "compact", false, "Print single-line JSON")
	pf.StringVar(&f.referenceDate, "reference-date", "", "Date used as today, YYYY-MM-DD")
	pf.BoolVar(&f.parallel, "parallel", false, "Run independent field extractors concurrently")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&f.mode, "mode", "", "Extraction mode: fast, standard")

	rootCmd.AddCommand(newBatchCmd(f, stdout), newInspectCmd(f, stdout), newSchemaCmd(stdout))
	return rootCmd
}

// setup loads configuration, applies explicitly set flags on top of it and
// builds the logger.
func setup(cmd *cobra.Command, f *flags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}

	changed := cmd.Flags().Changed
	if changed("reference-date") {
		cfg.Extract.ReferenceDate = f.referenceDate
	}
	if changed("parallel") {
		cfg.Extract.Parallel = f.parallel
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("mode") {
		cfg.Extract.Mode = f.mode
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func run(cmd *cobra.Command, f *flags, path string, stdout io.Writer) error {
	cfg, logger, err := setup(cmd, f)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}

	start := time.Now()
	rec, err := skillsheet.Extract(path, opts)
	if err != nil {
		return err
	}
	if err := output.Validate(rec); err != nil {
		// The record is still printed; a schema mismatch is an extractor bug.
		logger.Warn("record failed schema validation", zap.String("path", path), zap.Error(err))
	}
	logger.Info("extracted", zap.String("path", path),
		zap.Strings("fields", rec.Fields()), zap.Duration("elapsed", time.Since(start)))

	return printJSON(stdout, rec, !f.compact)
}

func printJSON(w io.Writer, v any, pretty bool) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
