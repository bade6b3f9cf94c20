package main

import (
	"io"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/parser"
	"github.com/spf13/cobra"
)

func newInspectCmd(f *flags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show sheet layout and label cells",
		Long: `inspect prints each sheet's size, its top-left 10x10 block and the
cells that look like labels for each field. Use it to see why a field
was or was not found.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			doc, err := parser.Load(args[0])
			if err != nil {
				return skillsheet.NewLoadError(args[0], "load", err)
			}
			return printJSON(stdout, skillsheet.Inspect(doc, cfg.Vocabulary()), !f.compact)
		},
	}
}
