package main

import (
	"fmt"
	"io"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/output"
	"github.com/spf13/cobra"
)

func newSchemaCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "schema",
		Short:         "Print the JSON schema of an extracted record",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(stdout, string(output.Schema()))
			return err
		},
	}
}
