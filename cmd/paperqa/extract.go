package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/paperqa/internal/export"
)

func extractCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "extract <pdf>...",
		Short: "Print the sections and tables extracted from PDFs",
		Long: "extract runs only the conditioning pipeline and prints the result.\n" +
			"No AI backend is contacted.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("invalid --format %q (want one of %s)", format, strings.Join(export.Formats, ", "))
			}

			a, err := newApp(cmd, false)
			if err != nil {
				return err
			}
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			batch, err := a.process(cmd.Context(), paths)
			if err != nil {
				return err
			}
			return export.Write(a.out, format, batch)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatYAML, "output format: yaml|json|csv|context")
	return cmd
}

func validFormat(format string) bool {
	for _, f := range export.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
