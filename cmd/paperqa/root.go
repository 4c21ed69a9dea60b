package main

import (
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/paperqa/internal/session"
)

func newRootCmd() *cobra.Command {
	var noSummary bool

	cmd := &cobra.Command{
		Use:   "paperqa [pdf[,pdf...]]...",
		Short: "Ask questions about academic PDFs",
		Long: "paperqa extracts text and tables from academic PDFs, prints a summary\n" +
			"of each one and then answers questions against all of them.\n\n" +
			"Without arguments the PDF paths are read from stdin as a comma\n" +
			"separated list.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			batch, err := a.process(ctx, paths)
			if err != nil {
				return err
			}

			assistant, err := a.assistant(ctx)
			if err != nil {
				return err
			}

			if a.cfg.Summary.Enabled && !noSummary {
				if err := session.WriteSummaries(ctx, a.out, assistant, batch, a.cfg.Summary.Focus); err != nil {
					return err
				}
			}

			return session.NewLoop(a.in, a.out, assistant, a.logger).Run(ctx, batch)
		},
	}

	addBackendFlags(cmd)
	cmd.Flags().String("focus", "", "focus for the automatic summaries")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "skip the automatic summaries")

	cmd.AddCommand(extractCmd(), summarizeCmd())
	return cmd
}
