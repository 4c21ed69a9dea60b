package main

import (
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/paperqa/internal/session"
)

func summarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "summarize [pdf[,pdf...]]...",
		Short:        "Summarize PDFs without starting the question loop",
		SilenceUsage: true,
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
			return session.WriteSummaries(ctx, a.out, assistant, batch, a.cfg.Summary.Focus)
		},
	}

	cmd.Flags().String("focus", "", "what the summaries should focus on")
	return cmd
}
