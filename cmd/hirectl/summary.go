package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hiretrack-backend/internal/app"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), time.Minute, func(ctx context.Context, d *app.Deps) error {
				s, err := d.Postings.Summary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "active postings:  %d\ntotal candidates: %d\n", s.ActiveCount, s.TotalCandidates)
				return nil
			})
		},
	}
}
