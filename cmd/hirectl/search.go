package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hiretrack-backend/internal/app"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/service/candidate"
)

func newSearchCommand() *cobra.Command {
	var (
		postingID int64
		sortBy    string
		order     string
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search candidates",
		Long: `Every whitespace-separated query term must appear, case-insensitively,
somewhere in the candidate's profile, posting title or notes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := candidate.SearchInput{
				Query:     strings.Join(args, " "),
				SortBy:    domain.SortField(sortBy),
				SortOrder: domain.SortOrder(order),
			}
			if cmd.Flags().Changed("posting") {
				input.PostingID = &postingID
			}

			return withDeps(cmd.Context(), time.Minute, func(ctx context.Context, d *app.Deps) error {
				cs, err := d.Candidates.Search(ctx, input)
				if err != nil {
					return err
				}
				return printCandidates(cmd.OutOrStdout(), cs)
			})
		},
	}

	cmd.Flags().Int64Var(&postingID, "posting", 0, "restrict to one job posting")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by name, role, score or stage")
	cmd.Flags().StringVar(&order, "order", "asc", "sort order: asc or desc")

	return cmd
}

func printCandidates(out io.Writer, cs []domain.Candidate) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tSCORE\tSTAGE\tPOSTING")
	for _, c := range cs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", c.ID, c.Name, c.Role, c.Score, c.Stage.Label(), c.JobTitle)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d candidate(s)\n", len(cs))
	return err
}
