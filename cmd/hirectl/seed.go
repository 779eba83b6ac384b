package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hiretrack-backend/internal/app"
	"github.com/heartmarshall/hiretrack-backend/internal/app/seeder"
)

func newSeedCommand() *cobra.Command {
	var (
		file       string
		dryRun     bool
		seederConf string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample postings, candidates and notes",
		Long:  "Seeds the database from a YAML fixtures file, or from the built-in sample data when --file is not given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := seeder.LoadConfig(seederConf)
			if err != nil {
				return err
			}
			// Flags override config.
			if file != "" {
				cfg.FixturesPath = file
			}
			if dryRun {
				cfg.DryRun = true
			}

			return withDeps(cmd.Context(), 5*time.Minute, func(ctx context.Context, d *app.Deps) error {
				s := seeder.New(d.Log, d.Postings, d.Candidates, d.Notes, *cfg)
				fx, err := s.Fixtures()
				if err != nil {
					return err
				}

				res, err := s.Run(ctx, fx)
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d postings, %d candidates, %d notes in %s\n",
					res.Postings, res.Candidates, res.Notes, res.Duration.Round(time.Millisecond))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures file (default: built-in sample data)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse fixtures without writing to the database")
	cmd.Flags().StringVar(&seederConf, "seeder-config", "", "path to seeder YAML config file")

	return cmd
}
