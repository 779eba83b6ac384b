package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hiretrack-backend/migrations"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list database migrations",
		Long:      "Runs the embedded goose migrations against database.dsn. Defaults to up.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			return runMigrate(cmd.Context(), cmd.OutOrStdout(), action)
		},
	}
}

func runMigrate(ctx context.Context, out io.Writer, action string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	switch action {
	case "up", "down":
		apply := m.Up
		if action == "down" {
			apply = m.Down
		}
		results, err := apply(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "no migrations to apply")
		}
		for _, r := range results {
			fmt.Fprintf(out, "%s %05d %s\n", action, r.Version, r.Source)
		}
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "%-8s %05d %s\n", state, s.Version, s.Source)
		}
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}
	return nil
}
