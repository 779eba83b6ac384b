package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hiretrack-backend/internal/app"
	"github.com/heartmarshall/hiretrack-backend/internal/config"
)

var envFile string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hirectl",
		Short:         "Operate the hiring pipeline backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newSearchCommand(),
		newSummaryCommand(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withDeps loads config, wires the services and runs fn with a bounded context.
func withDeps(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, d *app.Deps) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	d, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer d.Close()

	return fn(ctx, d)
}
