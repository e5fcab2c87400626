package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/semegn19/life-saving-connector/internal/config"
	"github.com/semegn19/life-saving-connector/internal/database/mongodb"
	"github.com/semegn19/life-saving-connector/internal/seeder"
)

var (
	seedDrop  bool
	seedCount int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with deterministic test data",
	Long: `Generate and insert seed data for every modeled entity.

Accounts are created first with well-known logins so the platform is usable
immediately; all other entities follow in dependency order, referencing
identifiers created by earlier steps. Re-running is safe: records rejected
by unique indexes are skipped, not duplicated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()

		adapter := mongodb.New()
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if seedDrop {
			color.Yellow("🗑  Dropping database %q...", adapter.DatabaseName())
			if err := adapter.DropDatabase(ctx); err != nil {
				return err
			}
		}

		count := seedCount
		if count <= 0 {
			count = cfg.Seed.Count
		}

		s := seeder.New(cfg, adapter)
		return s.Seed(ctx, count)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedDrop, "drop", false, "Drop the database before seeding")
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "Records per entity (defaults to the configured count)")
}
