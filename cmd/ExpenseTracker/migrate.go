package main

import (
	database "github.com/sebuszqo/ExpenseTracker/internal/db"
	"github.com/spf13/cobra"
	"log/slog"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			slog.Info("Applying migrations")
			if err := database.RunMigrations(cfg.Database.URL); err != nil {
				return err
			}
			slog.Info("Database schema is up to date")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert all migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			slog.Warn("Reverting all migrations")
			if err := database.MigrateDown(cfg.Database.URL); err != nil {
				return err
			}
			slog.Info("Migrations reverted")
			return nil
		},
	})

	return cmd
}
