package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"commandcenter/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		mg := migration.NewMigration(cfg, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			color.Red("✗ migration failed: %v", err)
			return err
		}
		color.Green("✓ database is up to date")
		return nil
	},
}
