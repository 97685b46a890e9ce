package cmd

import (
	"database/sql"

	"github.com/spf13/cobra"

	"eventhub/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
	Long: `Apply, roll back or inspect the embedded SQL migrations against DATABASE_URL.

Examples:
  server migrate up
  server migrate down
  server migrate status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, postgres.Migrate)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, postgres.MigrateDown)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, postgres.MigrationStatus)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func withDB(cmd *cobra.Command, fn func(*sql.DB) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := postgres.Open(cmd.Context(), cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := fn(db); err != nil {
		return err
	}
	logger.Info("migrate finished", "command", cmd.Name())
	return nil
}
