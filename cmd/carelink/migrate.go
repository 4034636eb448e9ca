package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carelink-go/internal/config"
	"carelink-go/internal/db"
	"carelink-go/pkg/logger"
)

func newMigrateCmd(log logger.Logger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg, err := config.LoadDatabase(log)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if dir != "" {
				dbCfg.MigrationsDir = dir
			}
			return runMigrations(dbCfg, log)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to DB_MIGRATIONS_DIR)")
	return cmd
}

func runMigrations(cfg config.DBConfig, log logger.Logger) error {
	dbConn, err := db.NewPostgres(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := dbConn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	applied, err := db.Migrate(dbConn, cfg.MigrationsDir, log)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("db: migrations applied", "count", applied)
	return nil
}
