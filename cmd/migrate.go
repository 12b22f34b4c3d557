package main

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/tennis-cup/config"
	"github.com/Dosada05/tennis-cup/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the postgres or sqlite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		switch cfg.StoreBackend {
		case config.StorePostgres:
			conn, err := db.Connect(cfg.DatabaseURL, connectTimeout)
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := db.Migrate(conn, db.DialectPostgres); err != nil {
				return err
			}
		case config.StoreSQLite:
			conn, err := db.OpenSQLite(cfg.SQLitePath, cfg.TursoURL, cfg.TursoToken, connectTimeout)
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := db.Migrate(conn, db.DialectSQLite); err != nil {
				return err
			}
		default:
			return fmt.Errorf("store %q has no schema to migrate", cfg.StoreBackend)
		}

		logger.Info("migrations applied", slog.String("store", string(cfg.StoreBackend)))
		return nil
	},
}
