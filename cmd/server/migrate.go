package main

import (
	"fmt"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/database"
	"github.com/SergSukh/api-yamdb-33-all/internal/model"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			db, err := database.Open(config.Conf.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer closeDB(db)

			if err := model.InitTable(db); err != nil {
				return err
			}
			slog.Info("migrations applied", "driver", config.Conf.Database.Driver)
			return nil
		},
	}
}
