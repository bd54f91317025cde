package main

import (
	"os"

	"github.com/SergSukh/api-yamdb-33-all/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "yamdb",
		Short:        "YaMDb reviews and ratings API",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := config.Load(configPath); err != nil {
				return err
			}
			config.SetupLogger(config.Conf.Log, os.Stderr)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML configuration file")

	cmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCreateSuperuserCmd(),
	)
	return cmd
}
