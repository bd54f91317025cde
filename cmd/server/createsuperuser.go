package main

import (
	"fmt"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/database"
	"github.com/SergSukh/api-yamdb-33-all/internal/user"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newCreateSuperuserCmd() *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create or promote an administrator and print its confirmation code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Open(config.Conf.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer closeDB(db)

			return createSuperuser(cmd, db, username, email)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account to create or promote")
	cmd.Flags().StringVar(&email, "email", "", "email of a new account")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func createSuperuser(cmd *cobra.Command, db *gorm.DB, username, email string) error {
	// Mail is never sent for superusers, so no mailer is configured.
	users := user.NewUserService(db, nil, user.Options{BcryptCost: config.Conf.Signup.BcryptCost})

	code, be := users.EnsureSuperuser(cmd.Context(), username, email)
	if be != nil {
		return be
	}

	fmt.Fprintf(cmd.OutOrStdout(), "superuser %q is ready\nconfirmation code: %s\n", username, code)
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
