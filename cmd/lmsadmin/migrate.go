package main

import (
	"github.com/spf13/cobra"

	"cohort_lms/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, logger, err := openDB(cmd)
		if err != nil {
			return err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("Migration completed")
		return nil
	},
}
