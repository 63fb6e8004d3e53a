package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"cohort_lms/internal/config"
	"cohort_lms/internal/repository"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "lmsadmin",
	Short:         "Administrative tasks for the cohort LMS",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "Directory containing config.yaml")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(setRoleCmd)
}

// openDB は設定を読み込み、tint のロガーで DB に接続する
func openDB(cmd *cobra.Command) (*gorm.DB, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if err := config.LoadConfig(path); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return db, logger, nil
}
