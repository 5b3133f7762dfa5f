package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zuo-Peng/study-tracker/internal/config"
	"github.com/Zuo-Peng/study-tracker/internal/logging"
	"github.com/Zuo-Peng/study-tracker/internal/store"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "stt",
		Short:   "Study Time Tracker - pomodoro timer, streaks and study statistics",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}

	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every verb needs: the config, a logger and the study log.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return &env{
		cfg:    cfg,
		logger: logger,
		store:  store.New(cfg.DataPath, logger.Named("store")),
	}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}
