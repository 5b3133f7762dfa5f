package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zuo-Peng/study-tracker/internal/timer"
	"github.com/Zuo-Peng/study-tracker/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive timer and statistics dashboard (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
}

func runDashboard() error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	e.logger.Info("dashboard started",
		zap.String("data", e.cfg.DataPath),
		zap.Int("pomodoro_minutes", e.cfg.PomodoroMinutes))

	return tui.Run(tui.Options{
		Store:            e.store,
		State:            timer.New(e.cfg.Subjects, e.cfg.PomodoroMinutes),
		RecordOnComplete: e.cfg.RecordOnComplete,
		Logger:           e.logger.Named("tui"),
	})
}
