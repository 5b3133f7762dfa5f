package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/study-tracker/internal/render"
	"github.com/Zuo-Peng/study-tracker/internal/stats"
)

func statsCmd() *cobra.Command {
	var period, subject string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print study statistics for a period",
		Long: `Print the daily, weekly or lifetime report. When stdout is not a terminal the
report is written as tab-separated lines:
  total, average, sessions, subject <name> <secs>, day <date> <secs>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := stats.ParsePeriod(period)
			if err != nil {
				return err
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			rep := stats.Build(e.store.Load(), p, subject, time.Now())

			// Colored report when stdout is a terminal; TSV output for pipes
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				fmt.Print(render.TSV(rep))
				return nil
			}
			width := 80
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
			fmt.Print(render.Report(rep, render.Options{Width: width, Color: true}))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "daily", "Period (daily/weekly/lifetime)")
	cmd.Flags().StringVar(&subject, "subject", "", "Only count sessions of this subject")

	return cmd
}
