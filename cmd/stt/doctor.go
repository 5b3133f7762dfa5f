package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/study-tracker/internal/index"
	"github.com/Zuo-Peng/study-tracker/internal/render"
	"github.com/Zuo-Peng/study-tracker/internal/stats"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, study log and index, and show sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			cfg := e.cfg

			// config
			fmt.Println("=== Config ===")
			if cfg.Path == "" {
				fmt.Println("  File: (none, using defaults)")
			} else {
				fmt.Printf("  File: %s (OK)\n", cfg.Path)
			}
			fmt.Printf("  Pomodoro: %d min\n", cfg.PomodoroMinutes)
			fmt.Printf("  Subjects: %d\n", len(cfg.Subjects))

			// study log
			fmt.Println("\n=== Study Log ===")
			fmt.Printf("  Path: %s\n", cfg.DataPath)
			records, err := e.store.Check()
			switch {
			case err != nil:
				fmt.Printf("  Status: PROBLEM (%v)\n", err)
			case records == 0:
				fmt.Println("  Status: OK (empty)")
			default:
				fmt.Printf("  Status: OK (%d records)\n", records)
			}
			log := e.store.Load()
			total, _ := stats.Aggregate(log, "")
			fmt.Printf("  Total study time: %s\n", render.FormatTime(total))

			// index
			fmt.Println("\n=== Index ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			synced, err := index.Sync(db, e.store, e.logger.Named("index"))
			if err != nil {
				fmt.Printf("  Sync error: %v\n", err)
			} else {
				fmt.Printf("  Sync: %s\n", synced)
			}

			c, err := index.Compare(db, log)
			if err != nil {
				return err
			}
			fmt.Printf("  Sessions: %d\n", c.IndexSessions)
			if c.Unindexable > 0 {
				fmt.Printf("  Not indexable: %d (bad timestamps)\n", c.Unindexable)
			}
			if c.InSync() {
				fmt.Println("  Status: OK (synced)")
			} else {
				fmt.Printf("  Status: MISMATCH (log=%d/%s, index=%d/%s)\n",
					c.LogSessions, render.FormatTime(c.LogSeconds),
					c.IndexSessions, render.FormatTime(c.IndexSeconds))
			}

			// sizes
			fmt.Println("\n=== Files ===")
			printSize("Study log", cfg.DataPath)
			printSize("Index", cfg.DBPath)
			printSize("Log", cfg.LogPath)

			return nil
		},
	}
}

func printSize(name, path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  %-9s  %s (NOT FOUND)\n", name, path)
		return
	}
	fmt.Printf("  %-9s  %s (%s, modified %s)\n", name, path,
		humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}
