package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/study-tracker/internal/history"
	"github.com/Zuo-Peng/study-tracker/internal/index"
	"github.com/Zuo-Peng/study-tracker/internal/render"
	"github.com/Zuo-Peng/study-tracker/internal/store"
)

const (
	hColorReset   = "\033[0m"
	hColorSubject = "\033[1;34m"
	hColorDim     = "\033[2m"
)

func historyCmd() *cobra.Command {
	var subject, since, until, by string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past sessions or totals grouped by day, subject or month",
		Long: `List sessions from the session index, newest first, or with --by print totals
per day, subject or month. The index is synced from the study log first.
Output is TSV when stdout is not a terminal:
  seq, timestamp, subject, seconds          (listing)
  key, seconds, sessions                    (--by)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range []string{since, until} {
				if d == "" {
					continue
				}
				if _, err := time.Parse("2006-01-02", d); err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", d)
				}
			}
			var group history.GroupBy
			if by != "" {
				g, err := history.ParseGroupBy(by)
				if err != nil {
					return err
				}
				group = g
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			db, err := index.OpenDB(e.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			// Auto-update index before querying
			if _, err := index.Sync(db, e.store, e.logger.Named("index")); err != nil {
				return fmt.Errorf("index: %w", err)
			}

			opts := history.Options{
				Subject: subject,
				Since:   since,
				Until:   until,
				Limit:   limit,
			}
			tty := term.IsTerminal(int(os.Stdout.Fd()))

			if group != "" {
				totals, err := history.Totals(db, opts, group)
				if err != nil {
					return err
				}
				printTotals(totals, tty)
				return nil
			}

			results, err := history.List(db, opts)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No sessions found.")
				return nil
			}
			printResults(results, tty, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Filter by subject")
	cmd.Flags().StringVar(&since, "since", "", "Only sessions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "Only sessions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&by, "by", "", "Group totals by day/subject/month")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max sessions to list (0 = all)")

	return cmd
}

func printResults(results []history.Result, tty bool, now time.Time) {
	for _, r := range results {
		subject := strings.ReplaceAll(r.Subject, "\t", " ")
		if !tty {
			fmt.Printf("%d\t%s\t%s\t%d\n", r.Seq, r.Timestamp, subject, r.Duration)
			continue
		}
		when := r.Timestamp
		if t, err := (store.Record{Timestamp: r.Timestamp}).Time(); err == nil {
			when = fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04"), humanize.RelTime(t, now, "ago", "from now"))
		}
		fmt.Printf("%s%5d%s  %s  %s%-16s%s %s\n",
			hColorDim, r.Seq, hColorReset,
			render.FormatTime(r.Duration),
			hColorSubject, subject, hColorReset,
			when,
		)
	}
}

func printTotals(totals []history.Total, tty bool) {
	for _, t := range totals {
		key := strings.ReplaceAll(t.Key, "\t", " ")
		if !tty {
			fmt.Printf("%s\t%d\t%d\n", key, t.Seconds, t.Sessions)
			continue
		}
		fmt.Printf("%-16s %s  %s%s%s\n",
			key,
			render.FormatTime(t.Seconds),
			hColorDim, english.Plural(t.Sessions, "session", "sessions"), hColorReset,
		)
	}
}
