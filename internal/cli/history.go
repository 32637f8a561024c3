package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/khanglvm/toolbelt/internal/storage"
	"github.com/spf13/cobra"
)

// historySummary aggregates analytics rows. Queries are stored hashed, so
// only counts are available.
type historySummary struct {
	Since         time.Time      `json:"since"`
	Searches      int            `json:"searches"`
	ZeroResults   int            `json:"zeroResults"`
	AverageResult float64        `json:"averageResults"`
	PerDay        map[string]int `json:"perDay"`
}

// NewHistoryCmd creates the 'history' command for search analytics.
func NewHistoryCmd(g *Globals) *cobra.Command {
	var days int
	var prune bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarize recorded search analytics",
		Long: `Summarize the anonymous search analytics stored in ~/.toolbelt/history.db.

Only a hash of each query is stored, with its time and result count.
--prune deletes rows older than historyRetentionDays (0 keeps everything).`,
		Example: `  toolbelt history
  toolbelt history --days 1 --json
  toolbelt history --prune`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.Config()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if prune {
				if cfg.Settings.HistoryRetentionDays == 0 {
					fmt.Fprintln(out, "✓ historyRetentionDays is 0; history is kept forever")
					return nil
				}
				if err := pruneHistory(cfg.Settings.Retention()); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Removed searches older than %d days\n", cfg.Settings.HistoryRetentionDays)
				return nil
			}

			s := storage.NewStorage()
			if err := s.Init(); err != nil {
				return fmt.Errorf("history unavailable: %w", err)
			}
			defer s.Close()

			since := time.Now().AddDate(0, 0, -days)
			records, err := s.GetSearchHistory(since)
			if err != nil {
				return err
			}

			summary := summarize(records, since)
			if jsonOutput {
				return writeJSON(out, summary)
			}
			printSummary(out, summary, days)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Number of days to summarize")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete searches older than the retention window")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func summarize(records []storage.SearchRecord, since time.Time) historySummary {
	summary := historySummary{Since: since, PerDay: make(map[string]int)}
	total := 0
	for _, rec := range records {
		summary.Searches++
		total += rec.ResultsCount
		if rec.ResultsCount == 0 {
			summary.ZeroResults++
		}
		summary.PerDay[rec.Timestamp.Local().Format("2006-01-02")]++
	}
	if summary.Searches > 0 {
		summary.AverageResult = float64(total) / float64(summary.Searches)
	}
	return summary
}

func printSummary(w io.Writer, s historySummary, days int) {
	fmt.Fprintf(w, "Searches in the last %d days: %d\n", days, s.Searches)
	if s.Searches == 0 {
		return
	}
	fmt.Fprintf(w, "  Without results: %d\n", s.ZeroResults)
	fmt.Fprintf(w, "  Average results: %.1f\n\n", s.AverageResult)

	dates := make([]string, 0, len(s.PerDay))
	for d := range s.PerDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		fmt.Fprintf(w, "  %s  %d\n", d, s.PerDay[d])
	}
}

// pruneHistory applies the retention window to the analytics table.
func pruneHistory(retention time.Duration) error {
	if retention <= 0 {
		return nil
	}

	s := storage.NewStorage()
	if err := s.Init(); err != nil {
		return fmt.Errorf("history unavailable: %w", err)
	}
	defer s.Close()

	return s.Cleanup(retention)
}
