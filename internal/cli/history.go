package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/storage"
)

var (
	historyCase          string
	historyLimit         int
	historySessions      bool
	historyDeleteSession string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show drill history",
	Long: `Summarize the practice log.

Without --case every practiced case is listed with its attempt count,
failures, best and mean time. With --case the recent attempts at that case
are listed and plotted. --sessions lists recent drill sessions and
--delete-session removes one session with its attempts.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyCase, "case", "", "Show the attempts at one case")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Number of recent attempts to show")
	historyCmd.Flags().BoolVar(&historySessions, "sessions", false, "List recent drill sessions")
	historyCmd.Flags().StringVar(&historyDeleteSession, "delete-session", "", "Delete a session and its attempts")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)
	out := cmd.OutOrStdout()

	switch {
	case historyDeleteSession != "":
		return deleteSession(out, storage.NewSessionRepository(db), repo, historyDeleteSession)
	case historySessions:
		return listSessions(out, storage.NewSessionRepository(db), repo, historyLimit)
	}

	if historyCase == "" {
		stats, err := repo.Stats()
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No attempts recorded yet. Run 'cubealg drill' to start.")
			return nil
		}
		fmt.Fprintf(out, "%-36s %8s %8s %8s %8s\n", "CASE", "ATTEMPTS", "FAILED", "BEST", "MEAN")
		for _, s := range stats {
			fmt.Fprintf(out, "%-36s %8d %8d %8s %8s\n",
				s.CaseID, s.Attempts, s.Failures, formatSeconds(s.Best), formatSeconds(s.Mean))
		}
		return nil
	}

	attempts, err := repo.ListByCase(historyCase, historyLimit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Fprintf(out, "No attempts at %s.\n", historyCase)
		return nil
	}

	var times []float64
	for _, a := range attempts {
		mark := ""
		if a.Failed {
			mark = "  (failed)"
		} else {
			times = append(times, a.Duration.Seconds())
		}
		slot := a.Rotation
		if slot == "" {
			slot = "-"
		}
		fmt.Fprintf(out, "%s  %-3s %8s%s\n", a.CreatedAt.Local().Format("2006-01-02 15:04"), slot, formatSeconds(a.Duration), mark)
	}

	stats, err := repo.StatsFor(historyCase)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Attempts: %d  Failed: %d  Best: %s  Mean: %s\n",
		stats.Attempts, stats.Failures, formatSeconds(stats.Best), formatSeconds(stats.Mean))

	if len(times) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Precision(1),
			asciigraph.Caption("seconds per attempt")))
	}
	return nil
}

func listSessions(out io.Writer, sessions *storage.SessionRepository, attempts *storage.AttemptRepository, limit int) error {
	list, err := sessions.List(limit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %-16s  %8s\n", "SESSION", "STARTED", "SECTION", "ATTEMPTS")
	for _, s := range list {
		n, err := attempts.CountBySession(s.SessionID)
		if err != nil {
			return err
		}
		section := "-"
		if s.SectionID != nil {
			section = *s.SectionID
		}
		fmt.Fprintf(out, "%-36s  %-16s  %-16s  %8d\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"), section, n)
	}
	return nil
}

func deleteSession(out io.Writer, sessions *storage.SessionRepository, attempts *storage.AttemptRepository, id string) error {
	if _, err := sessions.Get(id); err != nil {
		return err
	}
	n, err := attempts.CountBySession(id)
	if err != nil {
		return err
	}
	if err := sessions.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted session %s (%d attempts).\n", id, n)
	return nil
}

func formatSeconds(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
