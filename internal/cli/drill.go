package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/render"
	"github.com/SeamusWaldron/cubealg/internal/storage"
	"github.com/SeamusWaldron/cubealg/internal/tui"
)

var (
	drillSection string
	drillCount   int
	drillSlots   bool
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Time yourself on the cases of a section",
	Long: `Drill the cases of a section in random order.

Each case shows its starting state. Press space to start the timer and
space again when solved, or f to mark the attempt failed. Every attempt
is stored in the practice log; see 'cubealg history'.`,
	Args: cobra.NoArgs,
	RunE: runDrill,
}

func init() {
	rootCmd.AddCommand(drillCmd)
	drillCmd.Flags().StringVar(&drillSection, "section", "", "Section to drill (asks when omitted)")
	drillCmd.Flags().IntVar(&drillCount, "count", 0, "Number of cases (default: all)")
	drillCmd.Flags().BoolVar(&drillSlots, "slots", false, "Give each case a random slot (y, y2, y')")
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	sectionID := drillSection
	if sectionID == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("--section is required when not running in a terminal")
		}
		if sectionID, err = pickSection(cat); err != nil {
			return err
		}
	}
	s, err := cat.Section(sectionID)
	if err != nil {
		return err
	}

	cases := drillPlan(s, drillCount, drillSlots)
	if len(cases) == 0 {
		return fmt.Errorf("section %s has no cases", s.ID)
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := storage.NewSessionRecorder(db, s.ID)
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Close(); err != nil {
			slog.Warn("failed to end session", "session", rec.SessionID(), "error", err)
		}
	}()
	slog.Debug("drill started", "session", rec.SessionID(), "section", s.ID, "cases", len(cases))

	d := tui.NewDrill(cases, rec, render.New(os.Stdout, cfg.Color))
	if _, err := tea.NewProgram(d, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("drill error: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.Summary(d.Results()))
	return d.Err()
}

// pickSection asks for a section.
func pickSection(cat *catalog.Catalog) (string, error) {
	opts := make([]huh.Option[string], len(cat.Sections))
	for i, s := range cat.Sections {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%d cases)", s.Title, len(s.Cases)), s.ID)
	}

	var id string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which section do you want to drill?").
			Options(opts...).
			Value(&id),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("cancelled")
		}
		return "", fmt.Errorf("section prompt: %w", err)
	}
	return id, nil
}

// drillPlan shuffles the cases of s and keeps the first count of them.
// With slots each case is moved to a random slot.
func drillPlan(s *catalog.Section, count int, slots bool) []tui.DrillCase {
	order := rand.Perm(len(s.Cases))
	if count > 0 && count < len(order) {
		order = order[:count]
	}

	rotations := []cubealg.Rotation{cubealg.Identity, cubealg.Y, cubealg.Y2, cubealg.YPrime}
	plan := make([]tui.DrillCase, len(order))
	for i, idx := range order {
		plan[i] = tui.DrillCase{Case: s.Cases[idx]}
		if slots {
			plan[i].Rotation = rotations[rand.Intn(len(rotations))]
		}
	}
	return plan
}
