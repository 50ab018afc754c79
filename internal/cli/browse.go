package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/render"
	"github.com/SeamusWaldron/cubealg/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Step through the tutorial cases interactively",
	Long: `Open the interactive case browser.

Move between sections with tab, between cases with the arrow keys, step
or play the algorithm, switch slots with y and show the inverse with i.
Press d for the definition of the current move.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	b := tui.NewBrowser(cat, render.New(os.Stdout, cfg.Color))
	if _, err := tea.NewProgram(b, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
