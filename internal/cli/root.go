// Package cli implements the command-line interface for cubealg.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/config"
	"github.com/SeamusWaldron/cubealg/internal/render"
	"github.com/SeamusWaldron/cubealg/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configDir string
	dbPath    string
	colorMode string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubealg",
	Short: "Rubik's cube algorithm trainer",
	Long: `cubealg - A terminal trainer for Rubik's cube algorithms.

Parse, invert and remap cube notation, step through the cross, F2L and OLL
tutorial cases on an unfolded cube, and drill them against a timer with
every attempt logged for later review.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: ~/.cubealg)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Practice log database path (default: <config dir>/cubealg.db)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output: auto, always or never (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	dir := configDir
	if dir == "" {
		d, err := storage.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}
	slog.Debug("config loaded", "dir", cfg.Dir, "db", cfg.DBPath, "catalogs", len(cfg.Catalogs))
	return cfg, nil
}

// loadCatalog returns the built-in catalog merged with the configured files.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.LoadFiles(cfg.Catalogs...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// openDB opens the practice log.
func openDB(cfg *config.Config) (*storage.DB, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// newRenderer styles output for cmd's writer. Commands that do not load the
// config fall back to the --color flag.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	mode := colorMode
	if cfg != nil {
		mode = cfg.Color
	}
	if mode == "" {
		mode = render.ColorAuto
	}
	return render.New(cmd.OutOrStdout(), mode)
}

// joinArgs treats every argument as part of one algorithm, so quoting is
// optional on the command line.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
