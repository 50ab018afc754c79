package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/cube"
)

var (
	playSetup      string
	playStickering string
	playInterval   time.Duration
	playFrames     bool
)

var playCmd = &cobra.Command{
	Use:   "play <alg>",
	Short: "Animate an algorithm on the cube",
	Long: `Play an algorithm move by move on an unfolded cube.

The cube is held in the configured orientation (x2 by default, yellow on
top) and the setup moves are applied before the first frame. With
--frames every frame is printed at once instead of on a timer.`,
	Example: `  cubealg play --setup "R U R'" "R U' R'"
  cubealg play --stickering OLL --frames "F (R U R' U') F'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playSetup, "setup", "", "Moves applied before the first frame")
	playCmd.Flags().StringVar(&playStickering, "stickering", "full", "Stickering name (full, Cross, F2L, OLL) or orbit mask")
	playCmd.Flags().DurationVar(&playInterval, "interval", 0, "Time between frames (default from config)")
	playCmd.Flags().BoolVar(&playFrames, "frames", false, "Print every frame without waiting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mask, err := cube.ParseMask(playStickering)
	if err != nil {
		return err
	}

	interval := cfg.Interval
	if playInterval > 0 {
		interval = playInterval
	}

	r := newRenderer(cmd, cfg)
	out := cmd.OutOrStdout()
	input := joinArgs(args)

	p := cube.NewPlayer(
		cube.WithOrientation(cfg.Orientation),
		cube.WithInterval(interval),
		cube.WithStageCallback(func(s cube.Stage, frame int) {
			slog.Debug("stage reached", "stage", s, "frame", frame)
		}),
	)
	if err := p.Load(playSetup, input, mask); err != nil {
		return err
	}
	g := cubealg.ParseGrouped(input)

	if playFrames {
		for _, f := range p.Frames() {
			printFrame(out, r, p, g, f)
			fmt.Fprintln(out)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = p.Play(ctx, func(f cube.Frame) error {
		if !r.IsPlain() {
			fmt.Fprint(out, "\x1b[H\x1b[2J")
		}
		printFrame(out, r, p, g, f)
		fmt.Fprintln(out)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Highest stage: %s\n", p.HighestStage().DisplayName())
	return nil
}
