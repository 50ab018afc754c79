package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/analysis"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/render"
)

var (
	casesSection     string
	casesRotate      string
	casesFrames      bool
	casesOrientation string
	triggersMin      int
	triggersMax      int
	triggersTop      int
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Browse the tutorial case catalog",
	Long:  `Commands for listing, showing and checking the cross, F2L and OLL tutorial cases.`,
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections and their cases",
	Args:  cobra.NoArgs,
	RunE:  runCasesList,
}

var casesShowCmd = &cobra.Command{
	Use:   "show <case-id>",
	Short: "Show a case",
	Long: `Display a case with its algorithm and the cube at the start of the demo.

Use --rotate to see the case remapped for another slot and --frames to
print the cube after every move.`,
	Args: cobra.ExactArgs(1),
	RunE: runCasesShow,
}

var casesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every case reaches its goal",
	Long: `Play every case and report the ones whose final frame falls short of the
goal stage or that contain moves the cube model cannot execute.`,
	Args: cobra.NoArgs,
	RunE: runCasesVerify,
}

var casesTriggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Find move sequences shared between cases",
	Long: `List the move sequences that occur most often across the case algorithms,
such as R U R' U' in the OLL section. Learning these first makes the
longer algorithms easier to remember.`,
	Args: cobra.NoArgs,
	RunE: runCasesTriggers,
}

func init() {
	rootCmd.AddCommand(casesCmd)

	casesCmd.AddCommand(casesListCmd)
	casesListCmd.Flags().StringVar(&casesSection, "section", "", "Only list this section")

	casesCmd.AddCommand(casesShowCmd)
	casesShowCmd.Flags().StringVar(&casesRotate, "rotate", "", "Remap the case by y, y' or y2")
	casesShowCmd.Flags().BoolVar(&casesFrames, "frames", false, "Print the cube after every move")

	casesCmd.AddCommand(casesVerifyCmd)
	casesCmd.AddCommand(casesTriggersCmd)
	casesTriggersCmd.Flags().StringVar(&casesSection, "section", "", "Only mine this section")
	casesTriggersCmd.Flags().IntVar(&triggersMin, "min", 3, "Shortest sequence length")
	casesTriggersCmd.Flags().IntVar(&triggersMax, "max", 6, "Longest sequence length")
	casesTriggersCmd.Flags().IntVar(&triggersTop, "top", 5, "Sequences to show per length")

	casesVerifyCmd.Flags().StringVar(&casesOrientation, "orientation", "", "Extra moves applied before each case's own orientation")
}

func runCasesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	r := newRenderer(cmd, cfg)
	out := cmd.OutOrStdout()

	sections := cat.Sections
	if casesSection != "" {
		s, err := cat.Section(casesSection)
		if err != nil {
			return err
		}
		sections = []*catalog.Section{s}
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  %s\n", r.Title(s.Title), r.Status(fmt.Sprintf("(%s, %d cases)", s.ID, len(s.Cases))))
		if casesSection != "" {
			if notes := r.SectionNotes(s); notes != "" {
				fmt.Fprintln(out, notes)
				fmt.Fprintln(out)
			}
		}
		for _, c := range s.Cases {
			title, _ := catalog.SplitProbability(c.Title)
			line := fmt.Sprintf("  %-36s %s", c.ID, title)
			if c.Probability != "" {
				line += "  " + r.Status(c.Probability)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func runCasesShow(cmd *cobra.Command, args []string) error {
	rot, err := cubealg.ParseRotation(casesRotate)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	base, err := cat.Case(args[0])
	if err != nil {
		return err
	}
	c := base.Rotated(rot)
	r := newRenderer(cmd, cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, r.CaseHeader(c))
	if s, err := cat.Section(c.Section); err == nil {
		if g, ok := s.GroupOf(base); ok {
			fmt.Fprintln(out, r.Status("Group: "+g.Title))
			if g.Tip != "" {
				fmt.Fprintln(out, r.Markdown(g.Tip))
			}
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Algorithm: %s\n", r.Algorithm(c.Grouped(), -1))
	fmt.Fprintf(out, "Setup:     %s\n", c.Setup)
	if goal, ok := c.GoalStage(); ok {
		fmt.Fprintf(out, "Goal:      %s\n", goal.DisplayName())
	}
	fmt.Fprintln(out)

	p, err := c.NewPlayer()
	if err != nil {
		return err
	}
	if !casesFrames {
		f, err := p.Frame(0)
		if err != nil {
			return err
		}
		printFrame(out, r, p, c.Grouped(), f)
		return nil
	}
	for _, f := range p.Frames() {
		printFrame(out, r, p, c.Grouped(), f)
		fmt.Fprintln(out)
	}
	return nil
}

// printFrame draws one frame: the net, the algorithm with the move just
// played marked, and the progress line.
func printFrame(out io.Writer, r *render.Renderer, p *cube.Player, g cubealg.Grouped, f cube.Frame) {
	fmt.Fprint(out, r.Net(f.Cube, p.Mask()))
	fmt.Fprintln(out, r.Algorithm(g, f.Index-1))
	fmt.Fprintln(out, r.Progress(f.Index, p.Len()-1, f.Stage))
}

func runCasesVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	findings := catalog.Verify(cat, casesOrientation)
	for _, f := range findings {
		fmt.Fprintln(out, f.String())
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d of %d cases failed verification", len(findings), len(cat.Cases()))
	}
	fmt.Fprintf(out, "All %d cases verified.\n", len(cat.Cases()))
	return nil
}

func runCasesTriggers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	r := newRenderer(cmd, cfg)
	out := cmd.OutOrStdout()

	cases := cat.Cases()
	if casesSection != "" {
		s, err := cat.Section(casesSection)
		if err != nil {
			return err
		}
		cases = s.Cases
	}

	seqs := make([]analysis.Sequence, len(cases))
	for i, c := range cases {
		seqs[i] = analysis.Sequence{ID: c.ID, Moves: c.Moves()}
	}

	report := analysis.MineNGrams(seqs, triggersMin, triggersMax, triggersTop)
	if len(report.TopNGrams) == 0 {
		fmt.Fprintln(out, "No repeated sequences found.")
		return nil
	}
	for n := triggersMin; n <= triggersMax; n++ {
		ngrams, ok := report.TopNGrams[n]
		if !ok {
			continue
		}
		fmt.Fprintln(out, r.Title(fmt.Sprintf("%d moves", n)))
		for _, ng := range ngrams {
			fmt.Fprintf(out, "  %-28s %3dx in %d cases\n", ng.Moves.String(), ng.Count, ng.Cases)
		}
		fmt.Fprintln(out)
	}
	return nil
}
