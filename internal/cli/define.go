package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var defineCmd = &cobra.Command{
	Use:     "define <move>",
	Short:   "Explain a move",
	Long:    `Show what a single move does: its layer, direction and angle, with its prime and double variants.`,
	Example: `  cubealg define "R'"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDefine,
}

func init() {
	rootCmd.AddCommand(defineCmd)
}

func runDefine(cmd *cobra.Command, args []string) error {
	alg := cubealg.Parse(args[0])
	if alg.Len() != 1 {
		return fmt.Errorf("define takes a single move, got %q", args[0])
	}
	t := alg[0]
	r := newRenderer(cmd, nil)
	out := cmd.OutOrStdout()

	if t.Valid() {
		selected := 0
		for i, v := range cubealg.Variants(t) {
			if v == t {
				selected = i
			}
		}
		fmt.Fprintln(out, r.Variants(t, selected))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, r.Definition(cubealg.Define(t)))
	return nil
}
