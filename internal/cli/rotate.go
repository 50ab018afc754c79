package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var (
	rotateBy     string
	rotateTokens bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <alg>",
	Short: "Remap an algorithm for another F2L slot",
	Long: `Rewrite an algorithm as it would be performed after turning the whole cube
by y, y' or y2, so a front-right slot algorithm can be used on the others.

Only R, L, F and B (and their wide forms) change. With --tokens each
argument is remapped as its own token and printed on its own line.`,
	Example: `  cubealg rotate --by y "R U' R'"
  cubealg rotate --by y2 --tokens R U "R'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().StringVar(&rotateBy, "by", "y", "Rotation: y, y' or y2")
	rotateCmd.Flags().BoolVar(&rotateTokens, "tokens", false, "Remap each argument as a separate token")
}

func runRotate(cmd *cobra.Command, args []string) error {
	r, err := cubealg.ParseRotation(rotateBy)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rotateTokens {
		for _, t := range cubealg.TransformTokensByY(args, r) {
			fmt.Fprintln(out, t)
		}
		return nil
	}
	fmt.Fprintln(out, cubealg.TransformByY(joinArgs(args), r))
	return nil
}
