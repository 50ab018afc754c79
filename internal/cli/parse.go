package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var (
	parseStrict bool
	parseGroups bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <alg>",
	Short: "Normalize an algorithm",
	Long: `Normalize cube notation: parentheses are removed, U2' becomes U2 and
moves are separated by single spaces.

With --strict every move must be valid notation. With --groups the
parenthesized triggers are kept and listed.`,
	Example: `  cubealg parse "(R U R' U') (R' F R F')"
  cubealg parse --groups "F (R U R' U') F'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Reject moves that are not valid notation")
	parseCmd.Flags().BoolVar(&parseGroups, "groups", false, "Keep and list trigger groups")
}

func runParse(cmd *cobra.Command, args []string) error {
	input := joinArgs(args)
	out := cmd.OutOrStdout()

	alg := cubealg.Parse(input)
	if parseStrict {
		var err error
		if alg, err = cubealg.ParseStrict(input); err != nil {
			return err
		}
	}
	slog.Debug("parsed algorithm", "input", input, "moves", alg.Len())

	if !parseGroups {
		fmt.Fprintln(out, alg.String())
		return nil
	}

	g := cubealg.ParseGrouped(input)
	fmt.Fprintln(out, g.String())
	for i, span := range g.Triggers {
		fmt.Fprintf(out, "  trigger %d: %s (moves %d-%d)\n",
			i+1, g.Moves[span.Start:span.End].String(), span.Start+1, span.End)
	}
	return nil
}
