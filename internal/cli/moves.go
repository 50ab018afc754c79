package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List every move by group",
	Args:  cobra.NoArgs,
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

func runMoves(cmd *cobra.Command, args []string) error {
	r := newRenderer(cmd, nil)
	out := cmd.OutOrStdout()

	for i, g := range cubealg.MoveGroups() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, r.Title(g.Title))
		for _, t := range g.Moves {
			d := cubealg.Define(t)
			fmt.Fprintf(out, "  %-3s %s\n", t, d.Title)
		}
	}
	return nil
}
