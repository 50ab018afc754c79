package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg"
)

var invertCmd = &cobra.Command{
	Use:     "invert <alg>",
	Short:   "Print the inverse of an algorithm",
	Long:    `Reverse the moves of an algorithm and invert each one. Double turns stay as they are.`,
	Example: `  cubealg invert "R U R' U'"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), cubealg.Invert(joinArgs(args)))
	return nil
}
