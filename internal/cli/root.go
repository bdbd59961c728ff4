package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "An optimal 3x3x3 Rubik's cube solver",
	Long: `Cube builds IDA* pruning tables and finds optimal (shortest) solutions
for a scrambled 3x3x3 Rubik's cube.`,
	Version: "2.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}
