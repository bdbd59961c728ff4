package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ehrlich-b/rubik/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Find an optimal solution for a scrambled cube",
	Long: `Solve parses a scramble (e.g. "R U R' U'"), loads the pruning tables
from --dir, and prints a shortest move sequence that restores the solved
state.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) == 1 {
			scramble = args[0]
		}
		dir, _ := cmd.Flags().GetString("dir")
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := cube.ParseScramble(scramble)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing scramble: %v\n", err)
			os.Exit(1)
		}
		scrambled := cube.ApplySequence(cube.Solved, moves)

		tables, err := cube.LoadTables(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading pruning tables: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run 'cube tables generate --dir %s' first.\n", dir)
			os.Exit(1)
		}

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
		}

		start := time.Now()
		solution := cube.Solve(scrambled, tables)
		elapsed := time.Since(start)

		var out strings.Builder
		for i, m := range solution {
			if i > 0 {
				out.WriteString(" ")
			}
			out.WriteString(m.String())
		}

		if headless {
			fmt.Print(out.String())
			return
		}
		fmt.Printf("Solution: %s\n", out.String())
		fmt.Printf("Length: %d\n", len(solution))
		fmt.Printf("Time: %v\n", elapsed)
	},
}

func init() {
	solveCmd.Flags().String("dir", "./tables", "Directory to load pruning table files from")
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
}
