package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/rubik/internal/cube"
	"github.com/ehrlich-b/rubik/internal/rlog"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage IDA* pruning tables",
}

var tablesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the corner/edge-orientation/edge-permutation pruning tables",
	Long: `Generate walks the solved state out to the configured depth for each
of the three pruning tables and writes them to disk. This takes a while
the first time; subsequent solves just load the files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating table directory: %w", err)
		}

		start := time.Now()
		tables, err := cube.BuildTables(cmd.Context(), rlog.Logger)
		if err != nil {
			return fmt.Errorf("building tables: %w", err)
		}
		rlog.Logger.Info().Dur("elapsed", time.Since(start)).Msg("tables built")

		if err := cube.SaveTables(dir, tables); err != nil {
			return fmt.Errorf("saving tables: %w", err)
		}
		fmt.Printf("Wrote pruning tables to %s\n", dir)
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesGenerateCmd)
	tablesGenerateCmd.Flags().String("dir", "./tables", "Directory to write pruning table files to")
}
