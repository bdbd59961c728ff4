package cli

import (
	"os"

	"github.com/ehrlich-b/rubik/internal/rlog"
	"github.com/ehrlich-b/rubik/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solve API",
	Long: `Serve starts an HTTP server exposing POST /api/solve and GET /health,
backed by pruning tables loaded from --dir.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		dir, _ := cmd.Flags().GetString("dir")

		server := web.NewServer(dir, rlog.Logger)

		addr := host + ":" + port
		rlog.Logger.Info().Str("addr", addr).Msg("starting server")
		if err := server.Start(addr); err != nil {
			rlog.Logger.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().String("dir", "./tables", "Directory to load pruning table files from")
}
