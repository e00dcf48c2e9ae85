package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (ledger upload + directory queries)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", envOr("PUTR_ADDR", ":8080"), "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	t, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	srv := &server.Server{Tracker: t}
	fmt.Fprintf(os.Stdout, "Serving on %s...\n", serveAddr)
	return http.ListenAndServe(serveAddr, srv.Router())
}
