package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/store"
	"github.com/putr/putr/internal/tracker"
)

var (
	ledgersDir string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "putr",
	Short: "Poker ledger tracker",
	Long:  "Ingest per-session poker ledger CSVs and track cumulative player statistics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ledgersDir, "ledgers", envOr("PUTR_LEDGERS", "ledgers"), "path to the session ledger folder")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", envOr("PUTR_DB", "putr.db"), "path to the directory store (.json selects the JSON file backend)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addAllCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(nicknamesCmd)
	rootCmd.AddCommand(newPlayerCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(sortDaysCmd)
	rootCmd.AddCommand(serveCmd)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func openTracker() (*tracker.Tracker, store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return &tracker.Tracker{Ledgers: ledgersDir, Store: st}, st, nil
}
