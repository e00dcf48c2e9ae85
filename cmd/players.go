package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Print the standings table for the whole directory",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	_, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := st.Load()
	if err != nil {
		return err
	}
	report.PrintStandings(os.Stdout, dir)
	return nil
}
