package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/report"
)

var lastN int

var lastCmd = &cobra.Command{
	Use:   "last <player>",
	Short: "Print a player's recent net curve with per-day deltas",
	Args:  cobra.ExactArgs(1),
	RunE:  runLast,
}

func init() {
	lastCmd.Flags().IntVarP(&lastN, "number", "n", 5, "number of recent sessions to print")
}

func runLast(cmd *cobra.Command, args []string) error {
	_, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := st.Load()
	if err != nil {
		return err
	}

	name := args[0]
	p, ok := dir[name]
	if !ok {
		// Accept a nickname too.
		if id, found := dir.Resolve(name); found {
			name, p = id, dir[id]
		} else {
			return fmt.Errorf("player %q not found", name)
		}
	}

	report.PrintLastSessions(os.Stdout, name, p, lastN)
	return nil
}
