package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/report"
	"github.com/putr/putr/internal/stats"
)

var combineCmd = &cobra.Command{
	Use:   "combine <session-key>...",
	Short: "Total net results across several sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCombine,
}

func runCombine(cmd *cobra.Command, args []string) error {
	_, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := st.Load()
	if err != nil {
		return err
	}

	sessions := make([]stats.Session, 0, len(args))
	for _, key := range args {
		rows, parsedKey, err := ledger.Parse(ledger.Path(ledgersDir, key))
		if err != nil {
			return err
		}
		sessions = append(sessions, stats.Session{Key: parsedKey, Rows: rows})
	}

	report.PrintCombined(os.Stdout, stats.Combine(dir, sessions), len(sessions))
	return nil
}
