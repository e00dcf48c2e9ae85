package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/report"
	"github.com/putr/putr/internal/stats"
)

var showCmd = &cobra.Command{
	Use:   "show <session-key>",
	Short: "Print one session's results, best to worst",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	rows, _, err := ledger.Parse(ledger.Path(ledgersDir, args[0]))
	if err != nil {
		return err
	}
	report.PrintSessionResult(os.Stdout, stats.NetWinnings(rows, nil))
	return nil
}
