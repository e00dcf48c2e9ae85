package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/report"
)

var addAllExclude []string

var addAllCmd = &cobra.Command{
	Use:   "add-all",
	Short: "Apply every ledger in the folder, in sorted filename order",
	Args:  cobra.NoArgs,
	RunE:  runAddAll,
}

func init() {
	addAllCmd.Flags().StringSliceVar(&addAllExclude, "exclude", nil, "nicknames to drop from each session before applying")
}

func runAddAll(cmd *cobra.Command, args []string) error {
	t, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	reports, err := t.AddAll(addAllExclude)
	// Sessions that applied (or were skipped for unresolved nicknames) are
	// reported even when a later session fails hard.
	for _, rep := range reports {
		report.PrintApplyReport(os.Stdout, rep)
	}
	return err
}
