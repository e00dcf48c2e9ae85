package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/report"
)

var addExclude []string

var addCmd = &cobra.Command{
	Use:   "add <session-key>",
	Short: "Apply a session ledger to the player directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringSliceVar(&addExclude, "exclude", nil, "nicknames to drop from the session before applying")
}

func runAdd(cmd *cobra.Command, args []string) error {
	t, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	rep, err := t.AddSession(args[0], addExclude)
	if err != nil {
		return err
	}
	report.PrintApplyReport(os.Stdout, rep)
	return nil
}
