package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/ledger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List session keys available in the ledger folder",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	keys, err := ledger.Sessions(ledgersDir)
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintln(os.Stdout, key)
	}
	return nil
}
