package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/ledger"
)

var nicknamesCmd = &cobra.Command{
	Use:   "nicknames",
	Short: "Print every unique nickname seen across the ledger folder",
	Args:  cobra.NoArgs,
	RunE:  runNicknames,
}

func runNicknames(cmd *cobra.Command, args []string) error {
	keys, err := ledger.Sessions(ledgersDir)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		rows, _, err := ledger.Parse(ledger.Path(ledgersDir, key))
		if err != nil {
			return err
		}
		for _, r := range rows {
			seen[r.Nickname] = true
		}
	}

	nicks := make([]string, 0, len(seen))
	for n := range seen {
		nicks = append(nicks, n)
	}
	sort.Strings(nicks)
	for _, n := range nicks {
		fmt.Fprintln(os.Stdout, n)
	}
	return nil
}
