package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero every player's net-derived fields, keeping nicknames",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	_, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := st.Load()
	if err != nil {
		return err
	}
	for _, id := range dir.IDs() {
		dir[id].Reset()
	}
	if err := st.Save(dir); err != nil {
		return err
	}
	fmt.Printf("Reset %d players\n", len(dir))
	return nil
}
