package cmd

import (
	"sort"

	"github.com/spf13/cobra"
)

var sortDaysCmd = &cobra.Command{
	Use:   "sort-days",
	Short: "Sort each player's games_played list chronologically",
	Args:  cobra.NoArgs,
	RunE:  runSortDays,
}

func runSortDays(cmd *cobra.Command, args []string) error {
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
		sort.Strings(dir[id].GamesPlayed)
	}
	return st.Save(dir)
}
