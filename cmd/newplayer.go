package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/putr/putr/internal/model"
)

var newPlayerID string

var newPlayerCmd = &cobra.Command{
	Use:   "newplayer <nickname>...",
	Short: "Register a player with zeroed statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNewPlayer,
}

func init() {
	newPlayerCmd.Flags().StringVar(&newPlayerID, "id", "", "canonical player id (generated when omitted)")
}

func runNewPlayer(cmd *cobra.Command, args []string) error {
	_, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := st.Load()
	if err != nil {
		return err
	}

	id := newPlayerID
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := dir[id]; exists {
		return fmt.Errorf("player id %q already exists", id)
	}

	dir[id] = model.NewPlayer(args...)
	if err := dir.Validate(); err != nil {
		return err
	}
	if err := st.Save(dir); err != nil {
		return err
	}
	fmt.Printf("Player %s added with nicknames %v\n", id, args)
	return nil
}
