package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/console"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

var consoleSlot string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the debug console on a paused save",
	Long: `Load a save slot without running the game loop and read debug commands
from stdin. Changes are only written back by the save command.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().StringVar(&consoleSlot, "slot", "", "save slot (default from config)")
}

func runConsole(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if consoleSlot != "" {
		s.cfg.Storage.Slot = consoleSlot
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	g, err := loadGame(ctx, s, store)
	if err != nil {
		return err
	}

	con := console.New(g,
		console.WithLogger(s.logger),
		console.WithSaver(&savestore.SlotSaver{
			Store:  store,
			Slot:   s.cfg.Storage.Slot,
			Format: s.cfg.Storage.SnapshotFormat(),
			Source: g,
		}))
	return con.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
