package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/cache"
)

func newSyncCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the offline snapshot from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, *configPath)
		},
	}
	return cmd
}

func runSync(cmd *cobra.Command, configPath string) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}

	snap, err := e.snapshot(cmd.Context(), false)
	if err != nil {
		return err
	}

	store, err := cache.Open(e.cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Synced %d accounts and %d entries to %s\n",
		len(snap.Accounts), len(snap.Entries), store.Path())
	return nil
}
