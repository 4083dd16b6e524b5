// Package commands wires the brokerbooks CLI: voucher entry, account
// management and ledger reports over the bookkeeping backend.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "brokerbooks",
		Short:   "Bookkeeping for a transport brokerage",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "brokerbooks.yaml", "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(&configPath))
	rootCmd.AddCommand(newVoucherCommand(&configPath))
	rootCmd.AddCommand(newLedgerCommand(&configPath))
	rootCmd.AddCommand(newTrialBalanceCommand(&configPath))
	rootCmd.AddCommand(newReceiptCommand(&configPath))
	rootCmd.AddCommand(newSyncCommand(&configPath))
	rootCmd.AddCommand(newAuditCommand())

	return rootCmd
}
