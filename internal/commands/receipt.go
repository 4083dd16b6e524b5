package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/importer"
)

func newReceiptCommand(configPath *string) *cobra.Command {
	receiptCmd := &cobra.Command{
		Use:   "receipt",
		Short: "Manage freight receipts",
	}
	receiptCmd.AddCommand(newReceiptImportCommand(configPath))
	receiptCmd.AddCommand(newReceiptListCommand(configPath))
	return receiptCmd
}

func newReceiptImportCommand(configPath *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import freight receipts from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReceiptImport(cmd, *configPath, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without posting")

	return cmd
}

func runReceiptImport(cmd *cobra.Command, configPath, path string, dryRun bool) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	snap, err := e.snapshot(ctx, false)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := importer.Parse(f, chart(snap))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if dryRun {
		fmt.Printf("Parsed %d receipts from %s (dry run, nothing posted)\n", len(parsed), path)
		return nil
	}

	for _, r := range parsed {
		created, err := e.client.CreateReceipt(ctx, r)
		if err != nil {
			return fmt.Errorf("posting receipt %s: %w", r.ReceiptNo, err)
		}
		logAudit("create", "receipt", fmt.Sprintf("%d", created.ID),
			fmt.Sprintf("%s total %s", created.ReceiptNo, created.Total.String()))
	}

	fmt.Printf("Imported %d receipts from %s\n", len(parsed), path)
	return nil
}

func newReceiptListCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List freight receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReceiptList(cmd, *configPath)
		},
	}
	return cmd
}

func runReceiptList(cmd *cobra.Command, configPath string) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	receipts, err := e.client.ListReceipts(ctx)
	if err != nil {
		return err
	}

	snap, err := e.snapshot(ctx, false)
	if err != nil {
		return err
	}
	svc := chart(snap)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIPT\tDATE\tPARTY\tPKGS\tFREIGHT\tCARTAGE\tTOTAL")
	for _, r := range receipts {
		partyName := ""
		if party, ok := svc.Get(r.PartyAccountID); ok {
			partyName = party.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ReceiptNo, r.Date.Format(dateFlagFormat), partyName, r.Pkgs,
			r.Freight.String(), r.Cartage.String(), r.Total.String())
	}
	return w.Flush()
}
