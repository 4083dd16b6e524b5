package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/ledger"
)

func newLedgerCommand(configPath *string) *cobra.Command {
	var accountCode string
	var from, to string
	var search string
	var offline bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show an account's ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}
			window := ledger.DateRange{Start: start, End: end}
			return runLedger(cmd, *configPath, accountCode, window, search, offline)
		},
	}

	cmd.Flags().StringVar(&accountCode, "account", "", "account code (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "filter displayed rows (totals unaffected)")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the local snapshot instead of the backend")

	return cmd
}

func runLedger(cmd *cobra.Command, configPath, accountCode string, window ledger.DateRange, search string, offline bool) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	snap, err := e.snapshot(cmd.Context(), offline)
	if err != nil {
		return err
	}
	svc := chart(snap)

	account, ok := svc.GetByCode(accountCode)
	if !ok {
		return fmt.Errorf("unknown account code %q", accountCode)
	}

	report := ledger.Compute(account, snap.Entries, window, search)

	fmt.Printf("Ledger for %s %s\n", account.Code, account.Name)
	fmt.Printf("Opening balance: %s\n\n", report.OpeningBalance.String())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tVOUCHER\tNARRATION\tDEBIT\tCREDIT\tBALANCE")
	for _, l := range report.Lines {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Date.Format(dateFlagFormat), l.VoucherNo, l.Narration,
			l.Debit.String(), l.Credit.String(), l.Balance.String())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal debit: %s  Total credit: %s  Closing balance: %s\n",
		report.TotalDebit.String(), report.TotalCredit.String(), report.ClosingBalance.String())
	return nil
}
