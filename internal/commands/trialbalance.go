package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/ledger"
)

func newTrialBalanceCommand(configPath *string) *cobra.Command {
	var from, to string
	var offline bool

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance across all leaf accounts",
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
			return runTrialBalance(cmd, *configPath, window, offline)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the local snapshot instead of the backend")

	return cmd
}

func runTrialBalance(cmd *cobra.Command, configPath string, window ledger.DateRange, offline bool) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	snap, err := e.snapshot(cmd.Context(), offline)
	if err != nil {
		return err
	}

	report := ledger.TrialBalance(chart(snap), snap.Entries, window)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT\tCLOSING")
	for _, row := range report.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.AccountCode, row.AccountName,
			row.Debit.String(), row.Credit.String(), row.Closing.String())
	}
	fmt.Fprintf(w, "\tTOTAL\t%s\t%s\t\n", report.TotalDebit.String(), report.TotalCredit.String())
	if err := w.Flush(); err != nil {
		return err
	}

	if !report.Balanced {
		fmt.Fprintln(os.Stderr, "warning: trial balance does not balance")
	}
	return nil
}
