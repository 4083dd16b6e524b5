package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/auditlog"
)

func newAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the local audit log of mutations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit()
		},
	}
	return cmd
}

func runAudit() error {
	entries, err := auditlog.Read(".")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tACTION\tENTITY\tID\tDETAILS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.Action, e.Entity, e.EntityID, e.Details)
	}
	return w.Flush()
}
