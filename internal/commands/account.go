package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/auditlog"
	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func newAccountCommand(configPath *string) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	accountCmd.AddCommand(newAccountAddCommand(configPath))
	accountCmd.AddCommand(newAccountListCommand(configPath))
	return accountCmd
}

func newAccountAddCommand(configPath *string) *cobra.Command {
	var name string
	var category string
	var opening string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account under a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := coa.ParseCategory(category)
			if err != nil {
				return err
			}
			openingBalance := decimal.Zero
			if opening != "" {
				if openingBalance, err = decimal.NewFromString(opening); err != nil {
					return fmt.Errorf("invalid --opening amount %q: %w", opening, err)
				}
			}
			return runAccountAdd(cmd, *configPath, name, cat, openingBalance)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", "", "party, transport, delivery, income or expense (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&opening, "opening", "", "opening balance")

	return cmd
}

func runAccountAdd(cmd *cobra.Command, configPath, name string, cat coa.Category, opening decimal.Decimal) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// Placement works over a fresh snapshot so the generated code reflects
	// accounts created by other clients since the last sync.
	snap, err := e.snapshot(ctx, false)
	if err != nil {
		return err
	}

	placement, err := chart(snap).PlaceCategory(cat)
	if err != nil {
		return err
	}

	account := model.Account{
		Name:           name,
		Code:           placement.Code,
		AccountTypeID:  placement.AccountType.ID,
		ParentID:       placement.Parent.ID,
		OpeningBalance: opening,
		IsActive:       true,
	}

	created, err := e.client.CreateAccount(ctx, account)
	if err != nil {
		return err
	}

	logAudit("create", "account", fmt.Sprintf("%d", created.ID),
		fmt.Sprintf("%s %s (%s)", created.Code, created.Name, cat))

	fmt.Printf("Created account %s %s (%s)\n", created.Code, created.Name, placement.AccountType.Code)
	return nil
}

func newAccountListCommand(configPath *string) *cobra.Command {
	var typeCode string
	var leavesOnly bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountList(cmd, *configPath, typeCode, leavesOnly, offline)
		},
	}

	cmd.Flags().StringVar(&typeCode, "type", "", "filter by account type code (ASSET, LIAB, INC, EXP)")
	cmd.Flags().BoolVar(&leavesOnly, "leaves", false, "only postable (leaf) accounts")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the local snapshot instead of the backend")

	return cmd
}

func runAccountList(cmd *cobra.Command, configPath, typeCode string, leavesOnly, offline bool) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	snap, err := e.snapshot(cmd.Context(), offline)
	if err != nil {
		return err
	}
	svc := chart(snap)

	var accounts []model.Account
	switch {
	case typeCode != "" && leavesOnly:
		accounts = svc.LeafByTypeCode(typeCode)
	case typeCode != "":
		t, ok := svc.TypeByCode(typeCode)
		if !ok {
			return fmt.Errorf("unknown account type code %q", typeCode)
		}
		for _, a := range svc.All() {
			if a.AccountTypeID == t.ID {
				accounts = append(accounts, a)
			}
		}
	case leavesOnly:
		accounts = svc.ActiveLeaves()
	default:
		accounts = svc.All()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tTYPE\tOPENING\tACTIVE")
	for _, a := range accounts {
		t, _ := svc.TypeByID(a.AccountTypeID)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", a.Code, a.Name, t.Code, a.OpeningBalance.String(), a.IsActive)
	}
	return w.Flush()
}

// logAudit appends one audit row to the project log, warning instead of
// failing: the mutation already happened.
func logAudit(action, entity, entityID, details string) {
	entry := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
	}
	if err := auditlog.Append(".", []auditlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}
