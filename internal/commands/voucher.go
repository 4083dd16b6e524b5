package commands

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
	"github.com/brokerbooks-dev/brokerbooks/internal/voucher"
)

func newVoucherCommand(configPath *string) *cobra.Command {
	voucherCmd := &cobra.Command{
		Use:   "voucher",
		Short: "Enter and list vouchers",
	}
	voucherCmd.AddCommand(newVoucherAddCommand(configPath))
	voucherCmd.AddCommand(newVoucherEditCommand(configPath))
	voucherCmd.AddCommand(newVoucherListCommand(configPath))
	voucherCmd.AddCommand(newVoucherDeleteCommand(configPath))
	return voucherCmd
}

func newVoucherAddCommand(configPath *string) *cobra.Command {
	var kindName string
	var amount string
	var date string
	var narration string
	var cashCode string
	var counterCode string
	var debitCode string
	var creditCode string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enter a voucher",
		Long: `Enter a voucher as a simplified two-line posting.

Receipt, payment, income and expense kinds take a cash/bank account and a
counterparty account; journal kind takes explicit debit and credit
accounts. Narration defaults to a per-kind template when omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := voucher.ParseKind(kindName)
			if err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			when, err := parseDateFlag("date", date)
			if err != nil {
				return err
			}
			if when.IsZero() {
				when = time.Now()
			}
			return runVoucherAdd(cmd, *configPath, voucherInput{
				kind:        kind,
				amount:      amt,
				date:        when,
				narration:   narration,
				cashCode:    cashCode,
				counterCode: counterCode,
				debitCode:   debitCode,
				creditCode:  creditCode,
			})
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "receipt, payment, income, expense or journal (required)")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().StringVar(&amount, "amount", "", "voucher amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "voucher date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&narration, "narration", "", "narration (default from kind template)")
	cmd.Flags().StringVar(&cashCode, "cash", "", "cash/bank account code")
	cmd.Flags().StringVar(&counterCode, "counter", "", "counterparty account code")
	cmd.Flags().StringVar(&debitCode, "debit", "", "debit account code (journal kind)")
	cmd.Flags().StringVar(&creditCode, "credit", "", "credit account code (journal kind)")

	return cmd
}

type voucherInput struct {
	kind        voucher.Kind
	amount      decimal.Decimal
	date        time.Time
	narration   string
	cashCode    string
	counterCode string
	debitCode   string
	creditCode  string
}

func runVoucherAdd(cmd *cobra.Command, configPath string, in voucherInput) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	snap, err := e.snapshot(ctx, false)
	if err != nil {
		return err
	}
	svc := chart(snap)

	params := voucher.BuildParams{
		Kind:   in.kind,
		Amount: in.amount,
	}

	var counterName string
	if in.kind == voucher.KindJournal {
		debit, err := resolvePostable(svc, "debit", in.debitCode)
		if err != nil {
			return err
		}
		credit, err := resolvePostable(svc, "credit", in.creditCode)
		if err != nil {
			return err
		}
		params.DebitAccount = debit.ID
		params.CreditAccount = credit.ID
	} else {
		cash, err := resolvePostable(svc, "cash", in.cashCode)
		if err != nil {
			return err
		}
		if !slices.Contains(e.cfg.Cash.AccountCodes, cash.Code) {
			return fmt.Errorf("account %s is not a configured cash/bank account", cash.Code)
		}
		counter, err := resolvePostable(svc, "counter", in.counterCode)
		if err != nil {
			return err
		}
		if err := checkCounterEligible(svc, in.kind, counter); err != nil {
			return err
		}
		params.CashAccount = cash.ID
		params.CounterAccount = counter.ID
		counterName = counter.Name
	}

	narration := voucher.Manual(in.narration)
	if in.narration == "" {
		narration = voucher.Narration{}
		narration.Refresh(in.kind, counterName, in.date)
	}
	params.Narration = narration.Text()

	lines, err := voucher.BuildLines(params)
	if err != nil {
		return err
	}

	voucherNo, err := e.client.NextVoucherNumber(ctx, in.kind.VoucherType())
	if err != nil {
		return err
	}

	created, err := e.client.CreateJournalEntry(ctx, model.JournalEntry{
		Date:        in.date,
		VoucherNo:   voucherNo,
		VoucherType: in.kind.VoucherType(),
		Narration:   params.Narration,
		Lines:       lines,
	})
	if err != nil {
		return err
	}

	logAudit("create", "voucher", fmt.Sprintf("%d", created.ID),
		fmt.Sprintf("%s %s %s", created.VoucherNo, in.kind, in.amount.String()))

	fmt.Printf("Posted %s for %s: %s\n", created.VoucherNo, in.amount.String(), created.Narration)
	return nil
}

// resolvePostable resolves an account code and enforces that it is an
// active leaf; group and inactive accounts never receive postings.
func resolvePostable(svc *coa.Service, field, code string) (model.Account, error) {
	if code == "" {
		return model.Account{}, fmt.Errorf("--%s account code is required", field)
	}
	account, ok := svc.GetByCode(code)
	if !ok {
		return model.Account{}, fmt.Errorf("unknown %s account code %q", field, code)
	}
	if !account.IsActive {
		return model.Account{}, fmt.Errorf("%s account %s is inactive", field, code)
	}
	if !svc.IsLeaf(account.ID) {
		return model.Account{}, fmt.Errorf("%s account %s is a group account and cannot be posted to", field, code)
	}
	return account, nil
}

func checkCounterEligible(svc *coa.Service, kind voucher.Kind, counter model.Account) error {
	eligible := kind.CounterTypeCodes()
	if eligible == nil {
		return nil
	}
	t, ok := svc.TypeByID(counter.AccountTypeID)
	if !ok {
		return fmt.Errorf("account %s has unknown account type %d", counter.Code, counter.AccountTypeID)
	}
	if !slices.Contains(eligible, t.Code) {
		return fmt.Errorf("account %s (%s) is not eligible as counterparty for %s vouchers", counter.Code, t.Code, kind)
	}
	return nil
}

func newVoucherListCommand(configPath *string) *cobra.Command {
	var from, to string
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}
			return runVoucherList(cmd, *configPath, start, end, offline)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the local snapshot instead of the backend")

	return cmd
}

func runVoucherList(cmd *cobra.Command, configPath string, start, end time.Time, offline bool) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	snap, err := e.snapshot(cmd.Context(), offline)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tVOUCHER\tTYPE\tDEBIT\tCREDIT\tNARRATION")
	for _, entry := range snap.Entries {
		if !start.IsZero() && entry.Date.Before(start) {
			continue
		}
		if !end.IsZero() && entry.Date.After(end) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Date.Format(dateFlagFormat), entry.VoucherNo, entry.VoucherType,
			entry.TotalDebit().String(), entry.TotalCredit().String(), entry.Narration)
	}
	return w.Flush()
}

func newVoucherDeleteCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid voucher id %q", args[0])
			}
			if err := e.client.DeleteJournalEntry(cmd.Context(), id); err != nil {
				return err
			}
			logAudit("delete", "voucher", args[0], "")
			fmt.Printf("Deleted voucher %d\n", id)
			return nil
		},
	}
	return cmd
}
