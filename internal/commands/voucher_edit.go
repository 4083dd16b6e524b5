package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
	"github.com/brokerbooks-dev/brokerbooks/internal/voucher"
)

func newVoucherEditCommand(configPath *string) *cobra.Command {
	var amount string
	var date string
	var narration string
	var cashCode string
	var counterCode string
	var debitCode string
	var creditCode string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a stored voucher",
		Long: `Edit a stored voucher, replacing its whole line set.

Unset flags keep the stored values. The voucher number and type never
change on edit; narration given here is treated as manually entered and
is not re-templated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid voucher id %q", args[0])
			}
			return runVoucherEdit(cmd, *configPath, id, voucherInput{
				narration:   narration,
				cashCode:    cashCode,
				counterCode: counterCode,
				debitCode:   debitCode,
				creditCode:  creditCode,
			}, amount, date)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&narration, "narration", "", "new narration")
	cmd.Flags().StringVar(&cashCode, "cash", "", "new cash/bank account code")
	cmd.Flags().StringVar(&counterCode, "counter", "", "new counterparty account code")
	cmd.Flags().StringVar(&debitCode, "debit", "", "new debit account code (journal vouchers)")
	cmd.Flags().StringVar(&creditCode, "credit", "", "new credit account code (journal vouchers)")

	return cmd
}

func runVoucherEdit(cmd *cobra.Command, configPath string, id int, in voucherInput, amountFlag, dateFlag string) error {
	e, err := loadEnv(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	stored, err := e.client.GetJournalEntry(ctx, id)
	if err != nil {
		return err
	}
	if len(stored.Lines) != 2 {
		return fmt.Errorf("voucher %d has %d lines and cannot be edited as a simple voucher", id, len(stored.Lines))
	}

	snap, err := e.snapshot(ctx, false)
	if err != nil {
		return err
	}
	svc := chart(snap)

	params, err := storedParams(stored)
	if err != nil {
		return err
	}

	if amountFlag != "" {
		if params.Amount, err = decimal.NewFromString(amountFlag); err != nil {
			return fmt.Errorf("invalid --amount %q: %w", amountFlag, err)
		}
	}
	date := stored.Date
	if dateFlag != "" {
		if date, err = parseDateFlag("date", dateFlag); err != nil {
			return err
		}
	}

	// Stored narration counts as already edited; it is never re-templated.
	n := voucher.Manual(stored.Narration)
	if in.narration != "" {
		n.Edit(in.narration)
	}
	params.Narration = n.Text()

	if err := overrideAccounts(svc, &params, in); err != nil {
		return err
	}

	lines, err := voucher.BuildLines(params)
	if err != nil {
		return err
	}

	updated, err := e.client.UpdateJournalEntry(ctx, id, model.JournalEntry{
		ID:          id,
		Date:        date,
		VoucherNo:   stored.VoucherNo,
		VoucherType: stored.VoucherType,
		Narration:   params.Narration,
		Lines:       lines,
	})
	if err != nil {
		return err
	}

	logAudit("update", "voucher", strconv.Itoa(id),
		fmt.Sprintf("%s %s", updated.VoucherNo, params.Amount.String()))

	fmt.Printf("Updated %s: %s\n", updated.VoucherNo, updated.Narration)
	return nil
}

// storedParams reconstructs build params from a stored two-line voucher.
// The cash-side line is identified by voucher type: RV and JV carry it on
// the debit side, PV on the credit side.
func storedParams(entry model.JournalEntry) (voucher.BuildParams, error) {
	debitLine, creditLine := entry.Lines[0], entry.Lines[1]
	if debitLine.Debit.IsZero() {
		debitLine, creditLine = creditLine, debitLine
	}

	params := voucher.BuildParams{Amount: debitLine.Debit}
	switch entry.VoucherType {
	case model.VoucherTypeReceipt:
		params.Kind = voucher.KindReceipt
		params.CashAccount = debitLine.AccountID
		params.CounterAccount = creditLine.AccountID
	case model.VoucherTypePayment:
		params.Kind = voucher.KindPayment
		params.CashAccount = creditLine.AccountID
		params.CounterAccount = debitLine.AccountID
	case model.VoucherTypeJournal:
		params.Kind = voucher.KindJournal
		params.DebitAccount = debitLine.AccountID
		params.CreditAccount = creditLine.AccountID
	default:
		return voucher.BuildParams{}, fmt.Errorf("unknown voucher type %q", entry.VoucherType)
	}
	return params, nil
}

// overrideAccounts applies account-code flags onto reconstructed params.
func overrideAccounts(svc *coa.Service, params *voucher.BuildParams, in voucherInput) error {
	if in.cashCode != "" {
		cash, err := resolvePostable(svc, "cash", in.cashCode)
		if err != nil {
			return err
		}
		params.CashAccount = cash.ID
	}
	if in.counterCode != "" {
		counter, err := resolvePostable(svc, "counter", in.counterCode)
		if err != nil {
			return err
		}
		params.CounterAccount = counter.ID
	}
	if in.debitCode != "" {
		debit, err := resolvePostable(svc, "debit", in.debitCode)
		if err != nil {
			return err
		}
		params.DebitAccount = debit.ID
	}
	if in.creditCode != "" {
		credit, err := resolvePostable(svc, "credit", in.creditCode)
		if err != nil {
			return err
		}
		params.CreditAccount = credit.ID
	}
	return nil
}
