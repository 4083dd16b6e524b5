package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// ValidationError describes a rejected voucher before any lines are built.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// BuildParams holds the simplified voucher a user enters. Journal kind uses
// DebitAccount/CreditAccount; every other kind uses CashAccount plus
// CounterAccount.
type BuildParams struct {
	Kind           Kind
	Amount         decimal.Decimal
	Narration      string
	CashAccount    int
	CounterAccount int
	DebitAccount   int
	CreditAccount  int
}

// BuildLines turns a simplified voucher into exactly two balanced
// double-entry lines. Receipt and Income debit the cash/bank account and
// credit the counterparty; Payment and Expense are the reverse; Journal
// posts between the two explicitly chosen accounts. Validation failures
// return a ValidationError and no lines.
func BuildLines(p BuildParams) ([]model.JournalLine, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	var debitAccount, creditAccount int
	switch p.Kind {
	case KindReceipt, KindIncome:
		debitAccount, creditAccount = p.CashAccount, p.CounterAccount
	case KindPayment, KindExpense:
		debitAccount, creditAccount = p.CounterAccount, p.CashAccount
	case KindJournal:
		debitAccount, creditAccount = p.DebitAccount, p.CreditAccount
	default:
		return nil, ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown voucher kind %q", p.Kind)}
	}

	return []model.JournalLine{
		{AccountID: debitAccount, Debit: p.Amount, Credit: decimal.Zero},
		{AccountID: creditAccount, Debit: decimal.Zero, Credit: p.Amount},
	}, nil
}

func validate(p BuildParams) error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}
	hundred := decimal.NewFromInt(100)
	if !p.Amount.Mul(hundred).Equal(p.Amount.Mul(hundred).Floor()) {
		return ValidationError{Field: "amount", Reason: "more than 2 decimal places"}
	}
	if p.Narration == "" {
		return ValidationError{Field: "narration", Reason: "is required"}
	}

	if p.Kind == KindJournal {
		if p.DebitAccount == 0 {
			return ValidationError{Field: "debit_account", Reason: "is required for journal vouchers"}
		}
		if p.CreditAccount == 0 {
			return ValidationError{Field: "credit_account", Reason: "is required for journal vouchers"}
		}
		if p.DebitAccount == p.CreditAccount {
			return ValidationError{Field: "credit_account", Reason: "must differ from debit account"}
		}
		return nil
	}

	if p.CashAccount == 0 {
		return ValidationError{Field: "cash_account", Reason: "is required"}
	}
	if p.CounterAccount == 0 {
		return ValidationError{Field: "counter_account", Reason: "is required"}
	}
	return nil
}
