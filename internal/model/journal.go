package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType is the stored ledger code of a journal entry.
type VoucherType string

const (
	VoucherTypeReceipt VoucherType = "RV"
	VoucherTypePayment VoucherType = "PV"
	VoucherTypeJournal VoucherType = "JV"
)

// CashSideDebit reports which side of the entry carries the cash/bank
// account for this voucher type: true for the debit side (RV, JV), false
// for the credit side (PV). Used when reopening a stored voucher for edit.
func (t VoucherType) CashSideDebit() bool {
	return t != VoucherTypePayment
}

// JournalLine is one side of a double-entry posting. The account must be a
// leaf account; exactly one of Debit/Credit is non-zero in normal usage.
type JournalLine struct {
	ID        int
	AccountID int
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// JournalEntry is a voucher: a dated, numbered, balanced set of lines.
type JournalEntry struct {
	ID          int
	Date        time.Time
	VoucherNo   string
	VoucherType VoucherType
	Narration   string
	Lines       []JournalLine
}

// TotalDebit sums the debit side of all lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Balanced reports whether debits equal credits across all lines.
func (e JournalEntry) Balanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}
