package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one row of a computed ledger report. Derived, never stored.
type LedgerLine struct {
	Date      time.Time
	VoucherNo string
	Narration string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Balance   decimal.Decimal // running balance after this line
}
