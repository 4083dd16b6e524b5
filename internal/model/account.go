package model

import "github.com/shopspring/decimal"

// Account type codes used by the chart of accounts.
const (
	TypeCodeAsset     = "ASSET"
	TypeCodeLiability = "LIAB"
	TypeCodeIncome    = "INC"
	TypeCodeExpense   = "EXP"
)

// AccountType is static reference data categorizing accounts.
type AccountType struct {
	ID          int
	Name        string
	Code        string // ASSET, LIAB, INC, EXP
	Description string
}

// Account is a node in the chart of accounts. An account with children is a
// group account and must never receive postings; only leaf accounts appear
// in journal lines.
type Account struct {
	ID             int
	Name           string
	Code           string // numeric-looking, unique among siblings
	AccountTypeID  int
	ParentID       int             // 0 = top-level
	OpeningBalance decimal.Decimal // debit-positive
	IsActive       bool
}
