package ledger

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// TrialBalanceRow is one account's totals in a trial balance.
type TrialBalanceRow struct {
	AccountID   int
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Closing     decimal.Decimal
}

// TrialBalanceReport lists per-account totals plus grand totals. Balanced
// is false when grand debits and credits diverge, which indicates an
// unbalanced entry or a posting to an account missing from the chart.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

// TrialBalance computes totals and closing balances for every leaf account
// in the chart over an optional window. Group accounts carry no postings
// and are omitted.
func TrialBalance(chart *coa.Service, entries []model.JournalEntry, window DateRange) TrialBalanceReport {
	var report TrialBalanceReport
	report.TotalDebit = decimal.Zero
	report.TotalCredit = decimal.Zero

	for _, account := range chart.All() {
		if !chart.IsLeaf(account.ID) {
			continue
		}
		rep := Compute(account, entries, window, "")
		report.Rows = append(report.Rows, TrialBalanceRow{
			AccountID:   account.ID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Debit:       rep.TotalDebit,
			Credit:      rep.TotalCredit,
			Closing:     rep.ClosingBalance,
		})
		report.TotalDebit = report.TotalDebit.Add(rep.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(rep.TotalCredit)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return codeKey(report.Rows[i].AccountCode) < codeKey(report.Rows[j].AccountCode)
	})

	report.Balanced = report.TotalDebit.Equal(report.TotalCredit)
	return report
}

// codeKey orders numeric-looking codes numerically; anything unparseable
// sorts first.
func codeKey(code string) int {
	n, err := strconv.Atoi(code)
	if err != nil {
		return -1
	}
	return n
}
