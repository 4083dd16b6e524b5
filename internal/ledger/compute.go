// Package ledger derives account reports from a snapshot of journal
// entries. Everything here is pure computation: no I/O, no clock, no
// mutable state between calls.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
	"github.com/brokerbooks-dev/brokerbooks/internal/voucherno"
)

const dateFormat = "2006-01-02"

// DateRange bounds a report window. Zero values mean unbounded; bounds are
// inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Report is the computed ledger view of one account.
type Report struct {
	Lines          []model.LedgerLine
	OpeningBalance decimal.Decimal
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// Compute builds the ledger report for an account over a window.
//
// The opening balance starts from the account's stored opening balance and
// folds in every line dated strictly before the window start, so a ranged
// report opens at the true historical balance. In-range lines are sorted
// ascending by date (voucher sequence breaks ties, since entries arrive
// from the collaborator in arbitrary order) and the running balance is
// accumulated over that sorted order. The search term filters the returned
// rows case-insensitively but never changes balances or totals.
func Compute(account model.Account, entries []model.JournalEntry, window DateRange, search string) Report {
	opening := account.OpeningBalance

	var lines []model.LedgerLine
	for _, entry := range entries {
		for _, line := range entry.Lines {
			if line.AccountID != account.ID {
				continue
			}
			if !window.Start.IsZero() && entry.Date.Before(window.Start) {
				opening = opening.Add(line.Debit).Sub(line.Credit)
				continue
			}
			if !window.End.IsZero() && entry.Date.After(window.End) {
				continue
			}
			lines = append(lines, model.LedgerLine{
				Date:      entry.Date,
				VoucherNo: entry.VoucherNo,
				Narration: entry.Narration,
				Debit:     line.Debit,
				Credit:    line.Credit,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return voucherno.Seq(lines[i].VoucherNo) < voucherno.Seq(lines[j].VoucherNo)
	})

	balance := opening
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range lines {
		totalDebit = totalDebit.Add(lines[i].Debit)
		totalCredit = totalCredit.Add(lines[i].Credit)
		balance = balance.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].Balance = balance
	}

	return Report{
		Lines:          filterLines(lines, search),
		OpeningBalance: opening,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: balance,
	}
}

// filterLines keeps rows whose date, voucher number, narration or amounts
// contain the search term, case-insensitively. Filtering happens after
// balances are assigned; it only changes which rows are displayed.
func filterLines(lines []model.LedgerLine, search string) []model.LedgerLine {
	if search == "" {
		return lines
	}
	term := strings.ToLower(search)

	var matched []model.LedgerLine
	for _, l := range lines {
		fields := []string{
			l.Date.Format(dateFormat),
			l.VoucherNo,
			l.Narration,
			l.Debit.String(),
			l.Credit.String(),
			l.Balance.String(),
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), term) {
				matched = append(matched, l)
				break
			}
		}
	}
	return matched
}
