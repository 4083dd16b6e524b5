package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func trialChart() *coa.Service {
	types := []model.AccountType{
		{ID: 1, Name: "Asset", Code: model.TypeCodeAsset},
		{ID: 3, Name: "Income", Code: model.TypeCodeIncome},
	}
	accounts := []model.Account{
		{ID: 1, Name: "Cash", Code: "1010", AccountTypeID: 1, IsActive: true},
		{ID: 2, Name: "Sundry Debtors", Code: "1100", AccountTypeID: 1, IsActive: true},
		{ID: 3, Name: "Acme Traders", Code: "1101", AccountTypeID: 1, ParentID: 2, IsActive: true},
		{ID: 4, Name: "Freight Income", Code: "4000", AccountTypeID: 3, IsActive: true},
	}
	return coa.NewService(accounts, types)
}

func TestTrialBalanceBalancedBooks(t *testing.T) {
	chart := trialChart()
	entries := []model.JournalEntry{
		entry(1, day(2026, time.April, 1), "RV-0001", "freight billed",
			debit(1, 500), credit(4, 500)),
		entry(2, day(2026, time.April, 2), "JV-0001", "due from acme",
			debit(3, 200), credit(4, 200)),
	}

	report := TrialBalance(chart, entries, DateRange{})

	// Group account 1100 carries no postings and is omitted.
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "1010", report.Rows[0].AccountCode)
	assert.Equal(t, "1101", report.Rows[1].AccountCode)
	assert.Equal(t, "4000", report.Rows[2].AccountCode)

	assert.True(t, report.TotalDebit.Equal(decimal.NewFromInt(700)))
	assert.True(t, report.TotalCredit.Equal(decimal.NewFromInt(700)))
	assert.True(t, report.Balanced)

	assert.True(t, report.Rows[2].Closing.Equal(decimal.NewFromInt(-700)),
		"income accounts close credit-heavy under debit-positive balances")
}

func TestTrialBalanceDetectsImbalance(t *testing.T) {
	chart := trialChart()
	// A posting to an account missing from the chart leaves the totals
	// lopsided.
	entries := []model.JournalEntry{
		entry(1, day(2026, time.April, 1), "JV-0001", "half lost",
			debit(1, 500), credit(99, 500)),
	}

	report := TrialBalance(chart, entries, DateRange{})
	assert.False(t, report.Balanced)
	assert.True(t, report.TotalDebit.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.TotalCredit.IsZero())
}

func TestTrialBalanceWindow(t *testing.T) {
	chart := trialChart()
	entries := []model.JournalEntry{
		entry(1, day(2026, time.March, 1), "RV-0001", "before",
			debit(1, 100), credit(4, 100)),
		entry(2, day(2026, time.April, 1), "RV-0002", "inside",
			debit(1, 250), credit(4, 250)),
	}

	window := DateRange{Start: day(2026, time.April, 1)}
	report := TrialBalance(chart, entries, window)

	assert.True(t, report.TotalDebit.Equal(decimal.NewFromInt(250)),
		"pre-window activity contributes to closings, not to period totals")
	rowCash := report.Rows[0]
	assert.True(t, rowCash.Closing.Equal(decimal.NewFromInt(350)))
}
