package voucher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinesReceipt(t *testing.T) {
	lines, err := BuildLines(BuildParams{
		Kind:           KindReceipt,
		Amount:         decimal.NewFromInt(500),
		Narration:      "Receipt from Acme Traders on 15 Jan 2026",
		CashAccount:    1,
		CounterAccount: 7,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1, lines[0].AccountID, "cash account is debited")
	assert.True(t, lines[0].Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, lines[0].Credit.IsZero())

	assert.Equal(t, 7, lines[1].AccountID, "counterparty is credited")
	assert.True(t, lines[1].Credit.Equal(decimal.NewFromInt(500)))
	assert.True(t, lines[1].Debit.IsZero())
}

func TestBuildLinesPaymentReverses(t *testing.T) {
	lines, err := BuildLines(BuildParams{
		Kind:           KindPayment,
		Amount:         decimal.NewFromInt(250),
		Narration:      "Payment to Roadways Ltd",
		CashAccount:    1,
		CounterAccount: 6,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 6, lines[0].AccountID, "counterparty is debited")
	assert.Equal(t, 1, lines[1].AccountID, "cash account is credited")
}

func TestBuildLinesJournal(t *testing.T) {
	lines, err := BuildLines(BuildParams{
		Kind:          KindJournal,
		Amount:        decimal.RequireFromString("99.50"),
		Narration:     "Adjustment",
		DebitAccount:  4,
		CreditAccount: 8,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].AccountID)
	assert.Equal(t, 8, lines[1].AccountID)
}

func TestBuildLinesAlwaysBalanced(t *testing.T) {
	for _, kind := range []Kind{KindReceipt, KindPayment, KindIncome, KindExpense} {
		lines, err := BuildLines(BuildParams{
			Kind:           kind,
			Amount:         decimal.RequireFromString("123.45"),
			Narration:      "x",
			CashAccount:    1,
			CounterAccount: 2,
		})
		require.NoError(t, err, kind.String())
		assert.True(t, lines[0].Debit.Sub(lines[0].Credit).
			Add(lines[1].Debit).Sub(lines[1].Credit).IsZero(), kind.String())
	}
}

func TestBuildLinesValidation(t *testing.T) {
	base := BuildParams{
		Kind:           KindReceipt,
		Amount:         decimal.NewFromInt(100),
		Narration:      "ok",
		CashAccount:    1,
		CounterAccount: 2,
	}

	tests := []struct {
		name   string
		mutate func(*BuildParams)
		field  string
	}{
		{"zero amount", func(p *BuildParams) { p.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(p *BuildParams) { p.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"too many decimals", func(p *BuildParams) { p.Amount = decimal.RequireFromString("1.999") }, "amount"},
		{"missing narration", func(p *BuildParams) { p.Narration = "" }, "narration"},
		{"missing cash", func(p *BuildParams) { p.CashAccount = 0 }, "cash_account"},
		{"missing counter", func(p *BuildParams) { p.CounterAccount = 0 }, "counter_account"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			lines, err := BuildLines(p)
			assert.Nil(t, lines)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBuildLinesJournalValidation(t *testing.T) {
	// Missing credit account.
	_, err := BuildLines(BuildParams{
		Kind:         KindJournal,
		Amount:       decimal.NewFromInt(100),
		Narration:    "adj",
		DebitAccount: 4,
	})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "credit_account", verr.Field)

	// Same account on both sides.
	_, err = BuildLines(BuildParams{
		Kind:          KindJournal,
		Amount:        decimal.NewFromInt(100),
		Narration:     "adj",
		DebitAccount:  4,
		CreditAccount: 4,
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "credit_account", verr.Field)
}
