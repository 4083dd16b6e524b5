package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"receipt", "payment", "income", "expense", "journal"} {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := ParseKind("transfer")
	assert.Error(t, err)
}

func TestVoucherTypeMapping(t *testing.T) {
	assert.Equal(t, model.VoucherTypeReceipt, KindReceipt.VoucherType())
	assert.Equal(t, model.VoucherTypePayment, KindPayment.VoucherType())

	// Income, expense and journal all post as journal vouchers.
	assert.Equal(t, model.VoucherTypeJournal, KindIncome.VoucherType())
	assert.Equal(t, model.VoucherTypeJournal, KindExpense.VoucherType())
	assert.Equal(t, model.VoucherTypeJournal, KindJournal.VoucherType())
}

func TestCounterTypeCodes(t *testing.T) {
	assert.Equal(t, []string{model.TypeCodeAsset, model.TypeCodeIncome}, KindReceipt.CounterTypeCodes())
	assert.Equal(t, []string{model.TypeCodeLiability, model.TypeCodeExpense}, KindPayment.CounterTypeCodes())
	assert.Equal(t, []string{model.TypeCodeIncome}, KindIncome.CounterTypeCodes())
	assert.Equal(t, []string{model.TypeCodeExpense}, KindExpense.CounterTypeCodes())
	assert.Nil(t, KindJournal.CounterTypeCodes(), "journal vouchers accept any leaf account")
}
