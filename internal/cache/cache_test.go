package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache", "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSnapshot() Snapshot {
	return Snapshot{
		AccountTypes: []model.AccountType{
			{ID: 1, Name: "Asset", Code: model.TypeCodeAsset},
			{ID: 3, Name: "Income", Code: model.TypeCodeIncome},
		},
		Accounts: []model.Account{
			{ID: 1, Name: "Cash", Code: "1010", AccountTypeID: 1, OpeningBalance: decimal.RequireFromString("150.25"), IsActive: true},
			{ID: 2, Name: "Acme Traders", Code: "1101", AccountTypeID: 1, ParentID: 3, OpeningBalance: decimal.Zero, IsActive: true},
		},
		Entries: []model.JournalEntry{
			{
				ID:          7,
				Date:        time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
				VoucherNo:   "RV-0001",
				VoucherType: model.VoucherTypeReceipt,
				Narration:   "Receipt from Acme",
				Lines: []model.JournalLine{
					{ID: 11, AccountID: 1, Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
					{ID: 12, AccountID: 2, Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
				},
			},
		},
		SyncedAt: time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(testSnapshot()))

	loaded, err := store.Load()
	require.NoError(t, err)

	require.Len(t, loaded.AccountTypes, 2)
	require.Len(t, loaded.Accounts, 2)
	require.Len(t, loaded.Entries, 1)

	cash := loaded.Accounts[0]
	assert.Equal(t, "Cash", cash.Name)
	assert.True(t, cash.OpeningBalance.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, 3, loaded.Accounts[1].ParentID)

	e := loaded.Entries[0]
	assert.Equal(t, "RV-0001", e.VoucherNo)
	assert.Equal(t, model.VoucherTypeReceipt, e.VoucherType)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), e.Date)
	require.Len(t, e.Lines, 2)
	assert.Equal(t, 1, e.Lines[0].AccountID, "line order survives the round trip")
	assert.True(t, e.Balanced())

	assert.Equal(t, testSnapshot().SyncedAt, loaded.SyncedAt)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(testSnapshot()))

	smaller := Snapshot{
		AccountTypes: []model.AccountType{{ID: 1, Name: "Asset", Code: model.TypeCodeAsset}},
		Accounts: []model.Account{
			{ID: 1, Name: "Cash", Code: "1010", AccountTypeID: 1, OpeningBalance: decimal.Zero, IsActive: true},
		},
	}
	require.NoError(t, store.Save(smaller))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Accounts, 1)
	assert.Empty(t, loaded.Entries)
	assert.False(t, loaded.SyncedAt.IsZero(), "save stamps a sync time when none given")
}

func TestLoadEmptyStore(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Accounts)
	assert.Empty(t, loaded.Entries)
	assert.True(t, loaded.SyncedAt.IsZero())
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(testSnapshot()))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Entries, 1)
}
