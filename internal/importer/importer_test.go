package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func testChart() *coa.Service {
	types := []model.AccountType{
		{ID: 1, Name: "Asset", Code: model.TypeCodeAsset},
		{ID: 2, Name: "Liability", Code: model.TypeCodeLiability},
	}
	accounts := []model.Account{
		{ID: 4, Name: "Acme Traders", Code: "1101", AccountTypeID: 1, ParentID: 3, IsActive: true},
		{ID: 6, Name: "Roadways Ltd", Code: "2101", AccountTypeID: 2, ParentID: 5, IsActive: true},
		{ID: 8, Name: "Ram Kumar", Code: "2201", AccountTypeID: 2, ParentID: 7, IsActive: true},
	}
	return coa.NewService(accounts, types)
}

func TestParse(t *testing.T) {
	csvData := Header + "\n" +
		"R-100,2026-01-15,1101,2101,2201,GR-4521,CONT-9,10,250.5,500,50,2.50,20,5,2026-01-18,1.50,fragile\n" +
		"R-101,2026-01-16,1101,2101,,,,,,,100,,,,,,\n"

	receipts, err := Parse(strings.NewReader(csvData), testChart())
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	r := receipts[0]
	assert.Equal(t, "R-100", r.ReceiptNo)
	assert.Equal(t, 4, r.PartyAccountID)
	assert.Equal(t, 6, r.TransportAccountID)
	assert.Equal(t, 8, r.DeliveryPersonID)
	assert.Equal(t, "GR-4521", r.GRNo)
	assert.Equal(t, 10, r.Pkgs)
	assert.Equal(t, "fragile", r.Remark)
	assert.Equal(t, 18, r.DeliveryDate.Day())

	// Derived fields come back filled in.
	assert.True(t, r.Cartage.Equal(decimal.NewFromInt(25)), "10 pkgs at 2.50")
	assert.True(t, r.DeliveryCharge.Equal(decimal.NewFromInt(15)))
	assert.True(t, r.Total.Equal(decimal.NewFromInt(600)))

	sparse := receipts[1]
	assert.Zero(t, sparse.DeliveryPersonID, "delivery person is optional")
	assert.True(t, sparse.DeliveryDate.IsZero())
	assert.True(t, sparse.Freight.IsZero(), "blank numeric fields read as zero")
	assert.True(t, sparse.Total.Equal(decimal.NewFromInt(100)), "commission only")
}

func TestParseHeaderOnly(t *testing.T) {
	receipts, err := Parse(strings.NewReader(Header+"\n"), testChart())
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestParseUnknownAccountCode(t *testing.T) {
	csvData := Header + "\n" +
		"R-100,2026-01-15,9999,2101,,,,1,,,,,,,,,\n"

	_, err := Parse(strings.NewReader(csvData), testChart())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "9999")
}

func TestParseBadDate(t *testing.T) {
	csvData := Header + "\n" +
		"R-100,15/01/2026,1101,2101,,,,1,,,,,,,,,\n"

	_, err := Parse(strings.NewReader(csvData), testChart())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestParseWrongFieldCount(t *testing.T) {
	csvData := Header + "\n" + "R-100,2026-01-15,1101\n"

	_, err := Parse(strings.NewReader(csvData), testChart())
	assert.Error(t, err)
}

func TestParseInvalidReceiptRejected(t *testing.T) {
	// Missing receipt number fails validation.
	csvData := Header + "\n" +
		",2026-01-15,1101,2101,,,,1,,,,,,,,,\n"

	_, err := Parse(strings.NewReader(csvData), testChart())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receipt_no")
}
