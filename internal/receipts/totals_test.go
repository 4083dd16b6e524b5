package receipts

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func TestComputeTotals(t *testing.T) {
	r := model.Receipt{
		Pkgs:         10,
		PkgRate:      decimal.RequireFromString("2.50"),
		DeliveryRate: decimal.RequireFromString("1.50"),
		Freight:      decimal.NewFromInt(500),
		Commission:   decimal.NewFromInt(50),
		Labour:       decimal.NewFromInt(20),
		Other:        decimal.NewFromInt(5),
	}

	totals := ComputeTotals(r)
	assert.True(t, totals.Cartage.Equal(decimal.NewFromInt(25)), "10 pkgs at 2.50")
	assert.True(t, totals.DeliveryCharge.Equal(decimal.NewFromInt(15)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(600)), "500+50+25+20+5")
}

func TestComputeTotalsZeroPkgs(t *testing.T) {
	r := model.Receipt{
		PkgRate: decimal.NewFromInt(10),
		Freight: decimal.NewFromInt(100),
	}

	totals := ComputeTotals(r)
	assert.True(t, totals.Cartage.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))
}

func TestApplyTotals(t *testing.T) {
	r := model.Receipt{
		Pkgs:    4,
		PkgRate: decimal.NewFromInt(3),
		Freight: decimal.NewFromInt(88),
	}

	ApplyTotals(&r)
	assert.True(t, r.Cartage.Equal(decimal.NewFromInt(12)))
	assert.True(t, r.Total.Equal(decimal.NewFromInt(100)))
}

func TestValidate(t *testing.T) {
	valid := model.Receipt{
		ReceiptNo: "R-100",
		Date:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Pkgs:      3,
	}
	require.NoError(t, Validate(valid))

	missingNo := valid
	missingNo.ReceiptNo = ""
	assert.Error(t, Validate(missingNo))

	missingDate := valid
	missingDate.Date = time.Time{}
	assert.Error(t, Validate(missingDate))

	negativePkgs := valid
	negativePkgs.Pkgs = -1
	assert.Error(t, Validate(negativePkgs))
}
