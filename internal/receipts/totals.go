// Package receipts holds the derived arithmetic for freight receipts.
package receipts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Totals are the derived amounts of a receipt.
type Totals struct {
	Cartage        decimal.Decimal
	DeliveryCharge decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals derives cartage, delivery charge and the grand total from a
// receipt's raw numbers:
//
//	cartage         = pkgs * pkg_rate
//	delivery_charge = pkgs * delivery_rate
//	total           = freight + commission + cartage + labour + other
func ComputeTotals(r model.Receipt) Totals {
	pkgs := decimal.NewFromInt(int64(r.Pkgs))
	cartage := pkgs.Mul(r.PkgRate)
	deliveryCharge := pkgs.Mul(r.DeliveryRate)
	total := r.Freight.Add(r.Commission).Add(cartage).Add(r.Labour).Add(r.Other)
	return Totals{Cartage: cartage, DeliveryCharge: deliveryCharge, Total: total}
}

// ApplyTotals writes the derived amounts back onto the receipt.
func ApplyTotals(r *model.Receipt) {
	t := ComputeTotals(*r)
	r.Cartage = t.Cartage
	r.DeliveryCharge = t.DeliveryCharge
	r.Total = t.Total
}

// Validate checks the fields a receipt cannot be saved without.
func Validate(r model.Receipt) error {
	if r.ReceiptNo == "" {
		return fmt.Errorf("receipt_no is required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if r.Pkgs < 0 {
		return fmt.Errorf("pkgs cannot be negative")
	}
	return nil
}
