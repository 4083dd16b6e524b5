package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a freight transaction booked against transport, party and
// delivery accounts. Cartage, DeliveryCharge and Total are derived fields
// (see the receipts package) but travel with the record.
type Receipt struct {
	ID                 int
	ReceiptNo          string
	Date               time.Time
	TransportAccountID int
	PartyAccountID     int
	DeliveryPersonID   int
	GRNo               string
	Container          string
	Pkgs               int
	Weight             decimal.Decimal
	Freight            decimal.Decimal
	Commission         decimal.Decimal
	PkgRate            decimal.Decimal
	Cartage            decimal.Decimal
	Labour             decimal.Decimal
	Other              decimal.Decimal
	Remark             string
	DeliveryDate       time.Time
	DeliveryRate       decimal.Decimal
	DeliveryCharge     decimal.Decimal
	PaymentType        string
	Total              decimal.Decimal
}
