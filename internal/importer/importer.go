// Package importer reads freight receipts from CSV exports so a month of
// paper receipts can be posted in one command.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/coa"
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
	"github.com/brokerbooks-dev/brokerbooks/internal/receipts"
)

// Header is the expected CSV header for receipt imports.
const Header = "receipt_no,date,party_code,transport_code,delivery_code,gr_no,container,pkgs,weight,freight,comm,pkg_rate,labour,other,delivery_date,delivery_rate,remark"

const (
	numFields        = 17
	dateFormat       = "2006-01-02"
	colReceiptNo     = 0
	colDate          = 1
	colPartyCode     = 2
	colTransportCode = 3
	colDeliveryCode  = 4
	colGRNo          = 5
	colContainer     = 6
	colPkgs          = 7
	colWeight        = 8
	colFreight       = 9
	colComm          = 10
	colPkgRate       = 11
	colLabour        = 12
	colOther         = 13
	colDeliveryDate  = 14
	colDeliveryRate  = 15
	colRemark        = 16
)

// Parse reads a receipts CSV, resolves account codes against the chart
// snapshot, applies derived totals, and validates each receipt. Party and
// transport codes must resolve; the delivery code may be blank.
func Parse(r io.Reader, chart *coa.Service) ([]model.Receipt, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading receipts CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var result []model.Receipt
	for i, rec := range records[1:] {
		receipt, err := parseRow(rec, chart)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		result = append(result, receipt)
	}
	return result, nil
}

func parseRow(rec []string, chart *coa.Service) (model.Receipt, error) {
	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return model.Receipt{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	party, ok := chart.GetByCode(rec[colPartyCode])
	if !ok {
		return model.Receipt{}, fmt.Errorf("unknown party account code %q", rec[colPartyCode])
	}
	transport, ok := chart.GetByCode(rec[colTransportCode])
	if !ok {
		return model.Receipt{}, fmt.Errorf("unknown transport account code %q", rec[colTransportCode])
	}

	receipt := model.Receipt{
		ReceiptNo:          rec[colReceiptNo],
		Date:               date,
		PartyAccountID:     party.ID,
		TransportAccountID: transport.ID,
		GRNo:               rec[colGRNo],
		Container:          rec[colContainer],
		Remark:             rec[colRemark],
	}

	if rec[colDeliveryCode] != "" {
		delivery, ok := chart.GetByCode(rec[colDeliveryCode])
		if !ok {
			return model.Receipt{}, fmt.Errorf("unknown delivery account code %q", rec[colDeliveryCode])
		}
		receipt.DeliveryPersonID = delivery.ID
	}

	if receipt.Pkgs, err = parseInt(rec[colPkgs]); err != nil {
		return model.Receipt{}, fmt.Errorf("parsing pkgs %q: %w", rec[colPkgs], err)
	}

	decimals := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"weight", rec[colWeight], &receipt.Weight},
		{"freight", rec[colFreight], &receipt.Freight},
		{"comm", rec[colComm], &receipt.Commission},
		{"pkg_rate", rec[colPkgRate], &receipt.PkgRate},
		{"labour", rec[colLabour], &receipt.Labour},
		{"other", rec[colOther], &receipt.Other},
		{"delivery_rate", rec[colDeliveryRate], &receipt.DeliveryRate},
	}
	for _, d := range decimals {
		if *d.dst, err = parseDecimal(d.value); err != nil {
			return model.Receipt{}, fmt.Errorf("parsing %s %q: %w", d.name, d.value, err)
		}
	}

	if rec[colDeliveryDate] != "" {
		dd, err := time.Parse(dateFormat, rec[colDeliveryDate])
		if err != nil {
			return model.Receipt{}, fmt.Errorf("parsing delivery date %q: %w", rec[colDeliveryDate], err)
		}
		receipt.DeliveryDate = dd
	}

	receipts.ApplyTotals(&receipt)
	if err := receipts.Validate(receipt); err != nil {
		return model.Receipt{}, err
	}
	return receipt, nil
}

// parseDecimal treats a blank field as zero, matching how blank numeric
// inputs are entered on paper receipts.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
