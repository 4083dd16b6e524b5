package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Wire types mirror the backend's JSON. Dates travel as "YYYY-MM-DD"
// strings; decimals as strings.

const dateFormat = "2006-01-02"

type accountPayload struct {
	ID             int             `json:"id,omitempty"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	AccountType    int             `json:"account_type"`
	Parent         *int            `json:"parent"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	IsActive       bool            `json:"is_active"`
}

func toAccountPayload(a model.Account) accountPayload {
	p := accountPayload{
		ID:             a.ID,
		Name:           a.Name,
		Code:           a.Code,
		AccountType:    a.AccountTypeID,
		OpeningBalance: a.OpeningBalance,
		IsActive:       a.IsActive,
	}
	if a.ParentID != 0 {
		parent := a.ParentID
		p.Parent = &parent
	}
	return p
}

func (p accountPayload) toModel() model.Account {
	a := model.Account{
		ID:             p.ID,
		Name:           p.Name,
		Code:           p.Code,
		AccountTypeID:  p.AccountType,
		OpeningBalance: p.OpeningBalance,
		IsActive:       p.IsActive,
	}
	if p.Parent != nil {
		a.ParentID = *p.Parent
	}
	return a
}

type accountTypePayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (p accountTypePayload) toModel() model.AccountType {
	return model.AccountType(p)
}

type journalLinePayload struct {
	ID      int             `json:"id,omitempty"`
	Account int             `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

type journalEntryPayload struct {
	ID          int                  `json:"id,omitempty"`
	Date        string               `json:"date"`
	VoucherNo   string               `json:"voucher_no,omitempty"`
	VoucherType string               `json:"voucher_type"`
	Narration   string               `json:"narration"`
	Lines       []journalLinePayload `json:"lines"`
}

func toJournalEntryPayload(e model.JournalEntry) journalEntryPayload {
	p := journalEntryPayload{
		ID:          e.ID,
		Date:        e.Date.Format(dateFormat),
		VoucherNo:   e.VoucherNo,
		VoucherType: string(e.VoucherType),
		Narration:   e.Narration,
	}
	for _, l := range e.Lines {
		p.Lines = append(p.Lines, journalLinePayload{
			ID:      l.ID,
			Account: l.AccountID,
			Debit:   l.Debit,
			Credit:  l.Credit,
		})
	}
	return p
}

func (p journalEntryPayload) toModel() (model.JournalEntry, error) {
	date, err := time.Parse(dateFormat, p.Date)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing entry date %q: %w", p.Date, err)
	}
	e := model.JournalEntry{
		ID:          p.ID,
		Date:        date,
		VoucherNo:   p.VoucherNo,
		VoucherType: model.VoucherType(p.VoucherType),
		Narration:   p.Narration,
	}
	for _, l := range p.Lines {
		e.Lines = append(e.Lines, model.JournalLine{
			ID:        l.ID,
			AccountID: l.Account,
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}
	return e, nil
}

type receiptPayload struct {
	ID               int             `json:"id,omitempty"`
	ReceiptNo        string          `json:"receipt_no"`
	Date             string          `json:"date"`
	TransportAccount int             `json:"transport_account"`
	PartyAccount     int             `json:"party_account"`
	DeliveryPerson   *int            `json:"delivery_person"`
	GRNo             string          `json:"gr_no"`
	Container        string          `json:"container"`
	Pkgs             int             `json:"pkgs"`
	Weight           decimal.Decimal `json:"weight"`
	Freight          decimal.Decimal `json:"freight"`
	Comm             decimal.Decimal `json:"comm"`
	PkgRate          decimal.Decimal `json:"pkg_rate"`
	Cartage          decimal.Decimal `json:"cartage"`
	Labour           decimal.Decimal `json:"labour"`
	Other            decimal.Decimal `json:"other"`
	Remark           string          `json:"remark"`
	DeliveryDate     string          `json:"delivery_date,omitempty"`
	DeliveryRate     decimal.Decimal `json:"delivery_rate"`
	DeliveryCharge   decimal.Decimal `json:"delivery_charge"`
	PaymentType      string          `json:"payment_type"`
	Total            decimal.Decimal `json:"total"`
}

func toReceiptPayload(r model.Receipt) receiptPayload {
	p := receiptPayload{
		ID:               r.ID,
		ReceiptNo:        r.ReceiptNo,
		Date:             r.Date.Format(dateFormat),
		TransportAccount: r.TransportAccountID,
		PartyAccount:     r.PartyAccountID,
		GRNo:             r.GRNo,
		Container:        r.Container,
		Pkgs:             r.Pkgs,
		Weight:           r.Weight,
		Freight:          r.Freight,
		Comm:             r.Commission,
		PkgRate:          r.PkgRate,
		Cartage:          r.Cartage,
		Labour:           r.Labour,
		Other:            r.Other,
		Remark:           r.Remark,
		DeliveryRate:     r.DeliveryRate,
		DeliveryCharge:   r.DeliveryCharge,
		PaymentType:      r.PaymentType,
		Total:            r.Total,
	}
	if r.DeliveryPersonID != 0 {
		id := r.DeliveryPersonID
		p.DeliveryPerson = &id
	}
	if !r.DeliveryDate.IsZero() {
		p.DeliveryDate = r.DeliveryDate.Format(dateFormat)
	}
	return p
}

func (p receiptPayload) toModel() (model.Receipt, error) {
	date, err := time.Parse(dateFormat, p.Date)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("parsing receipt date %q: %w", p.Date, err)
	}
	r := model.Receipt{
		ID:                 p.ID,
		ReceiptNo:          p.ReceiptNo,
		Date:               date,
		TransportAccountID: p.TransportAccount,
		PartyAccountID:     p.PartyAccount,
		GRNo:               p.GRNo,
		Container:          p.Container,
		Pkgs:               p.Pkgs,
		Weight:             p.Weight,
		Freight:            p.Freight,
		Commission:         p.Comm,
		PkgRate:            p.PkgRate,
		Cartage:            p.Cartage,
		Labour:             p.Labour,
		Other:              p.Other,
		Remark:             p.Remark,
		DeliveryRate:       p.DeliveryRate,
		DeliveryCharge:     p.DeliveryCharge,
		PaymentType:        p.PaymentType,
		Total:              p.Total,
	}
	if p.DeliveryPerson != nil {
		r.DeliveryPersonID = *p.DeliveryPerson
	}
	if p.DeliveryDate != "" {
		dd, err := time.Parse(dateFormat, p.DeliveryDate)
		if err != nil {
			return model.Receipt{}, fmt.Errorf("parsing delivery date %q: %w", p.DeliveryDate, err)
		}
		r.DeliveryDate = dd
	}
	return r, nil
}
