package coa

import (
	"fmt"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Category is a user-facing bucket for new accounts. Each category maps to
// a fixed account type and anchor code; invalid categories cannot be
// constructed outside this package.
type Category int

const (
	CategoryParty Category = iota
	CategoryTransport
	CategoryDelivery
	CategoryIncome
	CategoryExpense
)

var categoryNames = map[Category]string{
	CategoryParty:     "party",
	CategoryTransport: "transport",
	CategoryDelivery:  "delivery",
	CategoryIncome:    "income",
	CategoryExpense:   "expense",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory converts a category name to a Category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// route fixes where a category's accounts live in the chart. Income and
// expense accounts are top-level within their type; party, transport and
// delivery accounts hang under a designated parent located by code.
type route struct {
	typeCode   string
	anchorCode string
	topLevel   bool
}

var routes = map[Category]route{
	CategoryParty:     {model.TypeCodeAsset, "1100", false},
	CategoryTransport: {model.TypeCodeLiability, "2100", false},
	CategoryDelivery:  {model.TypeCodeLiability, "2200", false},
	CategoryIncome:    {model.TypeCodeIncome, "4000", true},
	CategoryExpense:   {model.TypeCodeExpense, "5000", true},
}

// NotFoundError reports a category route that cannot be resolved against
// the snapshot: the account type or designated parent account is missing.
// This is a data-integrity problem, not a user input error.
type NotFoundError struct {
	Entity string
	Code   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with code %q not found in snapshot", e.Entity, e.Code)
}

// Placement describes where a new account for a category goes: its type,
// parent (zero-valued for top-level) and generated code.
type Placement struct {
	AccountType model.AccountType
	Parent      model.Account
	TopLevel    bool
	Code        string
}

// PlaceCategory resolves a category against the snapshot and generates the
// next account code for it. Pure over the snapshot; the caller must fetch a
// fresh snapshot immediately before creating the account, as concurrent
// clients can otherwise race to the same code.
func (s *Service) PlaceCategory(c Category) (Placement, error) {
	r, ok := routes[c]
	if !ok {
		return Placement{}, fmt.Errorf("unknown category %q", c)
	}

	accountType, ok := s.TypeByCode(r.typeCode)
	if !ok {
		return Placement{}, NotFoundError{Entity: "account type", Code: r.typeCode}
	}

	if r.topLevel {
		siblings := s.TopLevelByType(accountType.ID)
		code, err := NextCode(r.anchorCode, siblings, true)
		if err != nil {
			return Placement{}, err
		}
		return Placement{AccountType: accountType, TopLevel: true, Code: code}, nil
	}

	parent, ok := s.GetByCode(r.anchorCode)
	if !ok {
		return Placement{}, NotFoundError{Entity: "parent account", Code: r.anchorCode}
	}
	siblings := s.Children(parent.ID)
	code, err := NextCode(parent.Code, siblings, false)
	if err != nil {
		return Placement{}, err
	}
	return Placement{AccountType: accountType, Parent: parent, Code: code}, nil
}
