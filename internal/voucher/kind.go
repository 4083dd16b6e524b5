package voucher

import (
	"fmt"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Kind is the user-facing voucher kind. Kinds are a simplification over the
// stored voucher type: Income and Expense are booked as journal-type
// postings, not distinct ledger codes.
type Kind int

const (
	KindReceipt Kind = iota
	KindPayment
	KindIncome
	KindExpense
	KindJournal
)

var kindNames = map[Kind]string{
	KindReceipt: "receipt",
	KindPayment: "payment",
	KindIncome:  "income",
	KindExpense: "expense",
	KindJournal: "journal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown voucher kind %q", name)
}

// VoucherType maps a kind to its stored voucher type code.
func (k Kind) VoucherType() model.VoucherType {
	switch k {
	case KindReceipt:
		return model.VoucherTypeReceipt
	case KindPayment:
		return model.VoucherTypePayment
	default:
		return model.VoucherTypeJournal
	}
}

// CounterTypeCodes returns the account type codes eligible as the
// counterparty side for this kind. Empty means every active leaf account
// qualifies (journal kind).
func (k Kind) CounterTypeCodes() []string {
	switch k {
	case KindReceipt:
		return []string{model.TypeCodeAsset, model.TypeCodeIncome}
	case KindPayment:
		return []string{model.TypeCodeLiability, model.TypeCodeExpense}
	case KindIncome:
		return []string{model.TypeCodeIncome}
	case KindExpense:
		return []string{model.TypeCodeExpense}
	default:
		return nil
	}
}
