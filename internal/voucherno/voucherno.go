// Package voucherno formats and parses voucher numbers like "RV-0042".
// Numbers are assigned sequentially per voucher type by the persistence
// collaborator; this package only renders and reads them.
package voucherno

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Format returns a voucher number like "RV-0042".
func Format(vt model.VoucherType, seq int) string {
	return fmt.Sprintf("%s-%04d", vt, seq)
}

// Parse splits a voucher number into its type prefix and sequence.
func Parse(no string) (model.VoucherType, int, error) {
	prefix, seqPart, ok := strings.Cut(no, "-")
	if !ok {
		return "", 0, fmt.Errorf("invalid voucher number format: %q", no)
	}

	vt := model.VoucherType(prefix)
	switch vt {
	case model.VoucherTypeReceipt, model.VoucherTypePayment, model.VoucherTypeJournal:
	default:
		return "", 0, fmt.Errorf("unknown voucher type in %q", no)
	}

	seq, err := strconv.Atoi(seqPart)
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in voucher number %q: %w", no, err)
	}
	return vt, seq, nil
}

// Seq returns the sequence of a voucher number, or 0 if it does not parse.
// Used as an ordering key where malformed numbers must not fail a report.
func Seq(no string) int {
	_, seq, err := Parse(no)
	if err != nil {
		return 0
	}
	return seq
}
