package coa

import (
	"fmt"
	"strconv"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// NextCode derives the code for a new account placed among siblings.
//
// With no siblings, a top-level account reuses the category's anchor code
// and a child account starts one past its parent's code. Otherwise codes
// are allocated densely ascending: max(sibling codes) + 1. Deleted codes
// are never reused.
func NextCode(parentCode string, siblings []model.Account, topLevel bool) (string, error) {
	if len(siblings) == 0 {
		if topLevel {
			if _, err := strconv.Atoi(parentCode); err != nil {
				return "", fmt.Errorf("non-numeric anchor code %q", parentCode)
			}
			return parentCode, nil
		}
		n, err := strconv.Atoi(parentCode)
		if err != nil {
			return "", fmt.Errorf("non-numeric parent code %q", parentCode)
		}
		return strconv.Itoa(n + 1), nil
	}

	maxCode := 0
	for _, sib := range siblings {
		n, err := strconv.Atoi(sib.Code)
		if err != nil {
			return "", fmt.Errorf("sibling %q has non-numeric code %q", sib.Name, sib.Code)
		}
		if n > maxCode {
			maxCode = n
		}
	}
	return strconv.Itoa(maxCode + 1), nil
}
