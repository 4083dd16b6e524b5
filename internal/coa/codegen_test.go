package coa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

func TestNextCodeNoSiblingsTopLevel(t *testing.T) {
	code, err := NextCode("4000", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "4000", code, "first top-level account takes the anchor code")
}

func TestNextCodeNoSiblingsChild(t *testing.T) {
	code, err := NextCode("1100", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "1101", code, "first child starts one past the parent")
}

func TestNextCodeMaxPlusOne(t *testing.T) {
	siblings := []model.Account{
		{ID: 1, Name: "A", Code: "101"},
		{ID: 2, Name: "B", Code: "103"},
	}
	code, err := NextCode("100", siblings, false)
	require.NoError(t, err)
	assert.Equal(t, "104", code, "gaps from deleted accounts are never reused")
}

func TestNextCodeUnorderedSiblings(t *testing.T) {
	siblings := []model.Account{
		{ID: 1, Code: "2105"},
		{ID: 2, Code: "2101"},
		{ID: 3, Code: "2103"},
	}
	code, err := NextCode("2100", siblings, false)
	require.NoError(t, err)
	assert.Equal(t, "2106", code)
}

func TestNextCodeNonNumericSibling(t *testing.T) {
	siblings := []model.Account{
		{ID: 1, Name: "Legacy", Code: "A-100"},
	}
	_, err := NextCode("100", siblings, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestNextCodeNonNumericParent(t *testing.T) {
	_, err := NextCode("CASH", nil, false)
	require.Error(t, err)

	_, err = NextCode("CASH", nil, true)
	require.Error(t, err)
}
