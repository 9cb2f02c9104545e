package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanType(t *testing.T) {
	lt, err := NewLoanType("dscr")
	require.NoError(t, err)
	assert.Equal(t, "dscr", lt.String())
	assert.True(t, lt.Equal(LoanTypeDSCR))
}

func TestNewLoanType_NormalizesCaseAndWhitespace(t *testing.T) {
	lt, err := NewLoanType("  Fix_Flip ")
	require.NoError(t, err)
	assert.True(t, lt.Equal(LoanTypeFixFlip))
}

func TestNewLoanType_Invalid(t *testing.T) {
	_, err := NewLoanType("jumbo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid loan type")

	_, err = NewLoanType("")
	assert.Error(t, err)
}

func TestNormalizeLoanType(t *testing.T) {
	lt, ok := NormalizeLoanType("COMMERCIAL")
	assert.True(t, ok)
	assert.True(t, lt.Equal(LoanTypeCommercial))

	_, ok = NormalizeLoanType("unknown_program")
	assert.False(t, ok)
}

func TestAllLoanTypes(t *testing.T) {
	all := AllLoanTypes()
	require.Len(t, all, 5)
	for _, lt := range all {
		assert.False(t, lt.IsZero())
	}
}

func TestLoanTypeIsZero(t *testing.T) {
	assert.True(t, LoanType{}.IsZero())
	assert.False(t, LoanTypeBridge.IsZero())
}
