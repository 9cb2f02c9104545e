package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// LoanType – immutable value object
// ---------------------------------------------------------------------------

// LoanType identifies one of the loan programs the platform prices.
type LoanType struct {
	value string
}

const (
	loanTypeDSCR         = "dscr"
	loanTypeFixFlip      = "fix_flip"
	loanTypeBridge       = "bridge"
	loanTypeConstruction = "construction"
	loanTypeCommercial   = "commercial"
)

var (
	LoanTypeDSCR         = LoanType{value: loanTypeDSCR}
	LoanTypeFixFlip      = LoanType{value: loanTypeFixFlip}
	LoanTypeBridge       = LoanType{value: loanTypeBridge}
	LoanTypeConstruction = LoanType{value: loanTypeConstruction}
	LoanTypeCommercial   = LoanType{value: loanTypeCommercial}
)

var validLoanTypes = map[string]LoanType{
	loanTypeDSCR:         LoanTypeDSCR,
	loanTypeFixFlip:      LoanTypeFixFlip,
	loanTypeBridge:       LoanTypeBridge,
	loanTypeConstruction: LoanTypeConstruction,
	loanTypeCommercial:   LoanTypeCommercial,
}

// NewLoanType creates a LoanType from a raw string.
func NewLoanType(s string) (LoanType, error) {
	v, ok := validLoanTypes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LoanType{}, fmt.Errorf("invalid loan type: %q", s)
	}
	return v, nil
}

// NormalizeLoanType maps a raw string to a known LoanType when possible.
// Unknown values yield ok=false; fee and hold-period lookups use this to
// fall back to their defaults instead of erroring.
func NormalizeLoanType(s string) (LoanType, bool) {
	v, ok := validLoanTypes[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// AllLoanTypes returns every known loan type in a fixed order.
func AllLoanTypes() []LoanType {
	return []LoanType{
		LoanTypeDSCR,
		LoanTypeFixFlip,
		LoanTypeBridge,
		LoanTypeConstruction,
		LoanTypeCommercial,
	}
}

// String returns the string representation of the loan type.
func (t LoanType) String() string { return t.value }

// IsZero returns true if the loan type has not been initialised.
func (t LoanType) IsZero() bool { return t.value == "" }

// Equal returns true when both loan types carry the same value.
func (t LoanType) Equal(other LoanType) bool { return t.value == other.value }
