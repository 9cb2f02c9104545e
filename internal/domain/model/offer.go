package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LenderRateOffer – immutable rate-sheet record
// ---------------------------------------------------------------------------

// LenderRateOffer is one lender program from the rate catalog. Offers are
// value records: the catalog replaces whole snapshots on refresh and never
// mutates an offer in place.
type LenderRateOffer struct {
	LenderID    string
	LenderName  string
	ProgramName string
	LoanType    valueobject.LoanType

	// Rate is the annual interest rate as a decimal fraction (0.075 = 7.5%).
	Rate decimal.Decimal
	// Points is the upfront charge as a percent of principal (2.0 = 2 points).
	Points decimal.Decimal
	// Fees is the lender's flat fee total in dollars.
	Fees decimal.Decimal

	// MaxLTV is a decimal fraction in (0, 1].
	MaxLTV decimal.Decimal
	// MinDSCR is optional; a zero value means the program has no DSCR floor.
	MinDSCR        decimal.Decimal
	MinCreditScore int
	MinLoanAmount  decimal.Decimal
	MaxLoanAmount  decimal.Decimal

	TermDescription   string
	PrepaymentPenalty bool
	Active            bool
	UpdatedAt         time.Time

	Conditions valueobject.ConditionSet
}

// Validate checks the structural invariants of an offer.
func (o LenderRateOffer) Validate() error {
	if o.LenderName == "" {
		return errors.New("lender name is required")
	}
	if o.LoanType.IsZero() {
		return fmt.Errorf("offer %s: loan type is required", o.LenderName)
	}
	if o.Rate.IsNegative() {
		return fmt.Errorf("offer %s: rate must not be negative", o.LenderName)
	}
	if o.MaxLTV.LessThanOrEqual(decimal.Zero) || o.MaxLTV.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("offer %s: max LTV must be in (0, 1], got %s", o.LenderName, o.MaxLTV)
	}
	if o.MinLoanAmount.GreaterThan(o.MaxLoanAmount) {
		return fmt.Errorf("offer %s: min loan amount %s exceeds max %s",
			o.LenderName, o.MinLoanAmount, o.MaxLoanAmount)
	}
	return nil
}

// HasMinDSCR reports whether the program carries a DSCR floor.
func (o LenderRateOffer) HasMinDSCR() bool {
	return !o.MinDSCR.IsZero()
}
