package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// RatioCalculator – standard underwriting ratios (LTV, DSCR)
// ---------------------------------------------------------------------------

// Reference terms used when estimating a DSCR before a program is quoted.
var (
	referenceAnnualRate = 0.065
	referenceTermYears  = 30
)

// RatioCalculator derives loan-to-value and debt-service-coverage ratios
// from loan, property, and income figures. All methods are pure and return
// defined values for degenerate inputs instead of faulting.
type RatioCalculator struct{}

// NewRatioCalculator returns a new calculator instance.
func NewRatioCalculator() *RatioCalculator {
	return &RatioCalculator{}
}

// LTV returns loanAmount / propertyValue as a percentage, or zero when the
// property value is not positive.
func (c *RatioCalculator) LTV(loanAmount, propertyValue decimal.Decimal) decimal.Decimal {
	if propertyValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return loanAmount.Div(propertyValue).Mul(decimal.NewFromInt(100))
}

// ReferenceDSCR estimates the debt-service-coverage ratio against a reference
// monthly payment at a fixed 6.5% annual rate over 30 years. It is an
// estimate for unquoted loans; use QuotedDSCR once a real rate and term are
// known. A negative result is a valid, reportable value.
func (c *RatioCalculator) ReferenceDSCR(monthlyRent, loanAmount, monthlyExpenses decimal.Decimal) decimal.Decimal {
	return c.dscr(monthlyRent, loanAmount, monthlyExpenses,
		referenceAnnualRate, referenceTermYears)
}

// QuotedDSCR computes the debt-service-coverage ratio against the monthly
// payment of the actually quoted program. annualRatePercent is a percentage
// (7.5 = 7.5%).
func (c *RatioCalculator) QuotedDSCR(
	monthlyRent, loanAmount, monthlyExpenses decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termYears int,
) decimal.Decimal {
	if termYears <= 0 {
		return decimal.Zero
	}
	return c.dscr(monthlyRent, loanAmount, monthlyExpenses,
		annualRatePercent.InexactFloat64()/100.0, termYears)
}

func (c *RatioCalculator) dscr(
	monthlyRent, loanAmount, monthlyExpenses decimal.Decimal,
	annualRate float64,
	termYears int,
) decimal.Decimal {
	if loanAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	payment := monthlyPayment(loanAmount, annualRate, termYears)
	if payment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	netIncome := monthlyRent.Sub(monthlyExpenses)
	return netIncome.Div(payment).Round(4)
}

// monthlyPayment is the closed-form level payment for a monthly schedule.
func monthlyPayment(principal decimal.Decimal, annualRate float64, termYears int) decimal.Decimal {
	n := float64(termYears * 12)
	monthlyRate := annualRate / 12.0

	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromFloat(n))
	}

	factor := math.Pow(1+monthlyRate, n)
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}
