package model

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// AmortizationResult is a full level-payment schedule with its totals.
type AmortizationResult struct {
	// Payment is the fixed per-period payment.
	Payment  decimal.Decimal
	Schedule []AmortizationEntry
	// TotalPaid is Payment * n; TotalInterest is TotalPaid - principal.
	TotalPaid     decimal.Decimal
	TotalInterest decimal.Decimal
	// EffectiveRate is the average annual interest cost as a percentage:
	// totalInterest / principal / termYears * 100.
	EffectiveRate decimal.Decimal
	PayoffDate    time.Time
}

var (
	ErrNonPositivePrincipal = errors.New("principal must be positive")
	ErrNonPositiveTerm      = errors.New("term years must be positive")
	ErrNegativeRate         = errors.New("annual rate must not be negative")
	ErrInvalidFrequency     = errors.New("unsupported payment frequency")
)

// BuildAmortizationSchedule computes a standard fixed-payment amortization
// schedule.
//
// Parameters:
//   - principal:         the loan amount
//   - annualRatePercent: annual interest rate as a percentage (7.5 = 7.5%)
//   - termYears:         loan term in years
//   - frequency:         payment frequency (monthly, quarterly, annually)
//   - startDate:         the date from which the first payment is due (one
//     period later)
//
// The calculation uses:
//
//	periodicRate = annualRatePercent / 100 / periodsPerYear
//	payment      = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate short-circuits to payment = P / n: the general formula is
// undefined at r = 0.
func BuildAmortizationSchedule(
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termYears int,
	frequency valueobject.PaymentFrequency,
	startDate time.Time,
) (AmortizationResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return AmortizationResult{}, ErrNonPositivePrincipal
	}
	if termYears <= 0 {
		return AmortizationResult{}, ErrNonPositiveTerm
	}
	if annualRatePercent.IsNegative() {
		return AmortizationResult{}, ErrNegativeRate
	}
	if frequency.IsZero() {
		return AmortizationResult{}, ErrInvalidFrequency
	}

	periodsPerYear := frequency.PeriodsPerYear()
	n := termYears * periodsPerYear

	// float64 only for the power calculation; monetary arithmetic stays in
	// decimal.
	periodicRate := annualRatePercent.InexactFloat64() / 100.0 / float64(periodsPerYear)

	var payment decimal.Decimal
	if periodicRate == 0 {
		// Zero-interest: even split, no rounding so each period is exact.
		payment = principal.Div(decimal.NewFromInt(int64(n)))
	} else {
		// P * r * (1+r)^n / ((1+r)^n - 1)
		factor := math.Pow(1+periodicRate, float64(n))
		paymentFloat := principal.InexactFloat64() * periodicRate * factor / (factor - 1)
		payment = decimal.NewFromFloat(paymentFloat).Round(2)
	}

	schedule := make([]AmortizationEntry, 0, n)
	remaining := principal
	periodicRateDec := decimal.NewFromFloat(periodicRate)

	for period := 1; period <= n; period++ {
		dueDate := frequency.Advance(startDate, period)

		interest := remaining.Mul(periodicRateDec).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		// Last period: absorb rounding drift so the balance reaches zero.
		if period == n {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principalPart,
			Interest:         interest,
			Total:            total,
			RemainingBalance: remaining,
		})
	}

	totalPaid := payment.Mul(decimal.NewFromInt(int64(n)))
	totalInterest := totalPaid.Sub(principal)

	effectiveRate := totalInterest.
		Div(principal).
		Div(decimal.NewFromInt(int64(termYears))).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return AmortizationResult{
		Payment:       payment,
		Schedule:      schedule,
		TotalPaid:     totalPaid,
		TotalInterest: totalInterest,
		EffectiveRate: effectiveRate,
		PayoffDate:    schedule[len(schedule)-1].DueDate,
	}, nil
}
