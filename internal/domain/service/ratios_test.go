package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRatioCalculatorLTV(t *testing.T) {
	calc := NewRatioCalculator()

	ltv := calc.LTV(decimal.NewFromInt(200_000), decimal.NewFromInt(250_000))
	assert.True(t, ltv.Equal(decimal.NewFromInt(80)), "expected 80, got %s", ltv)
}

func TestRatioCalculatorLTV_ZeroPropertyValue(t *testing.T) {
	calc := NewRatioCalculator()

	assert.True(t, calc.LTV(decimal.NewFromInt(200_000), decimal.Zero).IsZero())
	assert.True(t, calc.LTV(decimal.NewFromInt(200_000), decimal.NewFromInt(-1)).IsZero())
}

func TestRatioCalculatorReferenceDSCR(t *testing.T) {
	calc := NewRatioCalculator()

	// $200K at the 6.5%/30yr reference terms pays about $1,264.14 a month.
	// (2500 - 600) / 1264.14 is about 1.50.
	dscr := calc.ReferenceDSCR(
		decimal.NewFromInt(2500),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(600),
	)

	assert.True(t, dscr.GreaterThan(decimal.NewFromFloat(1.49)), "got %s", dscr)
	assert.True(t, dscr.LessThan(decimal.NewFromFloat(1.51)), "got %s", dscr)
}

func TestRatioCalculatorReferenceDSCR_NegativeIsReportable(t *testing.T) {
	calc := NewRatioCalculator()

	// Expenses exceed rent: coverage is negative, not an error.
	dscr := calc.ReferenceDSCR(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(3000),
	)

	assert.True(t, dscr.IsNegative(), "expected negative DSCR, got %s", dscr)
}

func TestRatioCalculatorReferenceDSCR_ZeroLoanAmount(t *testing.T) {
	calc := NewRatioCalculator()

	dscr := calc.ReferenceDSCR(decimal.NewFromInt(2500), decimal.Zero, decimal.NewFromInt(600))
	assert.True(t, dscr.IsZero())
}

func TestRatioCalculatorQuotedDSCR(t *testing.T) {
	calc := NewRatioCalculator()

	reference := calc.ReferenceDSCR(
		decimal.NewFromInt(2500),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(600),
	)

	// A quoted rate above the reference rate means a larger payment and
	// therefore thinner coverage.
	quoted := calc.QuotedDSCR(
		decimal.NewFromInt(2500),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(600),
		decimal.NewFromFloat(7.5),
		30,
	)

	assert.True(t, quoted.LessThan(reference),
		"quoted DSCR %s should be below reference %s", quoted, reference)
}

func TestRatioCalculatorQuotedDSCR_InvalidTerm(t *testing.T) {
	calc := NewRatioCalculator()

	dscr := calc.QuotedDSCR(
		decimal.NewFromInt(2500),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(600),
		decimal.NewFromFloat(7.5),
		0,
	)
	assert.True(t, dscr.IsZero())
}
