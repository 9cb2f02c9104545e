package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/usecase"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
)

func TestCalculateRatiosUseCase_Execute(t *testing.T) {
	uc := usecase.NewCalculateRatiosUseCase(service.NewRatioCalculator())

	t.Run("computes ltv and reference dscr", func(t *testing.T) {
		resp := uc.Execute(context.Background(), dto.CalculateRatiosRequest{
			LoanAmount:      decimal.NewFromInt(200_000),
			PropertyValue:   decimal.NewFromInt(250_000),
			MonthlyRent:     decimal.NewFromInt(2500),
			MonthlyExpenses: decimal.NewFromInt(600),
		})

		assert.True(t, resp.LTV.Equal(decimal.NewFromInt(80)), "got %s", resp.LTV)
		assert.True(t, resp.ReferenceDSCR.IsPositive())
		assert.Nil(t, resp.QuotedDSCR)
	})

	t.Run("includes quoted dscr when rate and term supplied", func(t *testing.T) {
		resp := uc.Execute(context.Background(), dto.CalculateRatiosRequest{
			LoanAmount:        decimal.NewFromInt(200_000),
			PropertyValue:     decimal.NewFromInt(250_000),
			MonthlyRent:       decimal.NewFromInt(2500),
			MonthlyExpenses:   decimal.NewFromInt(600),
			QuotedRatePercent: decimal.NewFromFloat(7.5),
			QuotedTermYears:   30,
		})

		require.NotNil(t, resp.QuotedDSCR)
		assert.True(t, resp.QuotedDSCR.LessThan(resp.ReferenceDSCR),
			"a rate above the reference should thin out coverage")
	})

	t.Run("degenerate inputs yield zeros, not faults", func(t *testing.T) {
		resp := uc.Execute(context.Background(), dto.CalculateRatiosRequest{})

		assert.True(t, resp.LTV.IsZero())
		assert.True(t, resp.ReferenceDSCR.IsZero())
		assert.Nil(t, resp.QuotedDSCR)
	})
}
