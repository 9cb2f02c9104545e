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

func TestCalculateFeesUseCase_Execute(t *testing.T) {
	uc := usecase.NewCalculateFeesUseCase(service.NewFeeEngine())

	t.Run("commercial schedule", func(t *testing.T) {
		resp := uc.Execute(context.Background(), dto.CalculateFeesRequest{
			LoanAmount: decimal.NewFromInt(500_000),
			LoanType:   "commercial",
		})

		assert.Equal(t, "commercial", resp.LoanType)
		assert.True(t, resp.TotalRequired.Equal(decimal.NewFromInt(10_370)),
			"got %s", resp.TotalRequired)
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(10_494)))

		var origination *dto.FeeLineItemView
		for i := range resp.Items {
			if resp.Items[i].Type == "origination" {
				origination = &resp.Items[i]
			}
		}
		require.NotNil(t, origination)
		assert.True(t, origination.Amount.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("unknown loan type still yields a schedule", func(t *testing.T) {
		resp := uc.Execute(context.Background(), dto.CalculateFeesRequest{
			LoanAmount: decimal.NewFromInt(100_000),
			LoanType:   "mezzanine",
		})

		assert.NotEmpty(t, resp.Items)
		assert.True(t, resp.TotalRequired.IsPositive())
	})
}
