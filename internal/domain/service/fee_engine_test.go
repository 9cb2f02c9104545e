package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
)

func TestFeeEngineCalculate_Commercial(t *testing.T) {
	engine := NewFeeEngine()

	schedule := engine.Calculate(decimal.NewFromInt(500_000), "commercial")

	// Commercial origination is 1.0% of principal.
	origination, ok := schedule.Find("origination")
	require.True(t, ok)
	assert.True(t, origination.Amount.Equal(decimal.NewFromInt(5000)),
		"origination should be $5,000, got %s", origination.Amount)
	assert.True(t, origination.Percentage.Equal(decimal.NewFromFloat(1.0)))
	assert.True(t, origination.Required)
	assert.Equal(t, model.FeeCategoryLender, origination.Category)

	appraisal, ok := schedule.Find("appraisal")
	require.True(t, ok)
	assert.True(t, appraisal.Amount.Equal(decimal.NewFromInt(2500)))

	environmental, ok := schedule.Find("environmental_assessment")
	require.True(t, ok)
	assert.True(t, environmental.Amount.Equal(decimal.NewFromInt(1250)))
	assert.True(t, environmental.Required)

	// 5000 + 495 + 750 + 350 + 25 + 2500 + 1250
	assert.True(t, schedule.TotalRequired().Equal(decimal.NewFromInt(10_370)),
		"total required should be $10,370, got %s", schedule.TotalRequired())
}

func TestFeeEngineCalculate_PerTypeRates(t *testing.T) {
	engine := NewFeeEngine()
	loanAmount := decimal.NewFromInt(100_000)

	tests := []struct {
		loanType        string
		wantOrigination decimal.Decimal
		wantAppraisal   decimal.Decimal
	}{
		{"dscr", decimal.NewFromInt(1500), decimal.NewFromInt(650)},
		{"fix_flip", decimal.NewFromInt(2500), decimal.NewFromInt(750)},
		{"bridge", decimal.NewFromInt(2000), decimal.NewFromInt(700)},
		{"commercial", decimal.NewFromInt(1000), decimal.NewFromInt(2500)},
		{"construction", decimal.NewFromInt(2000), decimal.NewFromInt(650)},
	}

	for _, tt := range tests {
		t.Run(tt.loanType, func(t *testing.T) {
			schedule := engine.Calculate(loanAmount, tt.loanType)

			origination, ok := schedule.Find("origination")
			require.True(t, ok)
			assert.True(t, origination.Amount.Equal(tt.wantOrigination),
				"origination for %s should be %s, got %s", tt.loanType, tt.wantOrigination, origination.Amount)

			appraisal, ok := schedule.Find("appraisal")
			require.True(t, ok)
			assert.True(t, appraisal.Amount.Equal(tt.wantAppraisal))
		})
	}
}

func TestFeeEngineCalculate_EnvironmentalOnlyForCommercialAndBridge(t *testing.T) {
	engine := NewFeeEngine()
	loanAmount := decimal.NewFromInt(100_000)

	for _, loanType := range []string{"commercial", "bridge"} {
		schedule := engine.Calculate(loanAmount, loanType)
		_, ok := schedule.Find("environmental_assessment")
		assert.True(t, ok, "%s loans carry an environmental assessment", loanType)
	}

	for _, loanType := range []string{"dscr", "fix_flip", "construction"} {
		schedule := engine.Calculate(loanAmount, loanType)
		_, ok := schedule.Find("environmental_assessment")
		assert.False(t, ok, "%s loans should not carry an environmental assessment", loanType)
	}
}

func TestFeeEngineCalculate_UnknownTypeFallsBack(t *testing.T) {
	engine := NewFeeEngine()

	schedule := engine.Calculate(decimal.NewFromInt(100_000), "mezzanine")

	origination, ok := schedule.Find("origination")
	require.True(t, ok)
	assert.True(t, origination.Amount.Equal(decimal.NewFromInt(2000)),
		"unknown types fall back to the 2.0%% default, got %s", origination.Amount)

	appraisal, ok := schedule.Find("appraisal")
	require.True(t, ok)
	assert.True(t, appraisal.Amount.Equal(decimal.NewFromInt(650)))

	_, ok = schedule.Find("environmental_assessment")
	assert.False(t, ok)
}

func TestFeeEngineCalculate_FixedFees(t *testing.T) {
	schedule := NewFeeEngine().Calculate(decimal.NewFromInt(100_000), "dscr")

	fixed := map[string]int64{
		"processing":           495,
		"underwriting":         750,
		"document_preparation": 350,
		"flood_certification":  25,
	}
	for feeType, amount := range fixed {
		item, ok := schedule.Find(feeType)
		require.True(t, ok, "missing %s", feeType)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(amount)))
		assert.True(t, item.Required)
	}
}

func TestFeeEngineCalculate_OptionalFeesListedButExcludedFromRequired(t *testing.T) {
	schedule := NewFeeEngine().Calculate(decimal.NewFromInt(100_000), "dscr")

	wire, ok := schedule.Find("wire_transfer")
	require.True(t, ok)
	assert.False(t, wire.Required)
	assert.True(t, wire.Amount.Equal(decimal.NewFromInt(35)))

	tax, ok := schedule.Find("tax_monitoring")
	require.True(t, ok)
	assert.False(t, tax.Required)
	assert.True(t, tax.Amount.Equal(decimal.NewFromInt(89)))

	assert.True(t, schedule.Total().Sub(schedule.TotalRequired()).Equal(decimal.NewFromInt(124)))
}
