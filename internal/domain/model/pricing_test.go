package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

func validRequest() PricingRequest {
	return PricingRequest{
		LoanType:      valueobject.LoanTypeDSCR,
		LoanAmount:    decimal.NewFromInt(200_000),
		PropertyValue: decimal.NewFromInt(275_000),
		CreditScore:   680,
		DSCRRatio:     decimal.NewFromFloat(1.25),
	}
}

func TestPricingRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestPricingRequestValidate_Faults(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PricingRequest)
		wantErr string
	}{
		{
			name:    "missing loan type",
			mutate:  func(r *PricingRequest) { r.LoanType = valueobject.LoanType{} },
			wantErr: "loan type is required",
		},
		{
			name:    "zero loan amount",
			mutate:  func(r *PricingRequest) { r.LoanAmount = decimal.Zero },
			wantErr: "loan amount must be positive",
		},
		{
			name:    "credit score below floor",
			mutate:  func(r *PricingRequest) { r.CreditScore = 299 },
			wantErr: "outside valid range",
		},
		{
			name:    "credit score above ceiling",
			mutate:  func(r *PricingRequest) { r.CreditScore = 851 },
			wantErr: "outside valid range",
		},
		{
			name:    "negative dscr",
			mutate:  func(r *PricingRequest) { r.DSCRRatio = decimal.NewFromFloat(-0.5) },
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPricingRequestValidate_LowCreditIsNotAFault(t *testing.T) {
	req := validRequest()
	req.CreditScore = 300
	assert.NoError(t, req.Validate())
}

func TestPricingResultHasRecommendation(t *testing.T) {
	result := PricingResult{}
	assert.False(t, result.HasRecommendation())

	result.Recommended = &RankedOffer{}
	assert.True(t, result.HasRecommendation())
}

func TestDefaultMarketConditions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	market := DefaultMarketConditions(now)

	assert.Equal(t, "stable", market.Trend)
	assert.Equal(t, "low", market.Volatility)
	assert.Equal(t, now, market.CapturedAt)
}
