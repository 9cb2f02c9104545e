package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/pkg/testutil"
)

func simulationBase() map[valueobject.LoanType][]model.LenderRateOffer {
	return map[valueobject.LoanType][]model.LenderRateOffer{
		valueobject.LoanTypeDSCR: {
			{
				LenderID:       "lender-a",
				LenderName:     "Lender A",
				LoanType:       valueobject.LoanTypeDSCR,
				Rate:           decimal.NewFromFloat(0.075),
				Points:         decimal.NewFromFloat(2.0),
				MaxLTV:         decimal.NewFromFloat(0.80),
				MinCreditScore: 640,
				MaxLoanAmount:  decimal.NewFromInt(2_000_000),
				Active:         true,
				UpdatedAt:      testutil.TestSeededAt,
			},
			{
				LenderID:       "lender-b",
				LenderName:     "Lender B",
				LoanType:       valueobject.LoanTypeDSCR,
				Rate:           decimal.NewFromFloat(0.079),
				Points:         decimal.NewFromFloat(2.5),
				MaxLTV:         decimal.NewFromFloat(0.80),
				MinCreditScore: 660,
				MaxLoanAmount:  decimal.NewFromInt(1_500_000),
				Active:         true,
				UpdatedAt:      testutil.TestSeededAt,
			},
		},
	}
}

func TestRateProviderAdapter_SimulatedSheetIsDeterministic(t *testing.T) {
	adapter := NewRateProviderAdapter(DefaultRateProviderConfig("default"), nil, simulationBase())

	first, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeDSCR)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeDSCR)
	require.NoError(t, err)
	require.Len(t, second, 2)

	for i := range first {
		assert.True(t, first[i].Rate.Equal(second[i].Rate),
			"simulated rate for %s should be stable, got %s then %s",
			first[i].LenderName, first[i].Rate, second[i].Rate)
	}
}

func TestRateProviderAdapter_SimulatedDriftIsBounded(t *testing.T) {
	adapter := NewRateProviderAdapter(DefaultRateProviderConfig("default"), nil, simulationBase())

	offers, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeDSCR)
	require.NoError(t, err)

	maxDrift := decimal.NewFromFloat(0.0015)
	for i, offer := range offers {
		baseRate := simulationBase()[valueobject.LoanTypeDSCR][i].Rate
		drift := offer.Rate.Sub(baseRate).Abs()
		assert.True(t, drift.LessThanOrEqual(maxDrift),
			"drift for %s should stay within 15 bps, got %s", offer.LenderName, drift)
		assert.False(t, offer.Rate.IsNegative())
	}
}

func TestRateProviderAdapter_Name(t *testing.T) {
	adapter := NewRateProviderAdapter(DefaultRateProviderConfig("feed-one"), nil, nil)
	assert.Equal(t, "feed-one", adapter.Name())
}

func TestRateProviderAdapter_EmptyBucket(t *testing.T) {
	adapter := NewRateProviderAdapter(DefaultRateProviderConfig("default"), nil, simulationBase())

	offers, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeCommercial)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestRateProviderAdapter_ZeroLoanType(t *testing.T) {
	adapter := NewRateProviderAdapter(DefaultRateProviderConfig("default"), nil, simulationBase())

	_, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanType{})
	assert.Error(t, err)
}

// flakyClient fails a fixed number of times before succeeding.
type flakyClient struct {
	failures int
	calls    int
}

func (c *flakyClient) FetchRateSheet(
	_ context.Context,
	_ valueobject.LoanType,
) ([]model.LenderRateOffer, error) {
	c.calls++
	if c.calls <= c.failures {
		return nil, errors.New("upstream timeout")
	}
	return simulationBase()[valueobject.LoanTypeDSCR], nil
}

func TestRateProviderAdapter_RetriesTransientFailures(t *testing.T) {
	cfg := DefaultRateProviderConfig("default")
	cfg.MaxRetries = 3
	cfg.RetryBackoffMs = 1

	client := &flakyClient{failures: 2}
	adapter := NewRateProviderAdapter(cfg, client, nil)

	offers, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeDSCR)
	require.NoError(t, err)
	assert.Len(t, offers, 2)
	assert.Equal(t, 3, client.calls)
}

func TestRateProviderAdapter_ExhaustsRetries(t *testing.T) {
	cfg := DefaultRateProviderConfig("default")
	cfg.MaxRetries = 2
	cfg.RetryBackoffMs = 1

	client := &flakyClient{failures: 10}
	adapter := NewRateProviderAdapter(cfg, client, nil)

	_, err := adapter.FetchLatestRates(context.Background(), valueobject.LoanTypeDSCR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted 2 retries")
	assert.Equal(t, 3, client.calls)
}

func TestRateProviderAdapter_RetryHonorsContextCancellation(t *testing.T) {
	cfg := DefaultRateProviderConfig("default")
	cfg.MaxRetries = 5
	cfg.RetryBackoffMs = 10_000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &flakyClient{failures: 10}
	adapter := NewRateProviderAdapter(cfg, client, nil)

	_, err := adapter.FetchLatestRates(ctx, valueobject.LoanTypeDSCR)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
