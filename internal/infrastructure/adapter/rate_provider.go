package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Rate Provider Adapter – structured for real integration
// ---------------------------------------------------------------------------

// RateProviderConfig holds configuration for a rate-sheet provider adapter.
type RateProviderConfig struct {
	// Name identifies the provider in SyncFromProvider calls.
	Name string
	// BaseURL is the base URL for the provider's rate-sheet API.
	BaseURL string
	// APIKey is the authentication credential for the provider API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
	// MaxRetries is the maximum number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff duration in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultRateProviderConfig returns sensible defaults for development.
func DefaultRateProviderConfig(name string) RateProviderConfig {
	return RateProviderConfig{
		Name:           name,
		BaseURL:        "https://api.ratesheets.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// RateFeedClient defines the interface for fetching rate sheets from a
// provider API. This enables testing with mock implementations.
type RateFeedClient interface {
	// FetchRateSheet retrieves the current offers for one loan-type bucket.
	FetchRateSheet(ctx context.Context, loanType valueobject.LoanType) ([]model.LenderRateOffer, error)
}

// RateProviderAdapter is a structured adapter for external rate providers.
// It implements port.RateProvider and is designed to be swapped with a real
// HTTP-based implementation when integrating with a live rate feed. With a
// nil client it serves simulated rate sheets derived deterministically from
// a base snapshot, suitable for development and testing.
type RateProviderAdapter struct {
	config RateProviderConfig
	client RateFeedClient // nil = use simulated responses
	base   map[valueobject.LoanType][]model.LenderRateOffer
}

// NewRateProviderAdapter creates a new adapter. base is the offer snapshot
// simulated responses drift from; it is ignored when a real client is set.
func NewRateProviderAdapter(
	config RateProviderConfig,
	client RateFeedClient,
	base map[valueobject.LoanType][]model.LenderRateOffer,
) *RateProviderAdapter {
	return &RateProviderAdapter{
		config: config,
		client: client,
		base:   base,
	}
}

// Name implements port.RateProvider.
func (a *RateProviderAdapter) Name() string { return a.config.Name }

// FetchLatestRates retrieves the current rate sheet for one loan type.
// It implements port.RateProvider.
func (a *RateProviderAdapter) FetchLatestRates(
	ctx context.Context,
	loanType valueobject.LoanType,
) ([]model.LenderRateOffer, error) {
	if loanType.IsZero() {
		return nil, fmt.Errorf("loan type is required")
	}

	if a.client != nil {
		offers, err := a.fetchWithRetry(ctx, loanType)
		if err != nil {
			return nil, fmt.Errorf("rate provider %s: %w", a.config.Name, err)
		}
		return offers, nil
	}

	return a.simulateRateSheet(loanType), nil
}

// fetchWithRetry calls the provider API with exponential backoff retry logic.
func (a *RateProviderAdapter) fetchWithRetry(
	ctx context.Context,
	loanType valueobject.LoanType,
) ([]model.LenderRateOffer, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		offers, err := a.client.FetchRateSheet(ctx, loanType)
		if err == nil {
			return offers, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

// simulateRateSheet returns the base bucket with a small deterministic rate
// drift per lender, making sync results reproducible for testing.
func (a *RateProviderAdapter) simulateRateSheet(loanType valueobject.LoanType) []model.LenderRateOffer {
	base := a.base[loanType]
	if len(base) == 0 {
		return nil
	}

	now := time.Now().UTC()
	offers := make([]model.LenderRateOffer, 0, len(base))
	for _, offer := range base {
		h := sha256.Sum256([]byte(a.config.Name + "|" + offer.LenderID + "|" + loanType.String()))
		// Drift in [-15, +15] basis points.
		driftBps := int(binary.BigEndian.Uint32(h[:4])%31) - 15
		drift := decimal.New(int64(driftBps), -4)

		adjusted := offer
		adjusted.Rate = offer.Rate.Add(drift)
		if adjusted.Rate.IsNegative() {
			adjusted.Rate = offer.Rate
		}
		adjusted.UpdatedAt = now
		offers = append(offers, adjusted)
	}
	return offers
}
