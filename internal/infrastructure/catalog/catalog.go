package catalog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/port"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// snapshot maps each loan-type bucket to its offers. Snapshots are built
// once and never mutated; refresh swaps in a whole new snapshot.
type snapshot map[valueobject.LoanType][]model.LenderRateOffer

// Catalog is the in-memory collection of lender rate offers. Reads go
// through an atomic pointer so concurrent pricing requests never observe a
// partially-updated catalog; the only mutation is a full snapshot swap.
type Catalog struct {
	current atomic.Pointer[snapshot]

	mu        sync.Mutex // serializes refreshes, not reads
	providers map[string]port.RateProvider

	logger *slog.Logger
}

// New creates a catalog populated from the given seed snapshot.
func New(seed map[valueobject.LoanType][]model.LenderRateOffer, logger *slog.Logger) *Catalog {
	c := &Catalog{
		providers: make(map[string]port.RateProvider),
		logger:    logger,
	}
	snap := make(snapshot, len(seed))
	for lt, offers := range seed {
		snap[lt] = append([]model.LenderRateOffer(nil), offers...)
	}
	c.current.Store(&snap)
	return c
}

// RegisterProvider makes a rate provider available for SyncFromProvider.
func (c *Catalog) RegisterProvider(p port.RateProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers[p.Name()] = p
}

// Offers returns the active snapshot's offers for one loan type. The
// returned slice is a copy; callers may not reach the live snapshot.
func (c *Catalog) Offers(loanType valueobject.LoanType) []model.LenderRateOffer {
	snap := *c.current.Load()
	offers := snap[loanType]
	if len(offers) == 0 {
		return nil
	}
	return append([]model.LenderRateOffer(nil), offers...)
}

// OfferCount returns the total number of offers across all buckets.
func (c *Catalog) OfferCount() int {
	snap := *c.current.Load()
	total := 0
	for _, offers := range snap {
		total += len(offers)
	}
	return total
}

// SyncFromProvider fetches the latest rates from the named provider and
// swaps in a new snapshot. Any fetch failure aborts the whole sync before
// the swap, so a failed refresh leaves the existing catalog untouched.
func (c *Catalog) SyncFromProvider(ctx context.Context, providerName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	provider, ok := c.providers[providerName]
	if !ok {
		c.logger.Warn("rate provider not registered", "provider", providerName)
		return false
	}

	// Build the replacement buckets first; swap only once everything fetched.
	fetched := make(snapshot)
	for _, lt := range valueobject.AllLoanTypes() {
		offers, err := provider.FetchLatestRates(ctx, lt)
		if err != nil {
			c.logger.Warn("rate sync failed, keeping existing catalog",
				"provider", providerName,
				"loan_type", lt.String(),
				"error", err,
			)
			return false
		}

		valid := make([]model.LenderRateOffer, 0, len(offers))
		for _, offer := range offers {
			if err := offer.Validate(); err != nil {
				c.logger.Warn("skipping invalid offer from provider",
					"provider", providerName,
					"lender", offer.LenderName,
					"error", err,
				)
				continue
			}
			valid = append(valid, offer)
		}
		if len(valid) > 0 {
			fetched[lt] = valid
		}
	}

	if len(fetched) == 0 {
		c.logger.Warn("rate sync returned no usable offers, keeping existing catalog",
			"provider", providerName)
		return false
	}

	// Overlay fetched buckets onto the current snapshot; untouched buckets
	// carry over unchanged.
	old := *c.current.Load()
	next := make(snapshot, len(old))
	for lt, offers := range old {
		next[lt] = offers
	}
	for lt, offers := range fetched {
		next[lt] = offers
	}
	c.current.Store(&next)

	c.logger.Info("rate catalog refreshed",
		"provider", providerName,
		"buckets_updated", len(fetched),
		"total_offers", c.OfferCount(),
	)
	return true
}

var _ port.RateCatalog = (*Catalog)(nil)
