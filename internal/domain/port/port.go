package port

import (
	"context"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/event"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Catalog port (driven/secondary adapters)
// ---------------------------------------------------------------------------

// RateCatalog is the engine's view of the current lender offer snapshot.
// Reads are non-exclusive and safe under concurrent pricing requests.
type RateCatalog interface {
	// Offers returns the active snapshot's offers for one loan type.
	Offers(loanType valueobject.LoanType) []model.LenderRateOffer

	// SyncFromProvider refreshes the bucket(s) served by the named provider.
	// A failed sync leaves the existing snapshot untouched and returns
	// false; it is reported, never fatal.
	SyncFromProvider(ctx context.Context, providerName string) bool
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// RateProvider fetches the latest rate records from an external source.
// It is invoked only by the catalog-refresh path, never inline with a
// pricing request.
type RateProvider interface {
	Name() string
	FetchLatestRates(ctx context.Context, loanType valueobject.LoanType) ([]model.LenderRateOffer, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
