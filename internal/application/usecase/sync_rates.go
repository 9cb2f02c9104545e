package usecase

import (
	"context"
	"log/slog"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/event"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/port"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// SyncRatesUseCase refreshes the rate catalog from one external provider.
// Sync failure is recovered locally: the catalog stays on its previous
// snapshot and the caller sees success=false, never a fault.
type SyncRatesUseCase struct {
	catalog   port.RateCatalog
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewSyncRatesUseCase wires dependencies.
func NewSyncRatesUseCase(
	catalog port.RateCatalog,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *SyncRatesUseCase {
	return &SyncRatesUseCase{
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute runs the sync and, on success, publishes a catalog-refreshed
// event. Event publish failure is logged and does not undo the refresh.
func (uc *SyncRatesUseCase) Execute(
	ctx context.Context,
	req dto.SyncRatesRequest,
) dto.SyncRatesResponse {
	ok := uc.catalog.SyncFromProvider(ctx, req.Provider)

	resp := dto.SyncRatesResponse{
		Provider: req.Provider,
		Success:  ok,
	}
	if !ok {
		return resp
	}

	loanTypes := make([]string, 0)
	total := 0
	for _, lt := range valueobject.AllLoanTypes() {
		offers := uc.catalog.Offers(lt)
		if len(offers) > 0 {
			loanTypes = append(loanTypes, lt.String())
			total += len(offers)
		}
	}
	resp.OfferCount = total

	if uc.publisher != nil {
		evt := event.NewRateCatalogRefreshed(req.Provider, loanTypes, total)
		if err := uc.publisher.Publish(ctx, evt); err != nil {
			uc.logger.WarnContext(ctx, "failed to publish catalog refresh event",
				"provider", req.Provider,
				"error", err,
			)
		}
	}

	return resp
}
