package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/usecase"
)

// syncTimeout bounds one full provider refresh pass.
const syncTimeout = 60 * time.Second

// Scheduler runs periodic best-effort rate refreshes. A failed refresh
// leaves the catalog on its previous snapshot; pricing requests are never
// affected beyond serving stale rates.
type Scheduler struct {
	cron      *cron.Cron
	syncRates *usecase.SyncRatesUseCase
	providers []string
	logger    *slog.Logger
}

// New creates a scheduler refreshing from the named providers.
func New(syncRates *usecase.SyncRatesUseCase, providers []string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		syncRates: syncRates,
		providers: providers,
		logger:    logger,
	}
}

// Register adds the refresh job under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshAll); err != nil {
		return fmt.Errorf("register rate refresh job: %w", err)
	}
	return nil
}

// Start begins running registered jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("rate refresh scheduler started", "providers", s.providers)
}

// Stop stops the scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("rate refresh scheduler stopped")
}

func (s *Scheduler) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	for _, provider := range s.providers {
		resp := s.syncRates.Execute(ctx, dto.SyncRatesRequest{Provider: provider})
		if resp.Success {
			s.logger.Info("scheduled rate refresh succeeded",
				"provider", provider,
				"offer_count", resp.OfferCount,
			)
		} else {
			s.logger.Warn("scheduled rate refresh failed, catalog unchanged",
				"provider", provider,
			)
		}
	}
}
