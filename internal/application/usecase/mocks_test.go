package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/event"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockRateCatalog implements port.RateCatalog with function fields.
type mockRateCatalog struct {
	offersFunc func(loanType valueobject.LoanType) []model.LenderRateOffer
	syncFunc   func(ctx context.Context, providerName string) bool
}

func (m *mockRateCatalog) Offers(loanType valueobject.LoanType) []model.LenderRateOffer {
	if m.offersFunc != nil {
		return m.offersFunc(loanType)
	}
	return nil
}

func (m *mockRateCatalog) SyncFromProvider(ctx context.Context, providerName string) bool {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, providerName)
	}
	return false
}

// mockEventPublisher implements port.EventPublisher with function fields.
type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error
	published   []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, events...)
	}
	return nil
}
