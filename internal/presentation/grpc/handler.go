package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/usecase"
)

// PricingHandler exposes the pricing engine over gRPC.
type PricingHandler struct {
	UnimplementedPricingServiceServer

	pricing   *usecase.GetPricingUseCase
	rates     *usecase.GetRatesByLenderUseCase
	amortize  *usecase.AmortizeUseCase
	fees      *usecase.CalculateFeesUseCase
	ratios    *usecase.CalculateRatiosUseCase
	syncRates *usecase.SyncRatesUseCase
	logger    *slog.Logger
}

// NewPricingHandler creates a new handler with all use-case dependencies.
func NewPricingHandler(
	pricing *usecase.GetPricingUseCase,
	rates *usecase.GetRatesByLenderUseCase,
	amortize *usecase.AmortizeUseCase,
	fees *usecase.CalculateFeesUseCase,
	ratios *usecase.CalculateRatiosUseCase,
	syncRates *usecase.SyncRatesUseCase,
	logger *slog.Logger,
) *PricingHandler {
	return &PricingHandler{
		pricing:   pricing,
		rates:     rates,
		amortize:  amortize,
		fees:      fees,
		ratios:    ratios,
		syncRates: syncRates,
		logger:    logger,
	}
}

// GetPricing prices a loan request against the current catalog. An empty
// option list is a normal response; only malformed requests fail.
func (h *PricingHandler) GetPricing(
	ctx context.Context,
	req *GetPricingRequest,
) (*GetPricingResponse, error) {
	resp, err := h.pricing.Execute(ctx, *req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &resp, nil
}

// GetRatesByLender returns one loan-type bucket grouped per lender.
func (h *PricingHandler) GetRatesByLender(
	ctx context.Context,
	req *GetRatesByLenderRequest,
) (*GetRatesByLenderResponse, error) {
	resp, err := h.rates.Execute(ctx, *req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &resp, nil
}

// Amortize computes a full payment schedule.
func (h *PricingHandler) Amortize(
	ctx context.Context,
	req *AmortizeRequest,
) (*AmortizeResponse, error) {
	resp, err := h.amortize.Execute(ctx, *req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &resp, nil
}

// CalculateFees computes the closing-cost schedule; it never fails.
func (h *PricingHandler) CalculateFees(
	ctx context.Context,
	req *CalculateFeesRequest,
) (*CalculateFeesResponse, error) {
	resp := h.fees.Execute(ctx, *req)
	return &resp, nil
}

// CalculateRatios computes DSCR and LTV figures; degenerate inputs yield
// zero values, never errors.
func (h *PricingHandler) CalculateRatios(
	ctx context.Context,
	req *CalculateRatiosRequest,
) (*CalculateRatiosResponse, error) {
	resp := h.ratios.Execute(ctx, *req)
	return &resp, nil
}

// SyncRates refreshes the catalog from one provider. Failure is reported in
// the response, not as an RPC error.
func (h *PricingHandler) SyncRates(
	ctx context.Context,
	req *SyncRatesRequest,
) (*SyncRatesResponse, error) {
	resp := h.syncRates.Execute(ctx, *req)
	return &resp, nil
}
