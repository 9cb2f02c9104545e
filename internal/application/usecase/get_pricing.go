package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/event"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/port"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// GetPricingUseCase orchestrates eligibility filtering, cost ranking, and
// result assembly for one pricing request.
type GetPricingUseCase struct {
	catalog   port.RateCatalog
	filter    *service.EligibilityFilter
	ranker    *service.CostRanker
	publisher port.EventPublisher
	logger    *slog.Logger

	marketMu sync.RWMutex
	market   *model.MarketConditions
}

// NewGetPricingUseCase wires dependencies.
func NewGetPricingUseCase(
	catalog port.RateCatalog,
	filter *service.EligibilityFilter,
	ranker *service.CostRanker,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *GetPricingUseCase {
	return &GetPricingUseCase{
		catalog:   catalog,
		filter:    filter,
		ranker:    ranker,
		publisher: publisher,
		logger:    logger,
	}
}

// UpdateMarketConditions installs an externally supplied market snapshot.
// Until one arrives, results carry the neutral default.
func (uc *GetPricingUseCase) UpdateMarketConditions(mc model.MarketConditions) {
	uc.marketMu.Lock()
	defer uc.marketMu.Unlock()
	uc.market = &mc
}

// Execute prices one request against the current catalog snapshot. No
// eligible offers is a valid outcome with an empty option list, not an
// error.
func (uc *GetPricingUseCase) Execute(
	ctx context.Context,
	req dto.GetPricingRequest,
) (dto.PricingResultResponse, error) {
	loanType, err := valueobject.NewLoanType(req.LoanType)
	if err != nil {
		return dto.PricingResultResponse{}, fmt.Errorf("pricing request: %w", err)
	}

	request := model.PricingRequest{
		LoanType:      loanType,
		LoanAmount:    req.LoanAmount,
		PropertyValue: req.PropertyValue,
		CreditScore:   req.CreditScore,
		DSCRRatio:     req.DSCRRatio,
		LoanPurpose:   req.LoanPurpose,
		PropertyType:  req.PropertyType,
		Experience:    req.Experience,
		Timeline:      req.Timeline,
		State:         req.State,
	}
	if err := request.Validate(); err != nil {
		return dto.PricingResultResponse{}, fmt.Errorf("pricing request: %w", err)
	}

	now := time.Now().UTC()

	eligible := uc.filter.Filter(uc.catalog.Offers(loanType), request)
	ranked := uc.ranker.Rank(eligible, request)
	if len(ranked) > model.MaxRankedOptions {
		ranked = ranked[:model.MaxRankedOptions]
	}

	result := model.PricingResult{
		QuoteID:    uuid.New().String(),
		AllOptions: ranked,
		PricedAt:   now,
		ExpiresAt:  now.Add(model.QuoteTTL),
		Market:     uc.marketSnapshot(now),
	}
	if len(ranked) > 0 {
		result.Recommended = &ranked[0]
	}

	uc.publishQuoteGenerated(ctx, request, result)

	return toPricingResponse(result), nil
}

func (uc *GetPricingUseCase) marketSnapshot(now time.Time) model.MarketConditions {
	uc.marketMu.RLock()
	defer uc.marketMu.RUnlock()
	if uc.market != nil {
		return *uc.market
	}
	return model.DefaultMarketConditions(now)
}

// publishQuoteGenerated is best-effort: pricing is a pure computation and
// must not fail because the event bus is down.
func (uc *GetPricingUseCase) publishQuoteGenerated(
	ctx context.Context,
	req model.PricingRequest,
	result model.PricingResult,
) {
	if uc.publisher == nil {
		return
	}

	recommended := ""
	if result.HasRecommendation() {
		recommended = result.Recommended.Offer.LenderName
	}

	evt := event.NewPricingQuoteGenerated(
		result.QuoteID,
		req.LoanType.String(),
		req.LoanAmount,
		len(result.AllOptions),
		recommended,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish pricing event",
			"quote_id", result.QuoteID,
			"error", err,
		)
	}
}

// ---------------------------------------------------------------------------
// Response mapping
// ---------------------------------------------------------------------------

func toOfferView(ranked model.RankedOffer) dto.RateOfferView {
	offer := ranked.Offer
	return dto.RateOfferView{
		LenderID:          offer.LenderID,
		LenderName:        offer.LenderName,
		ProgramName:       offer.ProgramName,
		LoanType:          offer.LoanType.String(),
		Rate:              offer.Rate,
		Points:            offer.Points,
		Fees:              offer.Fees,
		MaxLTV:            offer.MaxLTV,
		MinDSCR:           offer.MinDSCR,
		MinCreditScore:    offer.MinCreditScore,
		MinLoanAmount:     offer.MinLoanAmount,
		MaxLoanAmount:     offer.MaxLoanAmount,
		TermDescription:   offer.TermDescription,
		PrepaymentPenalty: offer.PrepaymentPenalty,
		Conditions:        offer.Conditions.Tags(),
		UpdatedAt:         offer.UpdatedAt,
		EffectiveCost:     ranked.EffectiveCost,
	}
}

func toPricingResponse(result model.PricingResult) dto.PricingResultResponse {
	options := make([]dto.RateOfferView, 0, len(result.AllOptions))
	for _, ranked := range result.AllOptions {
		options = append(options, toOfferView(ranked))
	}

	resp := dto.PricingResultResponse{
		QuoteID:          result.QuoteID,
		AllOptions:       options,
		PricedAt:         result.PricedAt,
		ExpiresAt:        result.ExpiresAt,
		MarketTrend:      result.Market.Trend,
		MarketVolatility: result.Market.Volatility,
	}
	if result.HasRecommendation() {
		view := toOfferView(*result.Recommended)
		resp.Recommended = &view
	}
	return resp
}
