package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CostRanker – domain service ordering offers by normalized effective cost
// ---------------------------------------------------------------------------

// Expected hold periods in years per program, used to amortize upfront
// points into an annualized cost so short-term and long-term programs
// compare like-for-like.
var holdPeriodYears = map[valueobject.LoanType]decimal.Decimal{
	valueobject.LoanTypeFixFlip:      decimal.NewFromInt(1),
	valueobject.LoanTypeBridge:       decimal.NewFromFloat(1.5),
	valueobject.LoanTypeConstruction: decimal.NewFromInt(2),
	valueobject.LoanTypeCommercial:   decimal.NewFromInt(7),
	valueobject.LoanTypeDSCR:         decimal.NewFromInt(5),
}

var defaultHoldPeriodYears = decimal.NewFromInt(3)

// HoldPeriodYears returns the expected hold period for a program type.
func HoldPeriodYears(loanType valueobject.LoanType) decimal.Decimal {
	if hold, ok := holdPeriodYears[loanType]; ok {
		return hold
	}
	return defaultHoldPeriodYears
}

// CostRanker orders eligible offers by effective cost, best first.
type CostRanker struct{}

// NewCostRanker returns a new ranker instance.
func NewCostRanker() *CostRanker {
	return &CostRanker{}
}

// Rank orders offers ascending by effective cost, breaking ties on flat
// fees. The sort is stable, so identical inputs always produce the same
// ordering.
func (r *CostRanker) Rank(
	offers []model.LenderRateOffer,
	req model.PricingRequest,
) []model.RankedOffer {
	ranked := make([]model.RankedOffer, 0, len(offers))
	for _, offer := range offers {
		ranked = append(ranked, model.RankedOffer{
			Offer:         offer,
			EffectiveCost: EffectiveCost(offer, req.LoanType),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].EffectiveCost.Equal(ranked[j].EffectiveCost) {
			return ranked[i].EffectiveCost.LessThan(ranked[j].EffectiveCost)
		}
		return ranked[i].Offer.Fees.LessThan(ranked[j].Offer.Fees)
	})

	return ranked
}

// EffectiveCost is rate + points/holdPeriod as a decimal fraction. Points
// are stored as a percent of principal, so they are scaled to a fraction
// before being amortized over the hold period.
func EffectiveCost(offer model.LenderRateOffer, loanType valueobject.LoanType) decimal.Decimal {
	annualizedPoints := offer.Points.
		Div(decimal.NewFromInt(100)).
		Div(HoldPeriodYears(loanType))
	return offer.Rate.Add(annualizedPoints)
}
