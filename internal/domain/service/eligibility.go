package service

import (
	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityFilter – domain service for lender program qualification
// ---------------------------------------------------------------------------

// EligibilityFilter narrows a set of rate offers to those a given
// borrower/property/loan combination qualifies for.
type EligibilityFilter struct{}

// NewEligibilityFilter returns a new filter instance.
func NewEligibilityFilter() *EligibilityFilter {
	return &EligibilityFilter{}
}

// Filter returns the offers the request qualifies for. An empty result is a
// valid outcome, never an error.
//
// An offer qualifies only when all of the following hold:
//
//	offer is active
//	minLoanAmount <= loanAmount <= maxLoanAmount
//	creditScore >= minCreditScore
//	loanAmount / propertyValue <= maxLTV
//	dscrRatio >= minDSCR        (only when both sides are supplied)
//	no condition tag excludes the borrower or property
func (f *EligibilityFilter) Filter(
	offers []model.LenderRateOffer,
	req model.PricingRequest,
) []model.LenderRateOffer {
	eligible := make([]model.LenderRateOffer, 0, len(offers))
	for _, offer := range offers {
		if f.qualifies(offer, req) {
			eligible = append(eligible, offer)
		}
	}
	return eligible
}

func (f *EligibilityFilter) qualifies(offer model.LenderRateOffer, req model.PricingRequest) bool {
	if !offer.Active {
		return false
	}
	if req.LoanAmount.LessThan(offer.MinLoanAmount) || req.LoanAmount.GreaterThan(offer.MaxLoanAmount) {
		return false
	}
	if req.CreditScore < offer.MinCreditScore {
		return false
	}

	// A missing or zero property value makes LTV undefined; treat the offer
	// as out of reach rather than dividing by zero.
	if req.PropertyValue.LessThanOrEqual(decimal.Zero) {
		return false
	}
	ltv := req.LoanAmount.Div(req.PropertyValue)
	if ltv.GreaterThan(offer.MaxLTV) {
		return false
	}

	if offer.HasMinDSCR() && !req.DSCRRatio.IsZero() && req.DSCRRatio.LessThan(offer.MinDSCR) {
		return false
	}

	if req.Experience == model.ExperienceFirstTime && offer.Conditions.Has(valueobject.ConditionExperiencedOnly) {
		return false
	}
	if req.Timeline == model.TimelineUrgent && offer.Conditions.Has(valueobject.ConditionSlowProcessing) {
		return false
	}
	if req.PropertyType != "" && offer.Conditions.Has(valueobject.NoPropertyType(req.PropertyType)) {
		return false
	}

	return true
}
