package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/port"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// GetRatesByLenderUseCase exposes one catalog bucket grouped per lender.
type GetRatesByLenderUseCase struct {
	catalog port.RateCatalog
}

// NewGetRatesByLenderUseCase wires dependencies.
func NewGetRatesByLenderUseCase(catalog port.RateCatalog) *GetRatesByLenderUseCase {
	return &GetRatesByLenderUseCase{catalog: catalog}
}

// Execute returns the bucket's offers keyed by lender name, each lender's
// list ordered by ascending rate.
func (uc *GetRatesByLenderUseCase) Execute(
	_ context.Context,
	req dto.GetRatesByLenderRequest,
) (dto.RatesByLenderResponse, error) {
	loanType, err := valueobject.NewLoanType(req.LoanType)
	if err != nil {
		return dto.RatesByLenderResponse{}, fmt.Errorf("rates by lender: %w", err)
	}

	byLender := make(map[string][]dto.RateOfferView)
	for _, offer := range uc.catalog.Offers(loanType) {
		view := toOfferView(model.RankedOffer{
			Offer:         offer,
			EffectiveCost: service.EffectiveCost(offer, loanType),
		})
		byLender[offer.LenderName] = append(byLender[offer.LenderName], view)
	}

	for _, views := range byLender {
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Rate.LessThan(views[j].Rate)
		})
	}

	return dto.RatesByLenderResponse{
		LoanType: loanType.String(),
		Lenders:  byLender,
	}, nil
}
