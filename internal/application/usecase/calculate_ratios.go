package usecase

import (
	"context"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
)

// CalculateRatiosUseCase derives LTV and DSCR figures. Degenerate inputs
// (zero property value, zero loan amount) yield zero values, never faults;
// a negative DSCR is a valid, reportable result.
type CalculateRatiosUseCase struct {
	ratios *service.RatioCalculator
}

// NewCalculateRatiosUseCase wires dependencies.
func NewCalculateRatiosUseCase(ratios *service.RatioCalculator) *CalculateRatiosUseCase {
	return &CalculateRatiosUseCase{ratios: ratios}
}

// Execute computes the requested ratios. The quoted-rate DSCR is included
// only when the request carries a quoted rate and term.
func (uc *CalculateRatiosUseCase) Execute(
	_ context.Context,
	req dto.CalculateRatiosRequest,
) dto.CalculateRatiosResponse {
	resp := dto.CalculateRatiosResponse{
		LTV: uc.ratios.LTV(req.LoanAmount, req.PropertyValue),
		ReferenceDSCR: uc.ratios.ReferenceDSCR(
			req.MonthlyRent, req.LoanAmount, req.MonthlyExpenses,
		),
	}

	if !req.QuotedRatePercent.IsZero() && req.QuotedTermYears > 0 {
		quoted := uc.ratios.QuotedDSCR(
			req.MonthlyRent, req.LoanAmount, req.MonthlyExpenses,
			req.QuotedRatePercent, req.QuotedTermYears,
		)
		resp.QuotedDSCR = &quoted
	}

	return resp
}
