package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// AmortizeUseCase computes full amortization schedules. It is a stateless,
// pure computation; every invalid input is rejected synchronously.
type AmortizeUseCase struct{}

// NewAmortizeUseCase returns a new use case instance.
func NewAmortizeUseCase() *AmortizeUseCase {
	return &AmortizeUseCase{}
}

// Execute validates the request and builds the schedule.
func (uc *AmortizeUseCase) Execute(
	_ context.Context,
	req dto.AmortizeRequest,
) (dto.AmortizationResponse, error) {
	frequency, err := valueobject.NewPaymentFrequency(req.Frequency)
	if err != nil {
		return dto.AmortizationResponse{}, fmt.Errorf("amortize: %w", err)
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	result, err := model.BuildAmortizationSchedule(
		req.Principal, req.AnnualRatePercent, req.TermYears, frequency, startDate,
	)
	if err != nil {
		return dto.AmortizationResponse{}, fmt.Errorf("amortize: %w", err)
	}

	return toAmortizationResponse(result), nil
}

func toAmortizationResponse(result model.AmortizationResult) dto.AmortizationResponse {
	entries := make([]dto.AmortizationEntryView, 0, len(result.Schedule))
	for _, entry := range result.Schedule {
		entries = append(entries, dto.AmortizationEntryView{
			Period:           entry.Period,
			DueDate:          entry.DueDate,
			Principal:        entry.Principal,
			Interest:         entry.Interest,
			Total:            entry.Total,
			RemainingBalance: entry.RemainingBalance,
		})
	}

	return dto.AmortizationResponse{
		Payment:       result.Payment,
		Schedule:      entries,
		TotalPaid:     result.TotalPaid,
		TotalInterest: result.TotalInterest,
		EffectiveRate: result.EffectiveRate,
		PayoffDate:    result.PayoffDate,
	}
}
