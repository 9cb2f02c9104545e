package usecase

import (
	"context"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
)

// CalculateFeesUseCase computes the closing-cost fee schedule for a loan.
// Fee calculation never fails; unknown loan types use the default rates.
type CalculateFeesUseCase struct {
	fees *service.FeeEngine
}

// NewCalculateFeesUseCase wires dependencies.
func NewCalculateFeesUseCase(fees *service.FeeEngine) *CalculateFeesUseCase {
	return &CalculateFeesUseCase{fees: fees}
}

// Execute builds the fee schedule.
func (uc *CalculateFeesUseCase) Execute(
	_ context.Context,
	req dto.CalculateFeesRequest,
) dto.FeeScheduleResponse {
	schedule := uc.fees.Calculate(req.LoanAmount, req.LoanType)

	items := make([]dto.FeeLineItemView, 0, len(schedule.Items))
	for _, item := range schedule.Items {
		items = append(items, dto.FeeLineItemView{
			Type:        item.Type,
			Description: item.Description,
			Amount:      item.Amount,
			Percentage:  item.Percentage,
			Required:    item.Required,
			Category:    item.Category,
		})
	}

	return dto.FeeScheduleResponse{
		LoanAmount:    schedule.LoanAmount,
		LoanType:      schedule.LoanType,
		Items:         items,
		TotalRequired: schedule.TotalRequired(),
		Total:         schedule.Total(),
	}
}
