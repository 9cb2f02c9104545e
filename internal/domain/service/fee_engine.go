package service

import (
	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FeeEngine – domain service computing the standard closing-cost schedule
// ---------------------------------------------------------------------------

// Origination rates as a percent of principal per program type.
var originationRates = map[valueobject.LoanType]decimal.Decimal{
	valueobject.LoanTypeDSCR:       decimal.NewFromFloat(1.5),
	valueobject.LoanTypeFixFlip:    decimal.NewFromFloat(2.5),
	valueobject.LoanTypeBridge:     decimal.NewFromFloat(2.0),
	valueobject.LoanTypeCommercial: decimal.NewFromFloat(1.0),
}

var defaultOriginationRate = decimal.NewFromFloat(2.0)

// Appraisal fees per program type.
var appraisalFees = map[valueobject.LoanType]decimal.Decimal{
	valueobject.LoanTypeDSCR:       decimal.NewFromInt(650),
	valueobject.LoanTypeFixFlip:    decimal.NewFromInt(750),
	valueobject.LoanTypeBridge:     decimal.NewFromInt(700),
	valueobject.LoanTypeCommercial: decimal.NewFromInt(2500),
}

var defaultAppraisalFee = decimal.NewFromInt(650)

// FeeEngine computes a FeeSchedule from loan type and amount. It never
// fails: unknown loan types fall back to default rates rather than erroring.
type FeeEngine struct{}

// NewFeeEngine returns a new engine instance.
func NewFeeEngine() *FeeEngine {
	return &FeeEngine{}
}

// Calculate builds the closing-cost fee schedule for a loan. The loan type
// is taken as a raw string so that callers with unrecognized program names
// still get the default schedule.
func (e *FeeEngine) Calculate(loanAmount decimal.Decimal, loanType string) model.FeeSchedule {
	lt, known := valueobject.NormalizeLoanType(loanType)

	originationRate := defaultOriginationRate
	appraisal := defaultAppraisalFee
	if known {
		if rate, ok := originationRates[lt]; ok {
			originationRate = rate
		}
		if fee, ok := appraisalFees[lt]; ok {
			appraisal = fee
		}
	}

	origination := loanAmount.Mul(originationRate).Div(decimal.NewFromInt(100)).Round(2)

	items := []model.FeeLineItem{
		{
			Type:        "origination",
			Description: "Loan origination fee",
			Amount:      origination,
			Percentage:  originationRate,
			Required:    true,
			Category:    model.FeeCategoryLender,
		},
		{
			Type:        "processing",
			Description: "Loan processing fee",
			Amount:      decimal.NewFromInt(495),
			Required:    true,
			Category:    model.FeeCategoryProcessing,
		},
		{
			Type:        "underwriting",
			Description: "Underwriting fee",
			Amount:      decimal.NewFromInt(750),
			Required:    true,
			Category:    model.FeeCategoryProcessing,
		},
		{
			Type:        "document_preparation",
			Description: "Document preparation fee",
			Amount:      decimal.NewFromInt(350),
			Required:    true,
			Category:    model.FeeCategoryProcessing,
		},
		{
			Type:        "flood_certification",
			Description: "Flood zone certification",
			Amount:      decimal.NewFromInt(25),
			Required:    true,
			Category:    model.FeeCategoryThirdParty,
		},
		{
			Type:        "appraisal",
			Description: "Property appraisal",
			Amount:      appraisal,
			Required:    true,
			Category:    model.FeeCategoryThirdParty,
		},
	}

	if known && (lt.Equal(valueobject.LoanTypeCommercial) || lt.Equal(valueobject.LoanTypeBridge)) {
		items = append(items, model.FeeLineItem{
			Type:        "environmental_assessment",
			Description: "Phase I environmental assessment",
			Amount:      decimal.NewFromInt(1250),
			Required:    true,
			Category:    model.FeeCategoryThirdParty,
		})
	}

	// Optional fees are always listed for transparency.
	items = append(items,
		model.FeeLineItem{
			Type:        "wire_transfer",
			Description: "Wire transfer fee",
			Amount:      decimal.NewFromInt(35),
			Required:    false,
			Category:    model.FeeCategoryOptional,
		},
		model.FeeLineItem{
			Type:        "tax_monitoring",
			Description: "Tax monitoring service",
			Amount:      decimal.NewFromInt(89),
			Required:    false,
			Category:    model.FeeCategoryOptional,
		},
	)

	return model.FeeSchedule{
		LoanAmount: loanAmount,
		LoanType:   loanType,
		Items:      items,
	}
}
