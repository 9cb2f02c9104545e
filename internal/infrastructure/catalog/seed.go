package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// DefaultSeed returns the built-in lender dataset. It acts as the fallback
// rate sheet when no provider sync has succeeded yet.
func DefaultSeed(now time.Time) map[valueobject.LoanType][]model.LenderRateOffer {
	d := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

	return map[valueobject.LoanType][]model.LenderRateOffer{
		valueobject.LoanTypeDSCR: {
			{
				LenderID: "lima-one", LenderName: "Lima One Capital",
				ProgramName: "Rental360", LoanType: valueobject.LoanTypeDSCR,
				Rate: d(0.075), Points: d(2.0), Fees: d(1495),
				MaxLTV: d(0.80), MinDSCR: d(1.0), MinCreditScore: 640,
				MinLoanAmount: d(75_000), MaxLoanAmount: d(2_500_000),
				TermDescription: "30-year fixed", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "groundfloor", LenderName: "Groundfloor",
				ProgramName: "Rental Advantage", LoanType: valueobject.LoanTypeDSCR,
				Rate: d(0.079), Points: d(2.5), Fees: d(1295),
				MaxLTV: d(0.80), MinDSCR: d(0.9), MinCreditScore: 660,
				MinLoanAmount: d(75_000), MaxLoanAmount: d(1_500_000),
				TermDescription: "30-year fixed", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "kiavi", LenderName: "Kiavi",
				ProgramName: "Rental Portfolio", LoanType: valueobject.LoanTypeDSCR,
				Rate: d(0.074), Points: d(2.0), Fees: d(1695),
				MaxLTV: d(0.75), MinDSCR: d(1.1), MinCreditScore: 700,
				MinLoanAmount: d(100_000), MaxLoanAmount: d(3_000_000),
				TermDescription: "30-year fixed", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "visio", LenderName: "Visio Lending",
				ProgramName: "Rental360 Plus", LoanType: valueobject.LoanTypeDSCR,
				Rate: d(0.0785), Points: d(2.25), Fees: d(1595),
				MaxLTV: d(0.75), MinDSCR: d(1.0), MinCreditScore: 680,
				MinLoanAmount: d(100_000), MaxLoanAmount: d(2_000_000),
				TermDescription: "30-year fixed", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
				Conditions: valueobject.NewConditionSet(valueobject.NoPropertyType("condo")),
			},
		},
		valueobject.LoanTypeFixFlip: {
			{
				LenderID: "kiavi", LenderName: "Kiavi",
				ProgramName: "Fix & Flip", LoanType: valueobject.LoanTypeFixFlip,
				Rate: d(0.1025), Points: d(2.0), Fees: d(999),
				MaxLTV: d(0.90), MinCreditScore: 660,
				MinLoanAmount: d(100_000), MaxLoanAmount: d(1_500_000),
				TermDescription: "12-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "groundfloor", LenderName: "Groundfloor",
				ProgramName: "Flip Funding", LoanType: valueobject.LoanTypeFixFlip,
				Rate: d(0.105), Points: d(2.5), Fees: d(1250),
				MaxLTV: d(0.90), MinCreditScore: 640,
				MinLoanAmount: d(75_000), MaxLoanAmount: d(750_000),
				TermDescription: "12-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "lima-one", LenderName: "Lima One Capital",
				ProgramName: "FixNFlip", LoanType: valueobject.LoanTypeFixFlip,
				Rate: d(0.10), Points: d(2.25), Fees: d(1495),
				MaxLTV: d(0.925), MinCreditScore: 660,
				MinLoanAmount: d(75_000), MaxLoanAmount: d(3_000_000),
				TermDescription: "13-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "roc-capital", LenderName: "ROC Capital",
				ProgramName: "Pro Flip", LoanType: valueobject.LoanTypeFixFlip,
				Rate: d(0.0975), Points: d(2.0), Fees: d(1750),
				MaxLTV: d(0.90), MinCreditScore: 680,
				MinLoanAmount: d(150_000), MaxLoanAmount: d(2_000_000),
				TermDescription: "18-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
				Conditions: valueobject.NewConditionSet(valueobject.ConditionExperiencedOnly),
			},
		},
		valueobject.LoanTypeBridge: {
			{
				LenderID: "lima-one", LenderName: "Lima One Capital",
				ProgramName: "Bridge Plus", LoanType: valueobject.LoanTypeBridge,
				Rate: d(0.095), Points: d(1.75), Fees: d(1495),
				MaxLTV: d(0.75), MinCreditScore: 660,
				MinLoanAmount: d(250_000), MaxLoanAmount: d(5_000_000),
				TermDescription: "24-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "corevest", LenderName: "CoreVest",
				ProgramName: "Bridge", LoanType: valueobject.LoanTypeBridge,
				Rate: d(0.0925), Points: d(2.0), Fees: d(1995),
				MaxLTV: d(0.70), MinCreditScore: 680,
				MinLoanAmount: d(500_000), MaxLoanAmount: d(25_000_000),
				TermDescription: "24-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
				Conditions: valueobject.NewConditionSet(valueobject.ConditionSlowProcessing),
			},
			{
				LenderID: "roc-capital", LenderName: "ROC Capital",
				ProgramName: "Stabilized Bridge", LoanType: valueobject.LoanTypeBridge,
				Rate: d(0.0975), Points: d(1.5), Fees: d(1750),
				MaxLTV: d(0.75), MinCreditScore: 660,
				MinLoanAmount: d(250_000), MaxLoanAmount: d(10_000_000),
				TermDescription: "18-month interest-only", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
		},
		valueobject.LoanTypeConstruction: {
			{
				LenderID: "builders-capital", LenderName: "Builders Capital",
				ProgramName: "Ground-Up", LoanType: valueobject.LoanTypeConstruction,
				Rate: d(0.1075), Points: d(2.5), Fees: d(2495),
				MaxLTV: d(0.85), MinCreditScore: 680,
				MinLoanAmount: d(250_000), MaxLoanAmount: d(5_000_000),
				TermDescription: "18-month draw schedule", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
				Conditions: valueobject.NewConditionSet(valueobject.ConditionExperiencedOnly),
			},
			{
				LenderID: "lima-one", LenderName: "Lima One Capital",
				ProgramName: "New Construction", LoanType: valueobject.LoanTypeConstruction,
				Rate: d(0.1050), Points: d(2.25), Fees: d(1495),
				MaxLTV: d(0.90), MinCreditScore: 660,
				MinLoanAmount: d(100_000), MaxLoanAmount: d(3_000_000),
				TermDescription: "19-month draw schedule", PrepaymentPenalty: false,
				Active: true, UpdatedAt: now,
			},
		},
		valueobject.LoanTypeCommercial: {
			{
				LenderID: "corevest", LenderName: "CoreVest",
				ProgramName: "Commercial Term", LoanType: valueobject.LoanTypeCommercial,
				Rate: d(0.0825), Points: d(1.0), Fees: d(2995),
				MaxLTV: d(0.75), MinDSCR: d(1.25), MinCreditScore: 680,
				MinLoanAmount: d(500_000), MaxLoanAmount: d(50_000_000),
				TermDescription: "10-year fixed, 25-year amortization", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "lendio", LenderName: "Lendio Commercial",
				ProgramName: "Small Balance", LoanType: valueobject.LoanTypeCommercial,
				Rate: d(0.0850), Points: d(1.25), Fees: d(2495),
				MaxLTV: d(0.70), MinDSCR: d(1.2), MinCreditScore: 660,
				MinLoanAmount: d(250_000), MaxLoanAmount: d(5_000_000),
				TermDescription: "7-year fixed, 25-year amortization", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
			},
			{
				LenderID: "ready-capital", LenderName: "Ready Capital",
				ProgramName: "Commercial Bridge", LoanType: valueobject.LoanTypeCommercial,
				Rate: d(0.0890), Points: d(1.5), Fees: d(3495),
				MaxLTV: d(0.75), MinDSCR: d(1.15), MinCreditScore: 650,
				MinLoanAmount: d(1_000_000), MaxLoanAmount: d(25_000_000),
				TermDescription: "5-year fixed, 30-year amortization", PrepaymentPenalty: true,
				Active: true, UpdatedAt: now,
				Conditions: valueobject.NewConditionSet(valueobject.ConditionSlowProcessing),
			},
		},
	}
}
