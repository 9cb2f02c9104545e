package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// GetPricingRequest carries one borrower/property/loan combination to price.
type GetPricingRequest struct {
	LoanType      string          `json:"loan_type"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	PropertyValue decimal.Decimal `json:"property_value"`
	CreditScore   int             `json:"credit_score"`
	DSCRRatio     decimal.Decimal `json:"dscr_ratio,omitempty"`
	LoanPurpose   string          `json:"loan_purpose,omitempty"`
	PropertyType  string          `json:"property_type,omitempty"`
	Experience    string          `json:"experience,omitempty"`
	Timeline      string          `json:"timeline,omitempty"`
	State         string          `json:"state,omitempty"`
}

// AmortizeRequest carries the inputs for an amortization schedule.
type AmortizeRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
	Frequency         string          `json:"frequency"`
	// StartDate is optional; zero means today.
	StartDate time.Time `json:"start_date,omitempty"`
}

// CalculateFeesRequest carries the inputs for a closing-cost schedule.
type CalculateFeesRequest struct {
	LoanAmount decimal.Decimal `json:"loan_amount"`
	LoanType   string          `json:"loan_type"`
}

// CalculateRatiosRequest carries the inputs for DSCR/LTV calculations.
// QuotedRatePercent and QuotedTermYears are optional; when both are set the
// response also carries a DSCR computed against the quoted program.
type CalculateRatiosRequest struct {
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	PropertyValue     decimal.Decimal `json:"property_value"`
	MonthlyRent       decimal.Decimal `json:"monthly_rent"`
	MonthlyExpenses   decimal.Decimal `json:"monthly_expenses"`
	QuotedRatePercent decimal.Decimal `json:"quoted_rate_percent,omitempty"`
	QuotedTermYears   int             `json:"quoted_term_years,omitempty"`
}

// GetRatesByLenderRequest selects one loan-type bucket.
type GetRatesByLenderRequest struct {
	LoanType string `json:"loan_type"`
}

// SyncRatesRequest names the provider to refresh from.
type SyncRatesRequest struct {
	Provider string `json:"provider"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RateOfferView is the outward shape of one lender rate offer.
type RateOfferView struct {
	LenderID          string          `json:"lender_id"`
	LenderName        string          `json:"lender_name"`
	ProgramName       string          `json:"program_name"`
	LoanType          string          `json:"loan_type"`
	Rate              decimal.Decimal `json:"rate"`
	Points            decimal.Decimal `json:"points"`
	Fees              decimal.Decimal `json:"fees"`
	MaxLTV            decimal.Decimal `json:"max_ltv"`
	MinDSCR           decimal.Decimal `json:"min_dscr,omitempty"`
	MinCreditScore    int             `json:"min_credit_score"`
	MinLoanAmount     decimal.Decimal `json:"min_loan_amount"`
	MaxLoanAmount     decimal.Decimal `json:"max_loan_amount"`
	TermDescription   string          `json:"term"`
	PrepaymentPenalty bool            `json:"prepayment_penalty"`
	Conditions        []string        `json:"conditions,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
	EffectiveCost     decimal.Decimal `json:"effective_cost"`
}

// PricingResultResponse is the ranked outcome of a pricing request.
type PricingResultResponse struct {
	QuoteID          string          `json:"quote_id"`
	Recommended      *RateOfferView  `json:"recommended,omitempty"`
	AllOptions       []RateOfferView `json:"all_options"`
	PricedAt         time.Time       `json:"priced_at"`
	ExpiresAt        time.Time       `json:"expires_at"`
	MarketTrend      string          `json:"market_trend"`
	MarketVolatility string          `json:"market_volatility"`
}

// AmortizationEntryView is one period of a schedule.
type AmortizationEntryView struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// AmortizationResponse is a complete schedule with totals.
type AmortizationResponse struct {
	Payment       decimal.Decimal         `json:"payment"`
	Schedule      []AmortizationEntryView `json:"schedule"`
	TotalPaid     decimal.Decimal         `json:"total_paid"`
	TotalInterest decimal.Decimal         `json:"total_interest"`
	EffectiveRate decimal.Decimal         `json:"effective_rate"`
	PayoffDate    time.Time               `json:"payoff_date"`
}

// FeeLineItemView is one closing-cost line item.
type FeeLineItemView struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage,omitempty"`
	Required    bool            `json:"required"`
	Category    string          `json:"category"`
}

// FeeScheduleResponse is the full closing-cost breakdown.
type FeeScheduleResponse struct {
	LoanAmount    decimal.Decimal   `json:"loan_amount"`
	LoanType      string            `json:"loan_type"`
	Items         []FeeLineItemView `json:"items"`
	TotalRequired decimal.Decimal   `json:"total_required"`
	Total         decimal.Decimal   `json:"total"`
}

// CalculateRatiosResponse carries the computed underwriting ratios.
type CalculateRatiosResponse struct {
	LTV decimal.Decimal `json:"ltv"`
	// ReferenceDSCR uses the fixed 6.5%/30yr reference payment.
	ReferenceDSCR decimal.Decimal `json:"reference_dscr"`
	// QuotedDSCR is present only when a quoted rate and term were supplied.
	QuotedDSCR *decimal.Decimal `json:"quoted_dscr,omitempty"`
}

// RatesByLenderResponse groups a bucket's offers per lender.
type RatesByLenderResponse struct {
	LoanType string                     `json:"loan_type"`
	Lenders  map[string][]RateOfferView `json:"lenders"`
}

// SyncRatesResponse reports the outcome of a provider refresh.
type SyncRatesResponse struct {
	Provider   string `json:"provider"`
	Success    bool   `json:"success"`
	OfferCount int    `json:"offer_count"`
}
