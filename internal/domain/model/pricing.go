package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// Borrower attributes the eligibility filter keys on.
const (
	ExperienceFirstTime = "first_time"
	TimelineUrgent      = "urgent"
)

// QuoteTTL is how long a pricing result stays valid.
const QuoteTTL = 24 * time.Hour

// MaxRankedOptions caps how many ranked offers a result carries.
const MaxRankedOptions = 10

// ---------------------------------------------------------------------------
// PricingRequest
// ---------------------------------------------------------------------------

// PricingRequest describes one borrower/property/loan combination to price.
// Requests are transient; one is constructed per call.
type PricingRequest struct {
	LoanType      valueobject.LoanType
	LoanAmount    decimal.Decimal
	PropertyValue decimal.Decimal
	CreditScore   int
	// DSCRRatio is optional; zero means the borrower did not supply one.
	DSCRRatio    decimal.Decimal
	LoanPurpose  string
	PropertyType string
	Experience   string
	Timeline     string
	State        string
}

// Validate rejects structurally invalid requests. Unfavorable numbers
// (low credit, thin DSCR) are not errors; they simply price poorly.
func (r PricingRequest) Validate() error {
	if r.LoanType.IsZero() {
		return errors.New("loan type is required")
	}
	if r.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("loan amount must be positive")
	}
	if r.CreditScore < 300 || r.CreditScore > 850 {
		return fmt.Errorf("credit score %d outside valid range [300, 850]", r.CreditScore)
	}
	if r.DSCRRatio.IsNegative() {
		return errors.New("dscr ratio must not be negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// PricingResult
// ---------------------------------------------------------------------------

// RankedOffer pairs an eligible offer with its normalized effective cost.
type RankedOffer struct {
	Offer LenderRateOffer
	// EffectiveCost is rate plus hold-period-amortized points, as a decimal
	// fraction, the key the ranker ordered by.
	EffectiveCost decimal.Decimal
}

// MarketConditions is a snapshot of the rate environment attached to every
// pricing result.
type MarketConditions struct {
	Trend      string
	Volatility string
	CapturedAt time.Time
}

// DefaultMarketConditions is the neutral snapshot used when no external
// market feed has been supplied.
func DefaultMarketConditions(now time.Time) MarketConditions {
	return MarketConditions{Trend: "stable", Volatility: "low", CapturedAt: now}
}

// PricingResult is the ranked outcome of one pricing request. Results are
// created fresh per request and never persisted by this engine.
type PricingResult struct {
	QuoteID string
	// Recommended is nil when no program matched; that is a valid outcome,
	// not a fault.
	Recommended *RankedOffer
	AllOptions  []RankedOffer
	PricedAt    time.Time
	ExpiresAt   time.Time
	Market      MarketConditions
}

// HasRecommendation reports whether at least one program matched.
func (p PricingResult) HasRecommendation() bool {
	return p.Recommended != nil
}
