package event

import (
	"github.com/shopspring/decimal"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Rate Catalog Events
// ---------------------------------------------------------------------------

// RateCatalogRefreshed is raised when a provider sync replaces the catalog
// snapshot.
type RateCatalogRefreshed struct {
	events.BaseEvent
	Provider     string   `json:"provider"`
	LoanTypes    []string `json:"loan_types"`
	OfferCount   int      `json:"offer_count"`
	ReplacedFull bool     `json:"replaced_full"`
}

func NewRateCatalogRefreshed(provider string, loanTypes []string, offerCount int) RateCatalogRefreshed {
	return RateCatalogRefreshed{
		BaseEvent:  events.NewBaseEvent("pricing.rate_catalog.refreshed", provider, "RateCatalog"),
		Provider:   provider,
		LoanTypes:  loanTypes,
		OfferCount: offerCount,
	}
}

// ---------------------------------------------------------------------------
// Pricing Events
// ---------------------------------------------------------------------------

// PricingQuoteGenerated is raised when a pricing request produces a result.
type PricingQuoteGenerated struct {
	events.BaseEvent
	QuoteID           string          `json:"quote_id"`
	LoanType          string          `json:"loan_type"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	OptionCount       int             `json:"option_count"`
	RecommendedLender string          `json:"recommended_lender,omitempty"`
}

func NewPricingQuoteGenerated(
	quoteID, loanType string,
	loanAmount decimal.Decimal,
	optionCount int,
	recommendedLender string,
) PricingQuoteGenerated {
	return PricingQuoteGenerated{
		BaseEvent:         events.NewBaseEvent("pricing.quote.generated", quoteID, "PricingQuote"),
		QuoteID:           quoteID,
		LoanType:          loanType,
		LoanAmount:        loanAmount,
		OptionCount:       optionCount,
		RecommendedLender: recommendedLender,
	}
}
