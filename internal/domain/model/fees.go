package model

import (
	"github.com/shopspring/decimal"
)

// Fee categories group line items on a closing-cost disclosure.
const (
	FeeCategoryLender     = "lender"
	FeeCategoryProcessing = "processing"
	FeeCategoryThirdParty = "third_party"
	FeeCategoryOptional   = "optional"
)

// FeeLineItem is one named closing cost.
type FeeLineItem struct {
	Type        string
	Description string
	Amount      decimal.Decimal
	// Percentage is set only for percentage-based fees (origination);
	// expressed as a percent of principal.
	Percentage decimal.Decimal
	Required   bool
	Category   string
}

// FeeSchedule is the ordered closing-cost breakdown for a loan. Derived
// purely from loan type and amount; it carries no state of its own.
type FeeSchedule struct {
	LoanAmount decimal.Decimal
	LoanType   string
	Items      []FeeLineItem
}

// TotalRequired sums all required line items.
func (s FeeSchedule) TotalRequired() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if item.Required {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// Total sums every line item, optional fees included.
func (s FeeSchedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// Find returns the first line item of the given type.
func (s FeeSchedule) Find(feeType string) (FeeLineItem, bool) {
	for _, item := range s.Items {
		if item.Type == feeType {
			return item, true
		}
	}
	return FeeLineItem{}, false
}
