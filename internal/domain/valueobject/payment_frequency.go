package valueobject

import (
	"fmt"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency determines how many payment periods a year holds.
type PaymentFrequency struct {
	value string
}

const (
	frequencyMonthly   = "monthly"
	frequencyQuarterly = "quarterly"
	frequencyAnnually  = "annually"
)

var (
	FrequencyMonthly   = PaymentFrequency{value: frequencyMonthly}
	FrequencyQuarterly = PaymentFrequency{value: frequencyQuarterly}
	FrequencyAnnually  = PaymentFrequency{value: frequencyAnnually}
)

var validFrequencies = map[string]PaymentFrequency{
	frequencyMonthly:   FrequencyMonthly,
	frequencyQuarterly: FrequencyQuarterly,
	frequencyAnnually:  FrequencyAnnually,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validFrequencies[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("unsupported payment frequency: %q", s)
	}
	return v, nil
}

// PeriodsPerYear returns the number of payment periods in one year.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyQuarterly:
		return 4
	case frequencyAnnually:
		return 1
	default:
		return 12
	}
}

// Advance moves a date forward by n payment periods.
func (f PaymentFrequency) Advance(from time.Time, n int) time.Time {
	switch f.value {
	case frequencyQuarterly:
		return from.AddDate(0, 3*n, 0)
	case frequencyAnnually:
		return from.AddDate(n, 0, 0)
	default:
		return from.AddDate(0, n, 0)
	}
}

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }
