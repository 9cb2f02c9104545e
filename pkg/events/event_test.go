package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("pricing.quote.generated", "quote-123", "PricingQuote")
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, "pricing.quote.generated", event.EventType())
	assert.Equal(t, "quote-123", event.AggregateID())
	assert.Equal(t, "PricingQuote", event.AggregateType())
	assert.False(t, event.OccurredAt().Before(before))
	assert.False(t, event.OccurredAt().After(after))
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventSerializesEnvelope(t *testing.T) {
	type quoteGenerated struct {
		BaseEvent
		LoanType string `json:"loan_type"`
	}

	evt := quoteGenerated{
		BaseEvent: NewBaseEvent("pricing.quote.generated", "quote-456", "PricingQuote"),
		LoanType:  "dscr",
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "pricing.quote.generated", decoded["event_type"])
	assert.Equal(t, "quote-456", decoded["aggregate_id"])
	assert.Equal(t, "PricingQuote", decoded["aggregate_type"])
	assert.Equal(t, "dscr", decoded["loan_type"])
	assert.NotEmpty(t, decoded["event_id"])
	assert.NotEmpty(t, decoded["occurred_at"])
}
