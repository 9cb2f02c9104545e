package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed identifiers and instants for deterministic testing.
var (
	TestQuoteID   = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestEventID   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestPricedAt  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	TestSeededAt  = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	TestStartDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)
