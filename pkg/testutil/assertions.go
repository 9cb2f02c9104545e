package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertDecimalWithin checks that got is within tolerance of want.
func AssertDecimalWithin(t *testing.T, want, got, tolerance decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	diff := got.Sub(want).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance),
		"expected %s within %s of %s (diff %s): %v", got, tolerance, want, diff, msgAndArgs)
}

// AssertDecimalEqual checks exact decimal equality, with readable output.
func AssertDecimalEqual(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Equal(got), "expected %s, got %s: %v", want, got, msgAndArgs)
}
