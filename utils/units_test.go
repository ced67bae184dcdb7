package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitLiterals(t *testing.T) {
	// The in/out weight factors are intentionally not reciprocals; a round
	// trip through both drifts slightly and that drift is part of the
	// contract.
	assert.Equal(t, 0.453592, LbsToKg)
	assert.Equal(t, 2.205, KgToLbs)
	assert.InDelta(t, 1.00017036, LbsToKg*KgToLbs, 1e-9)
}

func TestMLToOz(t *testing.T) {
	assert.InDelta(t, 1.0, MLToOz(29.5735), 1e-9)
	assert.InDelta(t, 638.0/29.5735, MLToOz(638), 1e-9)
}

func TestCToF(t *testing.T) {
	assert.Equal(t, 32.0, CToF(0))
	assert.InDelta(t, 89.6, CToF(32), 1e-9)
	assert.Equal(t, -4.0, CToF(-20))
}

func TestValidNumber(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	assert.True(t, ValidNumber(v(70), 30, 300))
	assert.True(t, ValidNumber(v(30), 30, 300))
	assert.True(t, ValidNumber(v(300), 30, 300))
	assert.True(t, ValidNumber(v(0), -20, 60))

	assert.False(t, ValidNumber(nil, 30, 300))
	assert.False(t, ValidNumber(v(29.9), 30, 300))
	assert.False(t, ValidNumber(v(300.1), 30, 300))
}
