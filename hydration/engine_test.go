package hydration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	tests := []struct {
		in      string
		want    Sex
		wantErr bool
	}{
		{"male", SexMale, false},
		{"female", SexFemale, false},
		{"FEMALE", SexFemale, false},
		{"  Male ", SexMale, false},
		{"", "", true},
		{"other", "", true},
		{"fem", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSex(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidSex, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestEstimateSweatRateBaseline(t *testing.T) {
	// Anchor point: moderate exercise at a mild temperature.
	assert.Equal(t, 0.5, EstimateSweatRate(120, 20))
}

func TestEstimateSweatRateClamp(t *testing.T) {
	tests := []struct {
		name      string
		heartRate float64
		tempC     float64
	}{
		{"resting cold", 30, -20},
		{"max effort heat", 230, 60},
		{"moderate", 150, 25},
		{"degenerate negative", -1000, -1000},
		{"degenerate huge", 10000, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := EstimateSweatRate(tt.heartRate, tt.tempC)
			assert.GreaterOrEqual(t, rate, 0.3)
			assert.LessOrEqual(t, rate, 2.0)
		})
	}
}

func TestTotalSweatLoss(t *testing.T) {
	// One hour leaves the rate unchanged; zero duration loses nothing.
	assert.Equal(t, 1.4, TotalSweatLoss(1.4, 60))
	assert.Equal(t, 0.0, TotalSweatLoss(1.4, 0))

	// Long sessions can exceed the 2 L rate clamp.
	assert.InDelta(t, 6.0, TotalSweatLoss(2.0, 180), 1e-9)
}

func TestWaterIntakeSexFactor(t *testing.T) {
	for _, loss := range []float64{0.1, 0.638, 2.5} {
		male := WaterIntake(loss, SexMale)
		female := WaterIntake(loss, SexFemale)
		assert.InDelta(t, 0.9*male, female, 1e-9)
		assert.Equal(t, loss*1000, male)
	}
}

func TestSodiumSexFactor(t *testing.T) {
	assert.InDelta(t, 700, Sodium(1.0, SexMale), 1e-9)
	assert.InDelta(t, 595, Sodium(1.0, SexFemale), 1e-9)
}

func TestPotassiumMagnesiumIgnoreSex(t *testing.T) {
	// Only sodium is sex-adjusted; the other electrolytes are pure volume.
	assert.InDelta(t, 200, Potassium(1.0), 1e-9)
	assert.InDelta(t, 20, Magnesium(1.0), 1e-9)
	assert.Greater(t, Potassium(1.0), Magnesium(1.0))
}

func TestHeatMultiplierBands(t *testing.T) {
	tests := []struct {
		tempC float64
		want  float64
	}{
		{-20, 1.0},
		{22, 1.0},
		{29.999, 1.0},
		{30.0, 1.15},
		{34.999, 1.15},
		{35.0, 1.25},
		{60, 1.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeatMultiplier(tt.tempC), "temp %v", tt.tempC)
	}
}

func TestHeatAdjustReturnsNewBundle(t *testing.T) {
	in := Bundle{WaterML: 1000, SodiumMG: 700, PotassiumMG: 200, MagnesiumMG: 20}
	out := HeatAdjust(in, 35)

	assert.Equal(t, Bundle{WaterML: 1000, SodiumMG: 700, PotassiumMG: 200, MagnesiumMG: 20}, in)
	assert.InDelta(t, 1250, out.WaterML, 1e-9)
	assert.InDelta(t, 875, out.SodiumMG, 1e-9)
	assert.InDelta(t, 250, out.PotassiumMG, 1e-9)
	assert.InDelta(t, 25, out.MagnesiumMG, 1e-9)
}

func TestHeatAdjustIdempotencyOnlyBelow30(t *testing.T) {
	in := Bundle{WaterML: 1000}

	cool := HeatAdjust(HeatAdjust(in, 22), 22)
	assert.Equal(t, in, cool)

	// Above the band boundary re-application compounds.
	hot := HeatAdjust(HeatAdjust(in, 32), 32)
	assert.InDelta(t, 1000*1.15*1.15, hot.WaterML, 1e-9)
}

func TestRunEndToEnd(t *testing.T) {
	res := Run(70, SexMale, 60, 150, 32)

	require.InDelta(t, 0.638, res.SweatRateLPerHr, 1e-9)
	require.InDelta(t, 0.638, res.TotalSweatLossL, 1e-9)

	// Heat multiplier at 32 °C is 1.15, applied to recommendations only.
	assert.InDelta(t, 638*1.15, res.WaterML, 1e-6)
	assert.InDelta(t, 446.6*1.15, res.SodiumMG, 1e-6)
	assert.InDelta(t, 0.638*200*1.15, res.PotassiumMG, 1e-6)
	assert.InDelta(t, 0.638*20*1.15, res.MagnesiumMG, 1e-6)
}

func TestRunWeightHasNoEffect(t *testing.T) {
	// Weight is carried in the signature for future models but feeds no
	// current formula.
	a := Run(50, SexFemale, 45, 160, 28)
	b := Run(120, SexFemale, 45, 160, 28)
	assert.Equal(t, a, b)
}

func TestRunNeverNegative(t *testing.T) {
	res := Run(70, SexMale, 0, 30, -20)
	assert.GreaterOrEqual(t, res.WaterML, 0.0)
	assert.GreaterOrEqual(t, res.SodiumMG, 0.0)
	assert.GreaterOrEqual(t, res.PotassiumMG, 0.0)
	assert.GreaterOrEqual(t, res.MagnesiumMG, 0.0)
	assert.GreaterOrEqual(t, res.SweatRateLPerHr, 0.3)
	assert.Equal(t, 0.0, res.TotalSweatLossL)
}
