package hydration

import (
	"errors"
	"strings"
)

// Sex selects the female-specific adjustment factors in the water and sodium
// formulas. Anything that is not Female gets the base multipliers.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

var ErrInvalidSex = errors.New("sex must be 'male' or 'female'")

// ParseSex accepts "male"/"female" in any case. Callers must reject the error
// before reaching the engine; the engine itself never validates.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return SexMale, nil
	case "female":
		return SexFemale, nil
	}
	return "", ErrInvalidSex
}

// Per-liter-of-sweat loss estimates (mg/L).
const (
	sodiumPerLiter    = 700.0
	potassiumPerLiter = 200.0
	magnesiumPerLiter = 20.0
)

// EstimateSweatRate estimates sweating rate in L/hr from average heart rate
// and ambient temperature, anchored at 120 bpm / 20 °C, clamped to the
// physiological range 0.3–2.0 L/hr.
func EstimateSweatRate(heartRate, tempC float64) float64 {
	rate := 0.5 + 0.003*(heartRate-120) + 0.004*(tempC-20)
	if rate < 0.3 {
		return 0.3
	}
	if rate > 2.0 {
		return 2.0
	}
	return rate
}

// TotalSweatLoss converts a sweat rate into total liters lost over the
// workout. Not clamped: long sessions can legitimately exceed 2 L.
func TotalSweatLoss(sweatRateLPerHr, durationMin float64) float64 {
	return sweatRateLPerHr * durationMin / 60
}

// WaterIntake converts sweat loss (L) into recommended fluid replacement
// (mL). Females get a 0.9 factor; every other value gets 1.0.
func WaterIntake(totalSweatLossL float64, sex Sex) float64 {
	waterML := totalSweatLossL * 1000
	if sex == SexFemale {
		waterML *= 0.9
	}
	return waterML
}

// Sodium estimates sodium lost (mg). Females typically lose slightly less
// sodium per liter of sweat, hence the 0.85 factor. Sex affects sodium only,
// not potassium or magnesium.
func Sodium(totalSweatLossL float64, sex Sex) float64 {
	sodiumMG := totalSweatLossL * sodiumPerLiter
	if sex == SexFemale {
		sodiumMG *= 0.85
	}
	return sodiumMG
}

// Potassium estimates potassium lost (mg), proportional to sweat volume.
func Potassium(totalSweatLossL float64) float64 {
	return totalSweatLossL * potassiumPerLiter
}

// Magnesium estimates magnesium lost (mg), proportional to sweat volume.
func Magnesium(totalSweatLossL float64) float64 {
	return totalSweatLossL * magnesiumPerLiter
}

// Bundle is the heat-adjustable part of a result: the four intake
// recommendations. Sweat rate and total loss are never heat-adjusted.
type Bundle struct {
	WaterML     float64
	SodiumMG    float64
	PotassiumMG float64
	MagnesiumMG float64
}

// HeatMultiplier returns the hot-weather scaling factor. Boundaries are
// inclusive: exactly 35 °C takes 1.25, exactly 30 °C takes 1.15.
func HeatMultiplier(tempC float64) float64 {
	switch {
	case tempC >= 35:
		return 1.25
	case tempC >= 30:
		return 1.15
	default:
		return 1.0
	}
}

// HeatAdjust scales every field of the bundle by the temperature multiplier
// and returns a new bundle. Not idempotent above 30 °C: re-applying compounds
// the multiplier.
func HeatAdjust(b Bundle, tempC float64) Bundle {
	m := HeatMultiplier(tempC)
	return Bundle{
		WaterML:     b.WaterML * m,
		SodiumMG:    b.SodiumMG * m,
		PotassiumMG: b.PotassiumMG * m,
		MagnesiumMG: b.MagnesiumMG * m,
	}
}

// Result is the full engine output for one workout. The heat multiplier has
// already been applied to the four recommendation fields but not to
// SweatRateLPerHr or TotalSweatLossL.
type Result struct {
	WaterML         float64 `json:"water_ml"`
	SodiumMG        float64 `json:"sodium_mg"`
	PotassiumMG     float64 `json:"potassium_mg"`
	MagnesiumMG     float64 `json:"magnesium_mg"`
	SweatRateLPerHr float64 `json:"sweat_rate_L_per_hr"`
	TotalSweatLossL float64 `json:"total_sweat_loss_L"`
}

// Run chains the whole pipeline: sweat rate → total loss → water +
// electrolytes → heat adjustment. Total over any real inputs; callers
// validate ranges before calling.
//
// weightKg is accepted but currently unused by every formula. It stays in the
// signature for future weight-scaled models.
func Run(weightKg float64, sex Sex, durationMin, heartRate, tempC float64) Result {
	_ = weightKg

	sweatRate := EstimateSweatRate(heartRate, tempC)
	totalLoss := TotalSweatLoss(sweatRate, durationMin)

	adjusted := HeatAdjust(Bundle{
		WaterML:     WaterIntake(totalLoss, sex),
		SodiumMG:    Sodium(totalLoss, sex),
		PotassiumMG: Potassium(totalLoss),
		MagnesiumMG: Magnesium(totalLoss),
	}, tempC)

	return Result{
		WaterML:         adjusted.WaterML,
		SodiumMG:        adjusted.SodiumMG,
		PotassiumMG:     adjusted.PotassiumMG,
		MagnesiumMG:     adjusted.MagnesiumMG,
		SweatRateLPerHr: sweatRate,
		TotalSweatLossL: totalLoss,
	}
}
