package hydration

// FallbackGoalOz is the daily goal when the user has no override and not
// enough history for a dynamic estimate.
const FallbackGoalOz = 64.0

// SessionSample is the slice of a stored workout session the goal estimate
// needs. TempC is nil when the session has no recorded temperature.
type SessionSample struct {
	SweatRate float64
	TempC     *float64
}

// DailyGoal computes a personalized daily water goal in ounces.
//
// Priority is a firm contract: a manual override wins outright; otherwise a
// dynamic estimate from the trailing window (0.5 oz per lb of body weight
// plus a sweat component plus a heat adjustment); otherwise 64 oz. The result
// depends on the rolling window relative to "now", so it is recomputed on
// every request rather than cached.
func DailyGoal(overrideOz *float64, samples []SessionSample, latestWeightKg *float64) float64 {
	if overrideOz != nil {
		return *overrideOz
	}

	if latestWeightKg == nil || len(samples) == 0 {
		return FallbackGoalOz
	}

	var sumRate float64
	for _, s := range samples {
		sumRate += s.SweatRate
	}
	avgSweatRate := sumRate / float64(len(samples))

	weightLbs := *latestWeightKg * 2.205
	baseline := weightLbs * 0.5
	sweatComponent := avgSweatRate * 22

	return baseline + sweatComponent + heatGoalAdjust(samples)
}

// heatGoalAdjust adds ounces when the recent average temperature runs hot:
// +24 oz at an average of 85 °F or above, +12 oz at 75 °F or above.
func heatGoalAdjust(samples []SessionSample) float64 {
	var sumF float64
	var n int
	for _, s := range samples {
		if s.TempC == nil {
			continue
		}
		sumF += *s.TempC*9/5 + 32
		n++
	}
	if n == 0 {
		return 0
	}

	avgF := sumF / float64(n)
	switch {
	case avgF >= 85:
		return 24
	case avgF >= 75:
		return 12
	default:
		return 0
	}
}
