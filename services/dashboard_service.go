package services

import (
	"math"
	"time"

	"backend/hydration"
	"backend/models"
	"backend/utils"
)

// Refuel is a water + electrolyte deficit bundle shown on dashboard cards.
type Refuel struct {
	WaterOz     float64 `json:"water_oz"`
	SodiumMg    float64 `json:"sodium_mg"`
	PotassiumMg float64 `json:"potassium_mg"`
	MagnesiumMg float64 `json:"magnesium_mg"`
}

// LastRefuel extends Refuel with the sweat rate of the most recent workout.
type LastRefuel struct {
	Refuel
	SweatRate float64 `json:"sweat_rate"`
}

// ChartData carries the arrays the frontend charts render from.
type ChartData struct {
	Dates       []string     `json:"dates"`
	SweatRate   []float64    `json:"sweat_rate"`
	WaterOz     []float64    `json:"water_oz"`
	TempF       []float64    `json:"temp_f"`
	TempVsSweat []ScatterPop `json:"temp_vs_sweat"`
}

// ScatterPop is one temperature-vs-sweat-rate scatter point (°F on x).
type ScatterPop struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DashboardStats is everything the dashboard needs in one payload.
type DashboardStats struct {
	TodayWorkouts     int64             `json:"today_workouts"`
	LifetimeWorkouts  int64             `json:"lifetime_workouts"`
	AvgSweatRate      *float64          `json:"avg_sweat_rate"`
	TotalWaterOz7d    *float64          `json:"total_water_oz_7d"`
	MaxTempF          *float64          `json:"max_temp_f"`
	TotalWaterOzToday float64           `json:"total_water_oz_today"`
	HydrationGoalOz   float64           `json:"hydration_goal_oz"`
	WaterTodayOz      float64           `json:"water_today_oz"`
	UserWeightKg      *float64          `json:"user_weight"`
	TodayRefuel       Refuel            `json:"today_refuel"`
	TodayDrinkRecs    []hydration.Drink `json:"today_drink_recs"`
	LastRefuel        *LastRefuel       `json:"last_refuel"`
}

// Dashboard aggregates sessions, the water ledger and the goal estimate for
// one user. The drink recommender is injected so the catalog stays
// process-wide immutable configuration.
type Dashboard struct {
	drinks *hydration.DrinkRecommender
}

func NewDashboard(drinks *hydration.DrinkRecommender) *Dashboard {
	return &Dashboard{drinks: drinks}
}

func (d *Dashboard) Build(user models.User) (*DashboardStats, *ChartData, []models.WorkoutSession, error) {
	// Today's ledger row must exist before the dashboard reads it.
	today := DateKey(time.Now())
	if _, err := EnsureDailyWater(user.ID, today); err != nil {
		return nil, nil, nil, err
	}

	sessions, err := AllSessions(user.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sevenDaysAgo := now.AddDate(0, 0, -7)

	stats := &DashboardStats{UserWeightKg: user.WeightKg}

	lifetime, err := SessionCount(user.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	stats.LifetimeWorkouts = lifetime

	// Today's totals come from the per-workout values snapshotted at
	// calculation time, not from re-running the engine.
	var last7d []models.WorkoutSession
	for _, s := range sessions {
		if !s.CreatedAt.Before(todayStart) {
			stats.TodayWorkouts++
			stats.TodayRefuel.WaterOz += utils.MLToOz(s.WaterNeededML)
			stats.TodayRefuel.SodiumMg += s.SodiumMg
			stats.TodayRefuel.PotassiumMg += s.PotassiumMg
			stats.TodayRefuel.MagnesiumMg += s.MagnesiumMg
		}
		if !s.CreatedAt.Before(sevenDaysAgo) {
			last7d = append(last7d, s)
		}
	}
	stats.TotalWaterOzToday = stats.TodayRefuel.WaterOz

	if len(sessions) > 0 {
		last := sessions[0]
		stats.LastRefuel = &LastRefuel{
			Refuel: Refuel{
				WaterOz:     utils.MLToOz(last.WaterNeededML),
				SodiumMg:    last.SodiumMg,
				PotassiumMg: last.PotassiumMg,
				MagnesiumMg: last.MagnesiumMg,
			},
			SweatRate: last.SweatRate,
		}
	}

	stats.TodayDrinkRecs = d.drinks.Recommend(
		stats.TodayRefuel.SodiumMg,
		stats.TodayRefuel.PotassiumMg,
		stats.TodayRefuel.MagnesiumMg,
		3,
	)

	if len(last7d) > 0 {
		var sumRate, sumWaterML float64
		var maxTempF *float64
		for _, s := range last7d {
			sumRate += s.SweatRate
			sumWaterML += s.WaterNeededML
			if s.TemperatureC != nil {
				f := utils.CToF(*s.TemperatureC)
				if maxTempF == nil || f > *maxTempF {
					maxTempF = &f
				}
			}
		}
		avg := sumRate / float64(len(last7d))
		waterOz := utils.MLToOz(sumWaterML)
		stats.AvgSweatRate = &avg
		stats.TotalWaterOz7d = &waterOz
		stats.MaxTempF = maxTempF
	}

	// Daily goal: manual override > dynamic from the 7-day window > 64 oz.
	// Weight comes from the most recent session when available.
	var latestWeight *float64
	if len(sessions) > 0 && sessions[0].WeightKg != nil {
		latestWeight = sessions[0].WeightKg
	}
	stats.HydrationGoalOz = hydration.DailyGoal(user.DailyGoalOz, goalSamples(last7d), latestWeight)

	waterToday, err := GetDailyWater(user.ID, today)
	if err != nil {
		return nil, nil, nil, err
	}
	stats.WaterTodayOz = waterToday

	return stats, buildChart(sessions), sessions, nil
}

func goalSamples(sessions []models.WorkoutSession) []hydration.SessionSample {
	samples := make([]hydration.SessionSample, 0, len(sessions))
	for _, s := range sessions {
		samples = append(samples, hydration.SessionSample{
			SweatRate: s.SweatRate,
			TempC:     s.TemperatureC,
		})
	}
	return samples
}

func buildChart(sessions []models.WorkoutSession) *ChartData {
	chart := &ChartData{
		Dates:       make([]string, 0, len(sessions)),
		SweatRate:   make([]float64, 0, len(sessions)),
		WaterOz:     make([]float64, 0, len(sessions)),
		TempF:       []float64{},
		TempVsSweat: []ScatterPop{},
	}
	for _, s := range sessions {
		chart.Dates = append(chart.Dates, s.CreatedAt.Format("01/02"))
		chart.SweatRate = append(chart.SweatRate, s.SweatRate)
		chart.WaterOz = append(chart.WaterOz, round1(utils.MLToOz(s.WaterNeededML)))
		if s.TemperatureC != nil {
			f := round1(utils.CToF(*s.TemperatureC))
			chart.TempF = append(chart.TempF, f)
			chart.TempVsSweat = append(chart.TempVsSweat, ScatterPop{X: f, Y: s.SweatRate})
		}
	}
	return chart
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
