package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func sessionAt(t time.Time, sweatRate, waterML float64, tempC *float64) models.WorkoutSession {
	return models.WorkoutSession{
		Model:         gorm.Model{CreatedAt: t},
		SweatRate:     sweatRate,
		WaterNeededML: waterML,
		TemperatureC:  tempC,
	}
}

func TestBuildChart(t *testing.T) {
	temp := 32.0
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		sessionAt(ts, 0.638, 638, &temp),
		sessionAt(ts.Add(-24*time.Hour), 0.5, 500, nil),
	}

	chart := buildChart(sessions)

	require.Len(t, chart.Dates, 2)
	assert.Equal(t, "08/30", chart.Dates[0])
	assert.Equal(t, []float64{0.638, 0.5}, chart.SweatRate)
	assert.Equal(t, []float64{21.6, 16.9}, chart.WaterOz)

	// Temperature series only include sessions that recorded one.
	require.Len(t, chart.TempF, 1)
	assert.InDelta(t, 89.6, chart.TempF[0], 1e-9)
	require.Len(t, chart.TempVsSweat, 1)
	assert.Equal(t, 0.638, chart.TempVsSweat[0].Y)
}

func TestGoalSamples(t *testing.T) {
	temp := 25.0
	sessions := []models.WorkoutSession{
		sessionAt(time.Now(), 1.2, 0, &temp),
		sessionAt(time.Now(), 0.8, 0, nil),
	}

	samples := goalSamples(sessions)
	require.Len(t, samples, 2)
	assert.Equal(t, 1.2, samples[0].SweatRate)
	require.NotNil(t, samples[0].TempC)
	assert.Equal(t, 25.0, *samples[0].TempC)
	assert.Nil(t, samples[1].TempC)
}

func TestDateKeyIsUTCDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2026, 8, 30, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-08-31", DateKey(local))
}
