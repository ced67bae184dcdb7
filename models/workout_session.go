package models

import (
    "gorm.io/gorm"
)

// WorkoutSession stores the inputs of one hydration calculation together
// with the engine outputs, snapshotted at calculation time. Rows are never
// updated after creation.
type WorkoutSession struct {
    gorm.Model
    UserID           uint    `gorm:"index;not null"`
    StravaActivityID *string `gorm:"uniqueIndex"`

    // Workout metrics
    DurationMin  float64
    Calories     float64
    AvgHeartRate float64
    TemperatureC *float64
    WeightKg     *float64

    // Hydration engine outputs
    SweatRate      float64 // L/hr
    TotalSweatLoss float64 // L
    WaterNeededML  float64
    SodiumMg       float64
    PotassiumMg    float64
    MagnesiumMg    float64

    // No formula computes this yet; it always defaults to false.
    DehydrationAlert bool `gorm:"default:false"`
}
