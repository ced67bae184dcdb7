package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`

    // Profile fields, nil until first-time setup is completed.
    WeightKg *float64
    Sex      *string

    // Manual daily hydration goal override (oz). Nil means the goal is
    // derived dynamically from recent sessions.
    DailyGoalOz *float64

    // Optional: Strava OAuth tokens
    StravaAccessToken  string `json:"-"`
    StravaRefreshToken string `json:"-"`
    StravaExpiresAt    int64  `json:"-"`

    // One-to-many: a user has many workout sessions
    Sessions []WorkoutSession
}
