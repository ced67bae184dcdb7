package models

import (
    "gorm.io/gorm"
)

// DailyWater is the per-day water intake ledger: one row per (user, UTC
// date), created lazily at zero and only ever increased by additive updates.
type DailyWater struct {
    gorm.Model
    UserID  uint   `gorm:"index;not null;uniqueIndex:idx_user_date"`
    Date    string `gorm:"size:10;not null;uniqueIndex:idx_user_date"` // YYYY-MM-DD (UTC)
    WaterOz float64
}
