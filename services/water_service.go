package services

import (
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// DateKey returns the UTC calendar-day key used by the DailyWater ledger.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// EnsureDailyWater lazily creates today's ledger row at 0 oz.
func EnsureDailyWater(userID uint, dateKey string) (models.DailyWater, error) {
	record := models.DailyWater{UserID: userID, Date: dateKey, WaterOz: 0}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dateKey).
		FirstOrCreate(&record).Error
	return record, err
}

// GetDailyWater returns the ounces consumed on the given day, 0 when no row
// exists yet.
func GetDailyWater(userID uint, dateKey string) (float64, error) {
	var record models.DailyWater
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dateKey).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return record.WaterOz, nil
}

// AddDailyWater adds ounces to the day's ledger row, creating it if needed,
// and returns the new total. The ledger is additive-only; range checks on
// the amount belong to the HTTP boundary.
func AddDailyWater(userID uint, dateKey string, amountOz float64) (float64, error) {
	record, err := EnsureDailyWater(userID, dateKey)
	if err != nil {
		return 0, err
	}

	record.WaterOz += amountOz
	if err := config.DB.Save(&record).Error; err != nil {
		return 0, err
	}
	return record.WaterOz, nil
}
