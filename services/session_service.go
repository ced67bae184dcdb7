package services

import (
	"time"

	"backend/config"
	"backend/models"
)

func SaveSession(session *models.WorkoutSession) error {
	return config.DB.Create(session).Error
}

// AllSessions returns every workout session for the user, newest first.
func AllSessions(userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&sessions).Error
	return sessions, err
}

// RecentSessions returns the user's sessions created at or after since,
// newest first. Callers must not rely on more than "everything since".
func RecentSessions(userID uint, since time.Time) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := config.DB.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at desc").
		Find(&sessions).Error
	return sessions, err
}

func SessionCount(userID uint) (int64, error) {
	var n int64
	err := config.DB.
		Model(&models.WorkoutSession{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func HasStravaActivity(activityID string) (bool, error) {
	var n int64
	err := config.DB.
		Model(&models.WorkoutSession{}).
		Where("strava_activity_id = ?", activityID).
		Count(&n).Error
	return n > 0, err
}
