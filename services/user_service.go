package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// SetupProfile stores the first-time profile. Weight arrives in pounds from
// the form and is stored in kilograms. It does NOT set DailyGoalOz: the daily
// goal stays dynamic until the user sets an explicit override.
func SetupProfile(user *models.User, weightLbs float64, sex string) error {
	weightKg := weightLbs * utils.LbsToKg
	user.WeightKg = &weightKg
	user.Sex = &sex
	return config.DB.Save(user).Error
}

// SetDailyGoalOverride pins the user's daily goal to a manual value (oz).
func SetDailyGoalOverride(user *models.User, goalOz float64) error {
	user.DailyGoalOz = &goalOz
	return config.DB.Save(user).Error
}

// ClearDailyGoalOverride returns the user to the dynamic goal.
func ClearDailyGoalOverride(user *models.User) error {
	if user.DailyGoalOz == nil {
		return nil
	}
	return config.DB.Model(user).Update("daily_goal_oz", nil).Error
}

// ProfileComplete reports whether first-time setup has been done.
func ProfileComplete(user *models.User) bool {
	return user.WeightKg != nil && user.Sex != nil
}

func GetUserProfile(username string) (map[string]interface{}, error) {
	user, err := FindUserByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":               user.ID,
		"username":         user.Username,
		"weight_kg":        user.WeightKg,
		"sex":              user.Sex,
		"daily_goal_oz":    user.DailyGoalOz,
		"strava_connected": user.StravaAccessToken != "",
		"created_at":       user.CreatedAt,
	}, nil
}
