package controllers

import (
	"net/http"

	"backend/hydration"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user row. The auth middleware has
// already verified the token and the user's existence.
func currentUser(c *gin.Context) (models.User, bool) {
	username := c.GetString("username")
	user, err := services.FindUserByUsername(username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return models.User{}, false
	}
	return user, true
}

func GetProfile(c *gin.Context) {
	username := c.GetString("username")
	profile, err := services.GetUserProfile(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type SetupInput struct {
	WeightLbs *float64 `json:"weight" binding:"required"`
	Sex       string   `json:"sex" binding:"required"`
}

// Setup is the first-time profile form: weight in pounds plus sex. Both are
// required before /calculate or /dashboard make sense.
func Setup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input SetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *input.WeightLbs <= 0 || *input.WeightLbs > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight provided"})
		return
	}
	sex, err := hydration.ParseSex(input.Sex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetupProfile(&user, *input.WeightLbs, string(sex)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile saved"})
}

type GoalInput struct {
	GoalOz *float64 `json:"goal_oz" binding:"required"`
}

// SetGoal pins the daily hydration goal to a manual override.
func SetGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.GoalOz <= 0 || *input.GoalOz > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal out of range"})
		return
	}

	if err := services.SetDailyGoalOverride(&user, *input.GoalOz); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearGoal removes the override so the goal is derived dynamically again.
func ClearGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.ClearDailyGoalOverride(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
