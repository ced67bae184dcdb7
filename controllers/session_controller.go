package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/hydration"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CalculateInput struct {
	Weight    *float64 `json:"weight"`     // kg
	Sex       string   `json:"sex"`        // "male" | "female"
	Duration  *float64 `json:"duration"`   // minutes
	HeartRate *float64 `json:"heart_rate"` // bpm
	Temp      *float64 `json:"temp"`       // °C
}

// SessionController persists calculated sessions and announces them on the
// realtime hub.
type SessionController struct {
	RT *services.RealtimeHub
}

func NewSessionController(rt *services.RealtimeHub) *SessionController {
	return &SessionController{RT: rt}
}

// Calculate validates the raw workout inputs, runs the hydration engine,
// persists the session and returns the result. All range validation lives
// here: the engine itself is total and never errors.
func (sc *SessionController) Calculate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	if !utils.ValidNumber(input.Weight, 30, 300) ||
		!utils.ValidNumber(input.Duration, 1, 600) ||
		!utils.ValidNumber(input.HeartRate, 30, 230) ||
		!utils.ValidNumber(input.Temp, -20, 60) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "numeric fields out of allowed range"})
		return
	}

	sex, err := hydration.ParseSex(input.Sex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sex value"})
		return
	}

	result := hydration.Run(*input.Weight, sex, *input.Duration, *input.HeartRate, *input.Temp)

	session := models.WorkoutSession{
		UserID:         user.ID,
		DurationMin:    *input.Duration,
		AvgHeartRate:   *input.HeartRate,
		TemperatureC:   input.Temp,
		WeightKg:       input.Weight,
		SweatRate:      result.SweatRateLPerHr,
		TotalSweatLoss: result.TotalSweatLossL,
		WaterNeededML:  result.WaterML,
		SodiumMg:       result.SodiumMG,
		PotassiumMg:    result.PotassiumMG,
		MagnesiumMg:    result.MagnesiumMG,
	}
	if err := services.SaveSession(&session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sc.RT.BroadcastSessionCreated(user.ID, session)

	// water_oz is a display convenience so the frontend never converts.
	c.JSON(http.StatusOK, gin.H{
		"water_ml":            result.WaterML,
		"water_oz":            utils.MLToOz(result.WaterML),
		"sodium_mg":           result.SodiumMG,
		"potassium_mg":        result.PotassiumMG,
		"magnesium_mg":        result.MagnesiumMG,
		"sweat_rate_L_per_hr": result.SweatRateLPerHr,
		"total_sweat_loss_L":  result.TotalSweatLossL,
	})
}

// History returns the user's stored sessions, newest first. An optional
// ?days=N query limits the window to the trailing N days.
func History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var sessions []models.WorkoutSession
	var err error
	if daysStr := c.Query("days"); daysStr != "" {
		days, convErr := strconv.Atoi(daysStr)
		if convErr != nil || days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		sessions, err = services.RecentSessions(user.ID, time.Now().UTC().AddDate(0, 0, -days))
	} else {
		sessions, err = services.AllSessions(user.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
