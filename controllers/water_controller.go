package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// WaterController is the daily "water bottle" API over the DailyWater
// ledger.
type WaterController struct {
	RT *services.RealtimeHub
}

func NewWaterController(rt *services.RealtimeHub) *WaterController {
	return &WaterController{RT: rt}
}

// GetWater reads today's intake in ounces; a missing row reads as 0.
func (wc *WaterController) GetWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	total, err := services.GetDailyWater(user.ID, services.DateKey(time.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"water_oz": total})
}

type AddWaterInput struct {
	Amount *float64 `json:"amount"`
}

// AddWater adds ounces to today's ledger. Additive only: there is no
// decrement, and amounts outside (0, 200] are rejected here so the ledger
// stays monotonically non-decreasing within a day.
func (wc *WaterController) AddWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input AddWaterInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if *input.Amount <= 0 || *input.Amount > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount out of range"})
		return
	}

	total, err := services.AddDailyWater(user.ID, services.DateKey(time.Now()), *input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wc.RT.BroadcastWaterUpdate(user.ID, total)

	c.JSON(http.StatusOK, gin.H{"water_oz": total})
}
