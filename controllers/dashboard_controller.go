package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dash *services.Dashboard
}

func NewDashboardController(dash *services.Dashboard) *DashboardController {
	return &DashboardController{Dash: dash}
}

// Get builds the full dashboard payload. Users who have not completed setup
// are pointed at the setup flow instead.
func (dc *DashboardController) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if !services.ProfileComplete(&user) {
		c.JSON(http.StatusConflict, gin.H{"error": "profile setup required", "setup": true})
		return
	}

	stats, chart, sessions, err := dc.Dash.Build(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"chart":    chart,
		"sessions": sessions,
	})
}
