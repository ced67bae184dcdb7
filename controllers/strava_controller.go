package controllers

import (
	"net/http"
	"sync"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type StravaController struct {
	Strava *services.StravaService

	// state → username, pending OAuth callbacks
	mu      sync.Mutex
	pending map[string]string
}

func NewStravaController(strava *services.StravaService) *StravaController {
	return &StravaController{
		Strava:  strava,
		pending: make(map[string]string),
	}
}

// Connect starts the OAuth flow and returns the consent URL for the
// frontend to redirect to.
func (sc *StravaController) Connect(c *gin.Context) {
	username := c.GetString("username")

	state := utils.GenerateRandomToken(32)
	sc.mu.Lock()
	sc.pending[state] = username
	sc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"url": sc.Strava.AuthURL(state)})
}

// Callback completes the OAuth flow using the state issued by Connect.
func (sc *StravaController) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing state or code"})
		return
	}

	sc.mu.Lock()
	username, ok := sc.pending[state]
	delete(sc.pending, state)
	sc.mu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state"})
		return
	}

	user, err := services.FindUserByUsername(username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	if err := sc.Strava.Exchange(c.Request.Context(), &user, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "strava connected"})
}

// Sync imports recent activities as workout sessions.
func (sc *StravaController) Sync(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	imported, err := sc.Strava.SyncActivities(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
