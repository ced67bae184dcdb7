package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", RateLimit(perMinute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPost(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	r := newLimitedRouter(3)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doPost(r, "10.0.0.1"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "10.0.0.1"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	r := newLimitedRouter(1)

	assert.Equal(t, http.StatusOK, doPost(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "10.0.0.1"))

	// A different client still has its own bucket.
	assert.Equal(t, http.StatusOK, doPost(r, "10.0.0.2"))
}
