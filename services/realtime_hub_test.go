package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub upgrades one connection on a test server, registers it on the hub
// and returns the client side.
func dialHub(t *testing.T, hub *RealtimeHub, userID uint) *websocket.Conn {
	t.Helper()

	registered := make(chan struct{})
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&WSClient{UserID: userID, Conn: conn})
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	<-registered
	return conn
}

func TestBroadcastFromConcurrentGoroutines(t *testing.T) {
	hub := NewRealtimeHub()
	conn := dialHub(t, hub, 7)

	// Water and session updates are broadcast from independent HTTP handler
	// goroutines; all writes to one connection must serialize.
	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastWaterUpdate(7, 8)
		}()
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < n; i++ {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err, "frame %d", i)
		assert.Contains(t, string(msg), `"kind":"water.updated"`)
	}
	wg.Wait()
}

func TestBroadcastOnlyReachesOwnUser(t *testing.T) {
	hub := NewRealtimeHub()
	mine := dialHub(t, hub, 1)
	other := dialHub(t, hub, 2)

	hub.BroadcastWaterUpdate(1, 12)

	require.NoError(t, mine.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := mine.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"water_oz":12`)

	// The other user's socket must stay silent.
	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}
