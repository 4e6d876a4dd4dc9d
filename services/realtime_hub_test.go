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

// newWSPair connects a real websocket client to a hub-registered server-side
// connection.
func newWSPair(t *testing.T, hub *RealtimeHub, userID uint) (*WSClient, *websocket.Conn, func()) {
	t.Helper()

	reg := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: userID, Conn: conn}
		hub.Register(cl)
		reg <- cl
	}))

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	cl := <-reg

	return cl, client, func() {
		client.Close()
		srv.Close()
	}
}

func TestBroadcastDeliversToRegisteredClient(t *testing.T) {
	hub := NewRealtimeHub()
	_, client, cleanup := newWSPair(t, hub, 7)
	defer cleanup()

	hub.Broadcast(7, map[string]string{"kind": "achievement.earned"})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "achievement.earned")
}

func TestBroadcastIgnoresOtherUsers(t *testing.T) {
	hub := NewRealtimeHub()
	_, client, cleanup := newWSPair(t, hub, 7)
	defer cleanup()

	hub.Broadcast(8, map[string]string{"kind": "achievement.earned"})
	hub.Broadcast(7, map[string]string{"kind": "for.seven"})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "for.seven")
}

func TestBroadcastAndPingShareOneWriter(t *testing.T) {
	hub := NewRealtimeHub()
	cl, client, cleanup := newWSPair(t, hub, 7)
	defer cleanup()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			hub.Broadcast(7, map[string]int{"n": i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = cl.WriteMessage(websocket.PingMessage, nil)
		}
	}()

	// control frames are consumed by the read loop, so exactly the text
	// broadcasts come back
	received := 0
	client.SetReadDeadline(time.Now().Add(3 * time.Second))
	for received < n {
		if _, _, err := client.ReadMessage(); err != nil {
			break
		}
		received++
	}
	wg.Wait()
	assert.Equal(t, n, received)
}

func TestUnregisterDropsClient(t *testing.T) {
	hub := NewRealtimeHub()
	cl, _, cleanup := newWSPair(t, hub, 7)
	defer cleanup()

	hub.Unregister(cl)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Empty(t, hub.clients)
}
