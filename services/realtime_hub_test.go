package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

func TestRealtimeHub_ConcurrentWritesToOneClient(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			close(done)
			return
		}
		cl := &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)

		// Broadcasts and keepalive pings race onto the same conn, as they
		// do in production.
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				hub.BroadcastUpdate(1, map[string]any{"kind": "update.created"})
			}()
			go func() {
				defer wg.Done()
				_ = cl.Send(websocket.PingMessage, nil)
			}()
		}
		wg.Wait()
		hub.Unregister(cl)
		close(done)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Drain so server-side writes never block on a full buffer.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	<-done

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if len(hub.clients) != 0 {
		t.Fatalf("user entry survived last unregister")
	}
}
