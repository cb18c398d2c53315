package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gmuffiness/agentfloor/engine"
)

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		At:         time.Unix(1000, 0),
		OrgID:      "org-test",
		PlayerName: "Tester",
		PlayerX:    100,
		PlayerY:    160,
		CameraZoom: 1.0,
	}
}

// TestPublishWithNoObservers verifies an empty hub never counts a drop
func TestPublishWithNoObservers(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()
	if !h.Publish(testSnapshot()) {
		t.Error("publish to an empty hub reported a drop")
	}
}

// TestObserverReceivesSnapshot verifies the full websocket path
func TestObserverReceivesSnapshot(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	ws := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer ws.Close()

	url := "ws" + strings.TrimPrefix(ws.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClients(t, h, 1)

	if !h.Publish(testSnapshot()) {
		t.Fatal("publish dropped with a fresh client buffer")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got engine.Snapshot
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.OrgID != "org-test" || got.PlayerX != 100 {
		t.Errorf("received snapshot %+v", got)
	}
}

// TestSlowObserverDropsSnapshot verifies the non-blocking fan-out
func TestSlowObserverDropsSnapshot(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	ws := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer ws.Close()

	url := "ws" + strings.TrimPrefix(ws.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClients(t, h, 1)

	// The client never reads; overrun its buffer plus the in-flight write
	dropped := false
	for i := 0; i < clientBufferSize+16; i++ {
		if !h.Publish(testSnapshot()) {
			dropped = true
		}
	}
	if !dropped {
		t.Error("publishing past the client buffer never reported a drop")
	}
}

// TestDisconnectPrunesClient verifies the hub notices a closing observer
func TestDisconnectPrunesClient(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	ws := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer ws.Close()

	url := "ws" + strings.TrimPrefix(ws.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	waitForClients(t, h, 1)
	conn.Close()
	waitForClients(t, h, 0)
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d (at %d)", want, h.ClientCount())
}
