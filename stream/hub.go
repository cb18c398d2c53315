package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/gmuffiness/agentfloor/engine"
)

const clientBufferSize = 8

// Hub fans world snapshots out to websocket observers. Publish never
// blocks: a client whose buffer is full misses that snapshot, and the next
// one carries the complete state anyway.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	out  chan []byte
}

// NewHub creates an empty observer hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ClientCount returns the number of connected observers
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish sends one snapshot to every connected observer without blocking.
// Returns false when at least one client's buffer was full and the
// snapshot was dropped for it.
func (h *Hub) Publish(s engine.Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return true
	}

	b, err := json.Marshal(s)
	if err != nil {
		h.log.Error("snapshot encode failed", "error", err)
		return false
	}

	ok := true
	for c := range h.clients {
		select {
		case c.out <- b:
		default:
			ok = false
		}
	}
	return ok
}

// ServeWS upgrades the request and streams snapshots until the client
// disconnects
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, out: make(chan []byte, clientBufferSize)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("observer connected", "remote", r.RemoteAddr, "clients", n)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	for b := range c.out {
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
}

// readPump discards inbound messages; its job is detecting disconnect
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(c)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if present {
		close(c.out)
		_ = c.conn.Close()
		h.log.Info("observer disconnected")
	}
}

// Close disconnects every observer
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		close(c.out)
		_ = c.conn.Close()
	}
}
