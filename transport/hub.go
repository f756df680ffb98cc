// Package transport moves action diffs between processes over
// websockets. The sending side runs a Hub and broadcasts every diff;
// the receiving side runs Listen with a Router that replays each diff
// onto the state owned by its id. Diffs carry no timing: the receiver
// regenerates timing locally with its own ticks.
package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/actionmap/action"
	"github.com/milk9111/actionmap/ecs"
)

const (
	// diffMessage is the envelope type for action diff frames.
	diffMessage = "action_diff"

	writeWait = 10 * time.Second
)

// envelope is the wire format for websocket messages.
type envelope struct {
	Type string          `json:"type"`
	Ts   time.Time       `json:"ts"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Hub accepts websocket clients and fans broadcast frames out to them.
// A client that cannot drain its send buffer is disconnected rather
// than allowed to stall the rest.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader
	sendBuf  int

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub creates a hub. logger may be nil.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:  logger,
		sendBuf: 64,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.sendBuf)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("client connected", "remote", conn.RemoteAddr().String())

	go c.writePump(h)
	go c.readPump(h)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends one enveloped frame to every connected client.
func (h *Hub) Broadcast(msgType string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(envelope{Type: msgType, Ts: time.Now(), Data: raw})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			// Send buffer full: the client is too slow, drop it.
			h.logger.Warn("dropping slow client", "remote", c.conn.RemoteAddr().String())
			delete(h.clients, c)
			close(c.send)
		}
	}
	return nil
}

// BroadcastDiff broadcasts a single action diff.
func BroadcastDiff[A action.Actionlike[A], ID comparable](h *Hub, d action.Diff[A, ID]) error {
	return h.Broadcast(diffMessage, d)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// writePump owns all writes to the connection.
func (c *client) writePump(h *Hub) {
	defer c.conn.Close()
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.drop(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards inbound frames; its job is noticing disconnects.
func (c *client) readPump(h *Hub) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			return
		}
	}
}

// Broadcaster is an ecs.System that forwards every diff event emitted
// during the frame to the hub. It drains the world event queue, so
// schedule it after the action system and any other event consumers.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a broadcaster for the hub. logger may be nil.
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{hub: hub, logger: logger}
}

func (b *Broadcaster) Update(w *ecs.World) {
	if b == nil || b.hub == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventActionDiff {
			continue
		}
		if err := b.hub.Broadcast(diffMessage, evt.Data); err != nil {
			b.logger.Warn("broadcast diff failed", "error", err)
		}
	}
}
