// Package eventstream implements mars.EventSink by marshaling engine
// events to JSON and broadcasting them to connected WebSocket clients. It
// is transport only: no rendering, no replay buffer beyond what's needed to
// avoid blocking the simulation on a slow or absent client.
package eventstream

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"corewar2d/mars"
)

// Frame is the wire representation of one engine event.
type Frame struct {
	Warrior string `json:"warrior"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Kind    string `json:"kind"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin is not assumed: the visualizer collaborator this hub
	// serves is an independent process, possibly on another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected WebSocket observer with its own outbound queue,
// so one slow reader can't stall the broadcaster or the simulation.
type client struct {
	conn *websocket.Conn
	send chan Frame
}

// Hub implements mars.EventSink, fanning every Emit call out to all
// currently connected clients. The zero Hub is not usable; construct one
// with NewHub.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *log.Logger
}

// NewHub constructs an empty Hub ready to accept connections and events.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  log.Default(),
	}
}

// SetLogger overrides the destination for connection-lifecycle messages.
func (h *Hub) SetLogger(l *log.Logger) {
	h.logger = l
}

// Emit implements mars.EventSink. It never blocks the caller: for a client
// whose outbound queue is full the event is dropped (the client stays
// connected) rather than slow the match down.
func (h *Hub) Emit(w *mars.Warrior, p mars.Point, kind mars.EventKind) {
	name := ""
	if w != nil {
		name = w.Name
	}
	frame := Frame{Warrior: name, X: p.X, Y: p.Y, Kind: kind.String()}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.logger.Printf("eventstream: dropping event for slow client")
		}
	}
}

// ServeHTTP upgrades the request to a WebSocket and registers the
// connection as an event observer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("eventstream: upgrade failed: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan Frame, 256)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

// writePump drains c.send to the socket until it closes.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for frame := range c.send {
		if err := c.conn.WriteJSON(frame); err != nil {
			return
		}
	}
}

// readPump exists only to notice the client going away (gorilla/websocket
// requires reads to detect close/ping frames); this hub accepts no
// messages from clients.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

