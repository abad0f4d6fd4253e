// Package spectate streams simulation events to websocket clients.
package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/younwookim/brawler/internal/domain/event"
)

const (
	eventBuffer = 256
	sendBuffer  = 256
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans events out to every connected spectator.
// Publishing never blocks: events are dropped when the hub falls behind and
// clients that cannot keep up are disconnected.
type Hub struct {
	events chan event.Event

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	done chan struct{}
	once sync.Once
}

type client struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewHub creates a hub and starts its broadcast loop
func NewHub() *Hub {
	h := &Hub{
		events:  make(chan event.Event, eventBuffer),
		clients: make(map[*client]struct{}),
		done:    make(chan struct{}),
	}
	go h.run()
	return h
}

// Sink returns the event.Sink feeding this hub
func (h *Hub) Sink() event.Sink {
	return event.Func(h.Publish)
}

// Publish queues an event for broadcast
func (h *Hub) Publish(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	select {
	case h.events <- e:
	default:
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the spectator
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Spectator upgrade failed: %v", err)
		return
	}

	c := &client{ws: ws, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		ws.Close()
		return
	}

	go c.writePump()
	c.readPump()
	h.unregister(c)
}

// Close disconnects every spectator and stops the broadcast loop
func (h *Hub) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.events)
		h.mu.Unlock()
		<-h.done
	})
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) run() {
	defer close(h.done)
	for e := range h.events {
		msg, err := json.Marshal(e)
		if err != nil {
			log.Printf("Failed to marshal event: %v", err)
			continue
		}
		h.broadcast(msg)
	}

	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// too slow, drop the spectator
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// readPump discards incoming messages until the connection closes
func (c *client) readPump() {
	defer c.ws.Close()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Spectator read error: %v", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	defer c.ws.Close()
	for msg := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}
