// Package hub pushes live session events to websocket spectators of a game.
package hub

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"basketball-league-admin/internal/livegame"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is what a spectator receives.
type Message struct {
	Type      livegame.EventKind `json:"type"`
	GameID    int                `json:"game_id"`
	Payload   livegame.Event     `json:"payload"`
	Timestamp time.Time          `json:"timestamp"`
}

type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.Send)
	}
}

// Unregister is a no-op once the hub has shut down.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues the event for the game's spectators; a full queue drops it.
func (h *Hub) Publish(ctx context.Context, e livegame.Event) error {
	msg := Message{Type: e.Kind, GameID: e.GameID, Payload: e, Timestamp: e.At}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("hub: broadcast buffer full, dropping %s for game %d", e.Kind, e.GameID)
	}
	return nil
}

// ServeWS upgrades the request and attaches the connection to gameID.
func (h *Hub) ServeWS(ctx context.Context, w http.ResponseWriter, r *http.Request, gameID int) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hub: upgrade failed: %v", err)
		return
	}

	c := NewClient(uuid.NewString(), gameID, conn, h)
	h.Register(c)
	go c.WritePump(ctx)
	go c.ReadPump(ctx)
}

func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = true
	log.Printf("spectator %s following game %d (total: %d)", c.ID, c.GameID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
}

func (h *Hub) broadcastMessage(msg Message) {
	h.clientsMu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if c.GameID == msg.GameID {
			targets = append(targets, c)
		}
	}
	h.clientsMu.RUnlock()

	for _, c := range targets {
		if !c.TrySend(msg) {
			log.Printf("spectator %s buffer full, disconnecting", c.ID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
