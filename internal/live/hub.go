package live

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

// Client wraps a websocket connection. gorilla allows one writer at a time,
// so every write goes through the client's mutex.
type Client struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func newClient(ws *websocket.Conn) *Client {
	return &Client{ws: ws}
}

func (c *Client) WriteJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.write(b)
}

func (c *Client) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, b)
}

type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	logger  *log.Logger
}

type Stats struct {
	WSClients int `json:"ws_clients"`
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Add(ws *websocket.Conn) *Client {
	c := newClient(ws)
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.ws.Close()
}

// BroadcastJSON sends v to every client. Clients whose write fails are
// dropped.
func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Printf("[ws] broadcast marshal: %v", err)
		return
	}

	h.mu.Lock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := c.write(b); err != nil {
			h.Remove(c)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Stats() Stats {
	return Stats{WSClients: h.Count()}
}
