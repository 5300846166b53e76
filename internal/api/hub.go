/*
Package api
File: hub.go
Description:
    Manages WebSocket connections and real-time broadcasting. The hub
    pushes typed JSON pulses (state updates, purchases, click markers)
    to every connected client, and accepts "click" messages from
    clients as a low-latency alternative to the HTTP endpoint.
*/

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is the JSON envelope for all real-time traffic,
// in both directions.
type Message struct {
	Type    string          `json:"type"` // "state_pulse", "purchase", "click", "click_marker"
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client represents a single connected viewer.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // Buffered channel of outbound messages
}

// Hub maintains the set of active clients and broadcasts messages.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	// OnClientMessage is called for every inbound client message,
	// from the client's read goroutine. Set before Run.
	OnClientMessage func(clientID string, msg Message)
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("WS: client %s connected", client.id)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("WS: client %s disconnected", client.id)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than stall the hub.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast marshals a typed message and queues it for every client.
func (h *Hub) Broadcast(msgType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("WS: marshal %s payload: %v", msgType, err)
		return
	}
	out, err := json.Marshal(Message{Type: msgType, Payload: raw})
	if err != nil {
		log.Printf("WS: marshal %s envelope: %v", msgType, err)
		return
	}
	h.broadcast <- out
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS handles websocket upgrade requests.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS: upgrade error:", err)
		return
	}
	client := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("WS: client %s sent malformed message", c.id)
			continue
		}
		if c.hub.OnClientMessage != nil {
			c.hub.OnClientMessage(c.id, msg)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	// Range stops when the hub closes c.send.
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
