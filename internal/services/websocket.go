package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a WebSocket client
type Client struct {
	ID   uint
	Role string
	Conn *websocket.Conn
	Send chan []byte
	Hub  *Hub
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %d connected", client.ID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Client %d disconnected", client.ID)

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastToUser sends a message to a specific user
func (h *Hub) BroadcastToUser(userID uint, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.ID == userID {
			select {
			case client.Send <- message:
			default:
				close(client.Send)
				delete(h.clients, client)
			}
		}
	}
}

// BroadcastToRole sends a message to all users with a specific role
func (h *Hub) BroadcastToRole(role string, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.Role == role {
			select {
			case client.Send <- message:
			default:
				close(client.Send)
				delete(h.clients, client)
			}
		}
	}
}

// GetConnectedClients returns the number of connected clients
func (h *Hub) GetConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// WebSocket message types
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BookingRequested notifies a space owner that a new request landed in
// their queue.
type BookingRequested struct {
	BookingID uint    `json:"bookingId"`
	SpotID    uint    `json:"spotId"`
	SpotName  string  `json:"spotName"`
	UserID    uint    `json:"userId"`
	TotalCost float64 `json:"totalCost"`
}

// BookingDecided notifies the requester of the owner's decision.
type BookingDecided struct {
	BookingID uint    `json:"bookingId"`
	SpotID    uint    `json:"spotId"`
	SpotName  string  `json:"spotName"`
	Status    string  `json:"status"`
	TotalCost float64 `json:"totalCost"`
}

// VerificationDecided notifies a space owner of the admin's verdict on
// their identity documents.
type VerificationDecided struct {
	RequestID uint   `json:"requestId"`
	Status    string `json:"status"`
}

// HandleWebSocket handles WebSocket connections
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID uint, role string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		ID:   userID,
		Role: role,
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  hub,
	}

	client.Hub.register <- client

	// Start goroutines for reading and writing
	go client.writePump()
	go client.readPump()
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		// Clients only listen today; log anything they send for debugging
		var wsMessage WebSocketMessage
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			log.Printf("Error unmarshaling WebSocket message: %v", err)
			continue
		}
		log.Printf("Message %q from client %d ignored", wsMessage.Type, c.ID)
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// SendBookingRequested sends a new-request notification to the spot owner
func (hub *Hub) SendBookingRequested(ownerID uint, requested BookingRequested) {
	message := WebSocketMessage{
		Type: "booking_request",
		Data: requested,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling booking request: %v", err)
		return
	}

	hub.BroadcastToUser(ownerID, data)
}

// SendBookingDecided sends the owner's decision to the requester
func (hub *Hub) SendBookingDecided(userID uint, decided BookingDecided) {
	message := WebSocketMessage{
		Type: "booking_update",
		Data: decided,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling booking update: %v", err)
		return
	}

	hub.BroadcastToUser(userID, data)
}

// SendVerificationDecided sends the admin verdict to the space owner
func (hub *Hub) SendVerificationDecided(ownerID uint, decided VerificationDecided) {
	message := WebSocketMessage{
		Type: "verification_update",
		Data: decided,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling verification update: %v", err)
		return
	}

	hub.BroadcastToUser(ownerID, data)
}
