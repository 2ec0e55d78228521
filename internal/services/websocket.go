package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tempustours/tempus-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a WebSocket client
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub
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
			log.Printf("Client %s connected", client.UserID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Client %s disconnected", client.UserID)

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
func (h *Hub) BroadcastToUser(userID string, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.UserID == userID {
			select {
			case client.Send <- message:
			default:
				close(client.Send)
				delete(h.clients, client)
			}
		}
	}
}

// BroadcastToAll sends a message to all connected clients. Delivery
// happens on the hub loop, which evicts clients whose send buffer is
// full.
func (h *Hub) BroadcastToAll(message []byte) {
	h.broadcast <- message
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

// BookingConfirmed notifies a user that their booking was committed
type BookingConfirmed struct {
	BookingID        string  `json:"bookingId"`
	TourID           string  `json:"tourId"`
	ConfirmationCode string  `json:"confirmationCode"`
	TotalPrice       float64 `json:"totalPrice"`
}

// BookingCancelled notifies a user that a confirmed booking was cancelled
type BookingCancelled struct {
	BookingID string `json:"bookingId"`
	TourID    string `json:"tourId"`
}

// SendBookingConfirmed sends a booking confirmation notification to the user
func (h *Hub) SendBookingConfirmed(userID string, booking models.Booking) {
	message := WebSocketMessage{
		Type: "booking_confirmed",
		Data: BookingConfirmed{
			BookingID:        booking.ID,
			TourID:           booking.TourID,
			ConfirmationCode: booking.ConfirmationCode,
			TotalPrice:       booking.TotalPrice,
		},
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling booking confirmed: %v", err)
		return
	}

	h.BroadcastToUser(userID, data)
}

// SendBookingCancelled sends a booking cancellation notification to the user
func (h *Hub) SendBookingCancelled(userID string, booking models.Booking) {
	message := WebSocketMessage{
		Type: "booking_cancelled",
		Data: BookingCancelled{
			BookingID: booking.ID,
			TourID:    booking.TourID,
		},
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling booking cancelled: %v", err)
		return
	}

	h.BroadcastToUser(userID, data)
}

// HandleWebSocket upgrades the connection and registers the client
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Hub:    hub,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames are processed
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
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
