package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Catalog event types pushed to connected clients
const (
	EventProviderCreated = "provider_created"
	EventProviderUpdated = "provider_updated"
	EventProviderDeleted = "provider_deleted"
	EventCategoryChanged = "category_changed"
	EventReviewAdded     = "review_added"
)

// Event represents a catalog change pushed over WebSocket
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Client represents a connected WebSocket client
type Client struct {
	Conn *websocket.Conn
}

// Hub maintains the set of active clients and broadcasts catalog events
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
			}
			client.Conn.Close()
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.Conn.WriteJSON(event)
	}
}

// NotifyProviderCreated announces a new listing
func (h *Hub) NotifyProviderCreated(data interface{}) {
	h.Broadcast(Event{
		Type:    EventProviderCreated,
		Message: "New provider listed",
		Data:    data,
	})
}

// NotifyProviderUpdated announces a changed listing
func (h *Hub) NotifyProviderUpdated(data interface{}) {
	h.Broadcast(Event{
		Type:    EventProviderUpdated,
		Message: "Provider updated",
		Data:    data,
	})
}

// NotifyProviderDeleted announces a removed listing
func (h *Hub) NotifyProviderDeleted(providerID string) {
	h.Broadcast(Event{
		Type:    EventProviderDeleted,
		Message: "Provider removed",
		Data:    map[string]string{"id": providerID},
	})
}

// NotifyReviewAdded announces a new review on a listing
func (h *Hub) NotifyReviewAdded(providerID string, data interface{}) {
	h.Broadcast(Event{
		Type:    EventReviewAdded,
		Message: "New review for " + providerID,
		Data:    data,
	})
}

// NotifyCategoryChanged announces any category tree change
func (h *Hub) NotifyCategoryChanged(data interface{}) {
	h.Broadcast(Event{
		Type:    EventCategoryChanged,
		Message: "Category tree changed",
		Data:    data,
	})
}
