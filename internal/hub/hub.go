package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans session events out to all connected subscribers. Delivery is
// at-least-once per subscriber and ordered within one subscriber's stream;
// callers publishing under the session lock get commit-ordered delivery.
type Hub struct {
	sessions map[uint]map[*Client]bool
	mu       sync.RWMutex
}

// NewHub creates a new Hub. It is created at startup and handed to the
// transport layer and the engine; there is no package-level instance.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[uint]map[*Client]bool),
	}
}

// Subscribe adds a client connection to a session's subscriber set.
func (h *Hub) Subscribe(sessionID uint, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[*Client]bool)
	}
	h.sessions[sessionID][client] = true
}

// Unsubscribe removes a client from a session. Closing the send channel
// stops the client's write pump.
func (h *Hub) Unsubscribe(sessionID uint, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[sessionID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.sessions, sessionID)
			}
		}
	}
}

// Broadcast sends an event to all subscribers of a session.
func (h *Hub) Broadcast(sessionID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: failed to marshal %s event: %v", event.Type, err)
		return
	}

	for client := range clients {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client.send <- messageBytes:
		default:
			// Client channel is full, maybe they are disconnected or slow.
			// The unsubscribe logic will handle cleaning this up eventually.
		}
	}
}

// Publish is the game engine's broadcast entry point.
func (h *Hub) Publish(sessionID uint, eventType string, payload any) {
	h.Broadcast(sessionID, Event{Type: eventType, Payload: payload})
}

// SubscriberCount reports how many clients follow a session.
func (h *Hub) SubscriberCount(sessionID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}
