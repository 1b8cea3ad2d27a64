package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Client is one open websocket subscribed to a single conversation.
type Client struct {
	ID              string
	UserID          uint
	ConversationKey string
	Send            chan []byte
}

// Hub fans chat messages out to the clients watching each conversation.
// Delivery is push-based: a message is published once and every subscribed
// client receives it over its own channel, so nobody polls.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// SendToConversation delivers a payload to every client subscribed to the
// conversation. Slow clients are skipped rather than blocking delivery.
func (h *Hub) SendToConversation(conversationKey string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.ConversationKey == conversationKey {
			select {
			case client.Send <- payload:
			default:
				// channel full, skip instead of blocking
			}
		}
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("Client registered: %s (UserID: %d)", client.ID, client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				log.Printf("Client unregistered: %s", client.ID)
			}
			h.mu.Unlock()
		}
	}
}
